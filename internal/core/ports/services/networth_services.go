package services

import (
	"context"

	"github.com/danielsvicente/my-finance-api/internal/core/domain"
)

// NetWorthSvc computes the EUR-normalized net-worth total and maintains the
// global monthly total history.
type NetWorthSvc interface {
	// RefreshTotal recomputes the total over all accounts with the current
	// daily rate and reconciles the monthly total snapshot. The returned row
	// is the snapshot that was written.
	RefreshTotal(ctx context.Context) (*domain.TotalHistory, error)

	// ListTotalHistory refreshes the total, then returns all monthly total
	// snapshots, newest first.
	ListTotalHistory(ctx context.Context) ([]domain.TotalHistory, error)
}
