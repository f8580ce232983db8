package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielsvicente/my-finance-api/internal/apperrors"
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	portsrepo "github.com/danielsvicente/my-finance-api/internal/core/ports/repositories"
	portssvc "github.com/danielsvicente/my-finance-api/internal/core/ports/services"
	"github.com/danielsvicente/my-finance-api/internal/utils/snapshot"
	"github.com/google/uuid"
)

// netWorthService implements the NetWorthSvc interface
type netWorthService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	totalRepo    portsrepo.TotalHistoryRepository
	rateSource   portsrepo.RateSource
	baseCurrency domain.Currency
	ratePair     string
	now          func() time.Time
}

// NetWorthServiceOption is a functional option for configuring the net-worth service
type NetWorthServiceOption func(*netWorthService)

// WithNetWorthClock overrides the service clock for deterministic tests.
func WithNetWorthClock(now func() time.Time) NetWorthServiceOption {
	return func(s *netWorthService) {
		s.now = now
	}
}

// NewNetWorthService creates a new net-worth service with the provided options.
// baseCurrency is the currency all balances are normalized into; ratePair is
// the market-data symbol for the base/foreign rate.
func NewNetWorthService(
	accountRepo portsrepo.AccountReader,
	totalRepo portsrepo.TotalHistoryRepository,
	rateSource portsrepo.RateSource,
	baseCurrency domain.Currency,
	ratePair string,
	options ...NetWorthServiceOption,
) portssvc.NetWorthSvc {
	svc := &netWorthService{
		accountRepo:  accountRepo,
		totalRepo:    totalRepo,
		rateSource:   rateSource,
		baseCurrency: baseCurrency,
		ratePair:     ratePair,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure netWorthService implements the NetWorthSvc interface
var _ portssvc.NetWorthSvc = (*netWorthService)(nil)

// RefreshTotal recomputes the normalized total over all accounts and
// reconciles the global monthly snapshot inside one serializable transaction.
// A rate-source failure aborts the pass before anything is written.
func (s *netWorthService) RefreshTotal(ctx context.Context) (*domain.TotalHistory, error) {
	today := dateOf(s.now())

	rate, err := s.rateSource.FetchDailyRate(ctx, s.ratePair, today)
	if err != nil {
		s.LogError(ctx, err, "Rate source failed", slog.String("pair", s.ratePair))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRateUnavailable, err)
	}
	rate = snapshot.TruncateRate(rate)
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: non-positive rate %s for %s", apperrors.ErrRateUnavailable, rate, s.ratePair)
	}

	accounts, err := s.accountRepo.ListAllAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for total: %w", err)
	}

	total, invested, uninvested := snapshot.ComputeTotal(accounts, s.baseCurrency, rate)

	tx, err := s.totalRepo.BeginSerializable(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.totalRepo.Rollback(ctx, tx) }()

	window, err := s.totalRepo.FindRecentForUpdate(ctx, tx, historyWindowSize)
	if err != nil {
		return nil, err
	}

	values := make([]domain.SnapshotValues, len(window))
	for i, t := range window {
		values[i] = t.SnapshotValues
	}

	snap, isNew := snapshot.ReconcileSnapshot(total, values, today)

	row := domain.TotalHistory{
		Invested:       invested,
		Uninvested:     uninvested,
		EurBrlRate:     rate,
		SnapshotValues: snap,
	}
	if isNew {
		row.TotalID = uuid.NewString()
		err = s.totalRepo.SaveTotalInTx(ctx, tx, row)
	} else {
		row.TotalID = window[0].TotalID
		err = s.totalRepo.UpdateTotalInTx(ctx, tx, row)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile total snapshot: %w", err)
	}

	if err := s.totalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Total refreshed",
		slog.String("total", total.String()),
		slog.String("rate", rate.String()),
		slog.Bool("new_snapshot", isNew))
	return &row, nil
}

// ListTotalHistory refreshes the total, then returns all monthly total
// snapshots, newest first.
func (s *netWorthService) ListTotalHistory(ctx context.Context) ([]domain.TotalHistory, error) {
	if _, err := s.RefreshTotal(ctx); err != nil {
		return nil, err
	}
	return s.totalRepo.ListTotals(ctx)
}
