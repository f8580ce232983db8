package dto

import (
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalResponse defines the data returned for the global net-worth snapshot.
type TotalResponse struct {
	Balance    decimal.Decimal `json:"balance"`
	Invested   decimal.Decimal `json:"invested"`
	Uninvested decimal.Decimal `json:"uninvested"`
	Variation  decimal.Decimal `json:"variation"`
	EurBrlRate decimal.Decimal `json:"eurBrlRate"`
	Date       string          `json:"date"`
}

// ToTotalResponse converts a domain.TotalHistory to its DTO.
func ToTotalResponse(t *domain.TotalHistory) TotalResponse {
	return TotalResponse{
		Balance:    t.Balance,
		Invested:   t.Invested,
		Uninvested: t.Uninvested,
		Variation:  t.Variation,
		EurBrlRate: t.EurBrlRate,
		Date:       t.Date.Format(dateLayout),
	}
}

// ListTotalHistoryResponse wraps the monthly total snapshots, newest first.
type ListTotalHistoryResponse struct {
	Totals []TotalResponse `json:"totals"`
}
