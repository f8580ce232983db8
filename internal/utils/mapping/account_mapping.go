package mapping

import (
	"fmt"

	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/danielsvicente/my-finance-api/internal/models"
)

// ToModelAccount converts a domain.Account into its database row shape.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		Name:         d.Name,
		AccountType:  string(d.AccountType),
		CurrencyCode: string(d.Currency),
		Balance:      d.Balance,
		AuditTimes: models.AuditTimes{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a database row into a domain.Account, rejecting
// rows carrying unknown enum values.
func ToDomainAccount(m models.Account) (domain.Account, error) {
	accountType, err := domain.ParseAccountType(m.AccountType)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", m.AccountID, err)
	}
	currency, err := domain.ParseCurrency(m.CurrencyCode)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", m.AccountID, err)
	}
	return domain.Account{
		AccountID:   m.AccountID,
		Name:        m.Name,
		AccountType: accountType,
		Currency:    currency,
		Balance:     m.Balance,
		AuditTimes: domain.AuditTimes{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}, nil
}
