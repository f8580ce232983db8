package dto

import (
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required,max=30"`
	AccountType domain.AccountType `json:"type" binding:"required,accounttype"`
	Currency    domain.Currency    `json:"currency" binding:"required,currencycode"`
	Balance     decimal.Decimal    `json:"balance"`
}

// UpdateAccountRequest defines the data for updating an account. All fields
// are required; an update replaces the account's mutable state wholesale.
type UpdateAccountRequest struct {
	Name        string             `json:"name" binding:"required,max=30"`
	AccountType domain.AccountType `json:"type" binding:"required,accounttype"`
	Currency    domain.Currency    `json:"currency" binding:"required,currencycode"`
	Balance     decimal.Decimal    `json:"balance"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"type"`
	Currency      domain.Currency    `json:"currency"`
	Balance       decimal.Decimal    `json:"balance"`
	CreatedAt     string             `json:"createdAt"`
	LastUpdatedAt string             `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Currency:      acc.Currency,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt.UTC().Format(dateTimeLayout),
		LastUpdatedAt: acc.LastUpdatedAt.UTC().Format(dateTimeLayout),
	}
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// RegisterCustomValidations attaches the closed-enum validators to gin's
// binding engine so unknown account types and currencies are rejected before
// any service logic runs.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseAccountType(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCurrency(fl.Field().String())
		return err == nil
	})
}
