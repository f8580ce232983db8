package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielsvicente/my-finance-api/internal/apperrors"
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	portsrepo "github.com/danielsvicente/my-finance-api/internal/core/ports/repositories"
	portssvc "github.com/danielsvicente/my-finance-api/internal/core/ports/services"
	"github.com/danielsvicente/my-finance-api/internal/dto"
	"github.com/danielsvicente/my-finance-api/internal/utils/snapshot"
	"github.com/google/uuid"
)

const maxAccountNameLength = 30

// historyWindowSize is the number of recent snapshots the reconcile routine
// needs: the current bucket and the row before it.
const historyWindowSize = 2

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	historyRepo portsrepo.AccountHistoryRepository
	netWorth    portssvc.NetWorthSvc
	now         func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the service clock. Tests pin it to exercise the
// monthly bucketing deterministically.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	historyRepo portsrepo.AccountHistoryRepository,
	netWorth portssvc.NetWorthSvc,
	options ...AccountServiceOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		historyRepo: historyRepo,
		netWorth:    netWorth,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func validateAccountName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}
	if len(name) > maxAccountNameLength {
		return fmt.Errorf("%w: account name must be at most %d characters", apperrors.ErrValidation, maxAccountNameLength)
	}
	return nil
}

// CreateAccount persists a new account together with its first monthly
// snapshot, then refreshes the global total.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := validateAccountName(req.Name); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := dateOf(now)

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		AccountType: req.AccountType,
		Currency:    req.Currency,
		Balance:     req.Balance,
		AuditTimes: domain.AuditTimes{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// The first snapshot is just a reconcile against an empty window.
	snap, _ := snapshot.ReconcileSnapshot(req.Balance, nil, today)
	firstSnapshot := domain.AccountHistory{
		HistoryID:      uuid.NewString(),
		AccountID:      account.AccountID,
		SnapshotValues: snap,
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.accountRepo.Rollback(ctx, tx) }()

	if err := s.accountRepo.SaveAccountInTx(ctx, tx, account); err != nil {
		return nil, err
	}
	if err := s.historyRepo.SaveHistoryInTx(ctx, tx, firstSnapshot); err != nil {
		return nil, fmt.Errorf("failed to write initial snapshot: %w", err)
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("name", account.Name))

	if _, err := s.netWorth.RefreshTotal(ctx); err != nil {
		// The account is committed; only the total aggregation pass failed.
		return nil, fmt.Errorf("account %s created but total refresh failed: %w", account.AccountID, err)
	}

	return &account, nil
}

// GetAccountByID retrieves a specific account by its unique identifier.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// UpdateAccount replaces an account's mutable state, reconciles its monthly
// snapshot inside one serializable transaction, then refreshes the global
// total.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := validateAccountName(req.Name); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := dateOf(now)

	account.Name = strings.TrimSpace(req.Name)
	account.AccountType = req.AccountType
	account.Currency = req.Currency
	account.Balance = req.Balance
	account.LastUpdatedAt = now

	tx, err := s.historyRepo.BeginSerializable(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.historyRepo.Rollback(ctx, tx) }()

	if err := s.accountRepo.UpdateAccountInTx(ctx, tx, *account); err != nil {
		return nil, err
	}

	window, err := s.historyRepo.FindRecentByAccountForUpdate(ctx, tx, accountID, historyWindowSize)
	if err != nil {
		return nil, err
	}
	if len(window) == 0 {
		// Creation always writes the first snapshot, so an account without
		// any history is an inconsistency, not a missing resource.
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrHistoryMissing, accountID)
	}

	values := make([]domain.SnapshotValues, len(window))
	for i, h := range window {
		values[i] = h.SnapshotValues
	}

	snap, isNew := snapshot.ReconcileSnapshot(req.Balance, values, today)
	if isNew {
		err = s.historyRepo.SaveHistoryInTx(ctx, tx, domain.AccountHistory{
			HistoryID:      uuid.NewString(),
			AccountID:      accountID,
			SnapshotValues: snap,
		})
	} else {
		err = s.historyRepo.UpdateHistoryInTx(ctx, tx, domain.AccountHistory{
			HistoryID:      window[0].HistoryID,
			AccountID:      accountID,
			SnapshotValues: snap,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile snapshot for account %s: %w", accountID, err)
	}

	if err := s.historyRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID), slog.Bool("new_snapshot", isNew))

	if _, err := s.netWorth.RefreshTotal(ctx); err != nil {
		return nil, fmt.Errorf("account %s updated but total refresh failed: %w", accountID, err)
	}

	return account, nil
}

// DeleteAccount removes an account together with its history snapshots and
// their notes.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
