package services_test

import (
	"context"
	"time"

	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live transaction handle. The services never call
// methods on the handle directly, they only pass it back to the repository
// mocks, so the embedded interface is never invoked.
type fakeTx struct {
	pgx.Tx
}

// --- MockAccountRepository implements portsrepo.AccountRepositoryFacade ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAllAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) BeginSerializable(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- MockAccountHistoryRepository implements portsrepo.AccountHistoryRepository ---

type MockAccountHistoryRepository struct {
	mock.Mock
}

func (m *MockAccountHistoryRepository) FindRecentByAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string, limit int) ([]domain.AccountHistory, error) {
	args := m.Called(ctx, tx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountHistory), args.Error(1)
}

func (m *MockAccountHistoryRepository) SaveHistoryInTx(ctx context.Context, tx pgx.Tx, history domain.AccountHistory) error {
	args := m.Called(ctx, tx, history)
	return args.Error(0)
}

func (m *MockAccountHistoryRepository) UpdateHistoryInTx(ctx context.Context, tx pgx.Tx, history domain.AccountHistory) error {
	args := m.Called(ctx, tx, history)
	return args.Error(0)
}

func (m *MockAccountHistoryRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.AccountHistory, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountHistory), args.Error(1)
}

func (m *MockAccountHistoryRepository) FindHistoryByID(ctx context.Context, historyID string) (*domain.AccountHistory, error) {
	args := m.Called(ctx, historyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountHistory), args.Error(1)
}

func (m *MockAccountHistoryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountHistoryRepository) BeginSerializable(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountHistoryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountHistoryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- MockTotalHistoryRepository implements portsrepo.TotalHistoryRepository ---

type MockTotalHistoryRepository struct {
	mock.Mock
}

func (m *MockTotalHistoryRepository) FindRecentForUpdate(ctx context.Context, tx pgx.Tx, limit int) ([]domain.TotalHistory, error) {
	args := m.Called(ctx, tx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TotalHistory), args.Error(1)
}

func (m *MockTotalHistoryRepository) SaveTotalInTx(ctx context.Context, tx pgx.Tx, total domain.TotalHistory) error {
	args := m.Called(ctx, tx, total)
	return args.Error(0)
}

func (m *MockTotalHistoryRepository) UpdateTotalInTx(ctx context.Context, tx pgx.Tx, total domain.TotalHistory) error {
	args := m.Called(ctx, tx, total)
	return args.Error(0)
}

func (m *MockTotalHistoryRepository) ListTotals(ctx context.Context) ([]domain.TotalHistory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TotalHistory), args.Error(1)
}

func (m *MockTotalHistoryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTotalHistoryRepository) BeginSerializable(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTotalHistoryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTotalHistoryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- MockNoteRepository implements portsrepo.NoteRepository ---

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) ListNotesByHistory(ctx context.Context, historyID string) ([]domain.Note, error) {
	args := m.Called(ctx, historyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

// --- MockRateSource implements portsrepo.RateSource ---

type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchDailyRate(ctx context.Context, pair string, day time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, pair, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- MockNetWorthService implements portssvc.NetWorthSvc ---

type MockNetWorthService struct {
	mock.Mock
}

func (m *MockNetWorthService) RefreshTotal(ctx context.Context) (*domain.TotalHistory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TotalHistory), args.Error(1)
}

func (m *MockNetWorthService) ListTotalHistory(ctx context.Context) ([]domain.TotalHistory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TotalHistory), args.Error(1)
}
