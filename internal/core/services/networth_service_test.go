package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/danielsvicente/my-finance-api/internal/apperrors"
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	portssvc "github.com/danielsvicente/my-finance-api/internal/core/ports/services"
	"github.com/danielsvicente/my-finance-api/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NetWorthServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTotalRepo   *MockTotalHistoryRepository
	mockRateSource  *MockRateSource
	service         portssvc.NetWorthSvc
	now             time.Time
	tx              *fakeTx
}

func (suite *NetWorthServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTotalRepo = new(MockTotalHistoryRepository)
	suite.mockRateSource = new(MockRateSource)
	suite.now = day(2024, time.March, 15)
	suite.tx = &fakeTx{}
	suite.service = services.NewNetWorthService(
		suite.mockAccountRepo,
		suite.mockTotalRepo,
		suite.mockRateSource,
		domain.EUR,
		"EURBRL",
		services.WithNetWorthClock(func() time.Time { return suite.now }),
	)
}

func (suite *NetWorthServiceTestSuite) TestRefreshTotal_FirstSnapshot() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), AccountType: domain.Current, Currency: domain.EUR, Balance: d("100.00")},
		{AccountID: uuid.NewString(), AccountType: domain.Investment, Currency: domain.BRL, Balance: d("543.21")},
	}

	suite.mockRateSource.On("FetchDailyRate", ctx, "EURBRL", suite.now).Return(d("5.4321"), nil).Once()
	suite.mockAccountRepo.On("ListAllAccounts", ctx).Return(accounts, nil).Once()
	suite.mockTotalRepo.On("BeginSerializable", ctx).Return(suite.tx, nil).Once()
	suite.mockTotalRepo.On("FindRecentForUpdate", ctx, suite.tx, 2).Return([]domain.TotalHistory{}, nil).Once()
	suite.mockTotalRepo.On("SaveTotalInTx", ctx, suite.tx, mock.MatchedBy(func(t domain.TotalHistory) bool {
		return t.Balance.Equal(d("200.00")) &&
			t.Invested.Equal(d("100.00")) &&
			t.Uninvested.Equal(d("100.00")) &&
			t.EurBrlRate.Equal(d("5.4321")) &&
			t.Variation.IsZero() &&
			t.Date.Equal(suite.now) &&
			t.TotalID != ""
	})).Return(nil).Once()
	suite.mockTotalRepo.On("Commit", ctx, suite.tx).Return(nil).Once()
	suite.mockTotalRepo.On("Rollback", ctx, suite.tx).Return(nil).Maybe()

	row, err := suite.service.RefreshTotal(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(row)
	suite.True(row.Balance.Equal(d("200.00")))
	suite.True(row.Invested.Equal(d("100.00")))
	suite.True(row.Uninvested.Equal(d("100.00")))

	suite.mockRateSource.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTotalRepo.AssertExpectations(suite.T())
}

func (suite *NetWorthServiceTestSuite) TestRefreshTotal_SameMonthUpdatesInPlace() {
	ctx := context.Background()
	currentRowID := uuid.NewString()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), AccountType: domain.Current, Currency: domain.EUR, Balance: d("110.00")},
	}
	window := []domain.TotalHistory{
		{TotalID: currentRowID, SnapshotValues: domain.SnapshotValues{
			Balance: d("100.00"), Variation: d("0.00"), Date: day(2024, time.March, 2)}},
		{TotalID: uuid.NewString(), SnapshotValues: domain.SnapshotValues{
			Balance: d("100.00"), Variation: d("1.50"), Date: day(2024, time.February, 25)}},
	}

	suite.mockRateSource.On("FetchDailyRate", ctx, "EURBRL", suite.now).Return(d("5.4321"), nil).Once()
	suite.mockAccountRepo.On("ListAllAccounts", ctx).Return(accounts, nil).Once()
	suite.mockTotalRepo.On("BeginSerializable", ctx).Return(suite.tx, nil).Once()
	suite.mockTotalRepo.On("FindRecentForUpdate", ctx, suite.tx, 2).Return(window, nil).Once()
	// The current month's row keeps its identity; variation is recomputed
	// against February's total.
	suite.mockTotalRepo.On("UpdateTotalInTx", ctx, suite.tx, mock.MatchedBy(func(t domain.TotalHistory) bool {
		return t.TotalID == currentRowID &&
			t.Balance.Equal(d("110.00")) &&
			t.Variation.Equal(d("10.00")) &&
			t.Date.Equal(suite.now)
	})).Return(nil).Once()
	suite.mockTotalRepo.On("Commit", ctx, suite.tx).Return(nil).Once()
	suite.mockTotalRepo.On("Rollback", ctx, suite.tx).Return(nil).Maybe()

	row, err := suite.service.RefreshTotal(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(row)
	suite.Equal(currentRowID, row.TotalID)

	suite.mockTotalRepo.AssertExpectations(suite.T())
	suite.mockTotalRepo.AssertNotCalled(suite.T(), "SaveTotalInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NetWorthServiceTestSuite) TestRefreshTotal_TruncatesRate() {
	ctx := context.Background()

	suite.mockRateSource.On("FetchDailyRate", ctx, "EURBRL", suite.now).Return(d("5.43219"), nil).Once()
	suite.mockAccountRepo.On("ListAllAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockTotalRepo.On("BeginSerializable", ctx).Return(suite.tx, nil).Once()
	suite.mockTotalRepo.On("FindRecentForUpdate", ctx, suite.tx, 2).Return([]domain.TotalHistory{}, nil).Once()
	suite.mockTotalRepo.On("SaveTotalInTx", ctx, suite.tx, mock.MatchedBy(func(t domain.TotalHistory) bool {
		return t.EurBrlRate.Equal(d("5.4321"))
	})).Return(nil).Once()
	suite.mockTotalRepo.On("Commit", ctx, suite.tx).Return(nil).Once()
	suite.mockTotalRepo.On("Rollback", ctx, suite.tx).Return(nil).Maybe()

	row, err := suite.service.RefreshTotal(ctx)

	suite.Require().NoError(err)
	suite.True(row.EurBrlRate.Equal(d("5.4321")))
	suite.mockTotalRepo.AssertExpectations(suite.T())
}

func (suite *NetWorthServiceTestSuite) TestRefreshTotal_RateSourceDown() {
	ctx := context.Background()

	suite.mockRateSource.On("FetchDailyRate", ctx, "EURBRL", suite.now).
		Return(decimal.Zero, assert.AnError).Once()

	row, err := suite.service.RefreshTotal(ctx)

	suite.Require().Error(err)
	suite.Nil(row)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)

	// Nothing is read or written when the rate is unavailable.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAllAccounts", mock.Anything)
	suite.mockTotalRepo.AssertNotCalled(suite.T(), "BeginSerializable", mock.Anything)
}

func (suite *NetWorthServiceTestSuite) TestRefreshTotal_NonPositiveRate() {
	ctx := context.Background()

	suite.mockRateSource.On("FetchDailyRate", ctx, "EURBRL", suite.now).Return(d("0"), nil).Once()

	row, err := suite.service.RefreshTotal(ctx)

	suite.Require().Error(err)
	suite.Nil(row)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockTotalRepo.AssertNotCalled(suite.T(), "BeginSerializable", mock.Anything)
}

func (suite *NetWorthServiceTestSuite) TestListTotalHistory_RefreshesFirst() {
	ctx := context.Background()
	expected := []domain.TotalHistory{
		{TotalID: uuid.NewString(), SnapshotValues: domain.SnapshotValues{
			Balance: d("200.00"), Date: day(2024, time.March, 15)}},
		{TotalID: uuid.NewString(), SnapshotValues: domain.SnapshotValues{
			Balance: d("180.00"), Date: day(2024, time.February, 28)}},
	}

	suite.mockRateSource.On("FetchDailyRate", ctx, "EURBRL", suite.now).Return(d("5.4321"), nil).Once()
	suite.mockAccountRepo.On("ListAllAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockTotalRepo.On("BeginSerializable", ctx).Return(suite.tx, nil).Once()
	suite.mockTotalRepo.On("FindRecentForUpdate", ctx, suite.tx, 2).Return([]domain.TotalHistory{}, nil).Once()
	suite.mockTotalRepo.On("SaveTotalInTx", ctx, suite.tx, mock.AnythingOfType("domain.TotalHistory")).Return(nil).Once()
	suite.mockTotalRepo.On("Commit", ctx, suite.tx).Return(nil).Once()
	suite.mockTotalRepo.On("Rollback", ctx, suite.tx).Return(nil).Maybe()
	suite.mockTotalRepo.On("ListTotals", ctx).Return(expected, nil).Once()

	totals, err := suite.service.ListTotalHistory(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, totals)
	suite.mockTotalRepo.AssertExpectations(suite.T())
}

func (suite *NetWorthServiceTestSuite) TestListTotalHistory_RefreshFailureAborts() {
	ctx := context.Background()

	suite.mockRateSource.On("FetchDailyRate", ctx, "EURBRL", suite.now).
		Return(decimal.Zero, assert.AnError).Once()

	totals, err := suite.service.ListTotalHistory(ctx)

	suite.Require().Error(err)
	suite.Nil(totals)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockTotalRepo.AssertNotCalled(suite.T(), "ListTotals", mock.Anything)
}

func TestNetWorthService(t *testing.T) {
	suite.Run(t, new(NetWorthServiceTestSuite))
}
