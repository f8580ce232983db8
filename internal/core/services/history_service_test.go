package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/danielsvicente/my-finance-api/internal/apperrors"
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	portssvc "github.com/danielsvicente/my-finance-api/internal/core/ports/services"
	"github.com/danielsvicente/my-finance-api/internal/core/services"
	"github.com/danielsvicente/my-finance-api/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockHistoryRepo *MockAccountHistoryRepository
	mockNoteRepo    *MockNoteRepository
	service         portssvc.HistorySvc
	now             time.Time
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockHistoryRepo = new(MockAccountHistoryRepository)
	suite.mockNoteRepo = new(MockNoteRepository)
	suite.now = day(2024, time.March, 15)
	suite.service = services.NewHistoryService(
		suite.mockAccountRepo,
		suite.mockHistoryRepo,
		suite.mockNoteRepo,
		services.WithHistoryClock(func() time.Time { return suite.now }),
	)
}

func (suite *HistoryServiceTestSuite) TestListAccountHistory_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	expected := []domain.AccountHistory{
		{HistoryID: uuid.NewString(), AccountID: accountID, SnapshotValues: domain.SnapshotValues{
			Balance: d("110.00"), Variation: d("10.00"), Date: day(2024, time.March, 10)}},
		{HistoryID: uuid.NewString(), AccountID: accountID, SnapshotValues: domain.SnapshotValues{
			Balance: d("100.00"), Date: day(2024, time.February, 25)}},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).
		Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockHistoryRepo.On("ListByAccount", ctx, accountID).Return(expected, nil).Once()

	history, err := suite.service.ListAccountHistory(ctx, accountID)

	suite.Require().NoError(err)
	suite.Equal(expected, history)
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestListAccountHistory_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	history, err := suite.service.ListAccountHistory(ctx, accountID)

	suite.Require().Error(err)
	suite.Nil(history)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "ListByAccount", mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestListAccountHistory_EmptyIsNotAnError() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).
		Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockHistoryRepo.On("ListByAccount", ctx, accountID).Return([]domain.AccountHistory{}, nil).Once()

	history, err := suite.service.ListAccountHistory(ctx, accountID)

	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *HistoryServiceTestSuite) TestAddNote_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	historyID := uuid.NewString()

	suite.mockHistoryRepo.On("FindHistoryByID", ctx, historyID).
		Return(&domain.AccountHistory{HistoryID: historyID, AccountID: accountID}, nil).Once()
	suite.mockNoteRepo.On("SaveNote", ctx, mock.MatchedBy(func(n domain.Note) bool {
		return n.HistoryID == historyID &&
			n.Text == "Moved bonus into savings" &&
			n.Date.Equal(day(2024, time.March, 15)) &&
			n.NoteID != ""
	})).Return(nil).Once()

	note, err := suite.service.AddNote(ctx, accountID, historyID, dto.CreateNoteRequest{Note: "Moved bonus into savings"})

	suite.Require().NoError(err)
	suite.Require().NotNil(note)
	suite.Equal("Moved bonus into savings", note.Text)
	suite.NotEmpty(note.NoteID)

	suite.mockNoteRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestAddNote_EmptyText() {
	ctx := context.Background()

	note, err := suite.service.AddNote(ctx, uuid.NewString(), uuid.NewString(), dto.CreateNoteRequest{Note: ""})

	suite.Require().Error(err)
	suite.Nil(note)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockNoteRepo.AssertNotCalled(suite.T(), "SaveNote", mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestAddNote_SnapshotBelongsToAnotherAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	historyID := uuid.NewString()

	suite.mockHistoryRepo.On("FindHistoryByID", ctx, historyID).
		Return(&domain.AccountHistory{HistoryID: historyID, AccountID: uuid.NewString()}, nil).Once()

	note, err := suite.service.AddNote(ctx, accountID, historyID, dto.CreateNoteRequest{Note: "text"})

	suite.Require().Error(err)
	suite.Nil(note)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockNoteRepo.AssertNotCalled(suite.T(), "SaveNote", mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestListNotes_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	historyID := uuid.NewString()
	expected := []domain.Note{
		{NoteID: uuid.NewString(), HistoryID: historyID, Text: "first", Date: day(2024, time.March, 3)},
		{NoteID: uuid.NewString(), HistoryID: historyID, Text: "second", Date: day(2024, time.March, 9)},
	}

	suite.mockHistoryRepo.On("FindHistoryByID", ctx, historyID).
		Return(&domain.AccountHistory{HistoryID: historyID, AccountID: accountID}, nil).Once()
	suite.mockNoteRepo.On("ListNotesByHistory", ctx, historyID).Return(expected, nil).Once()

	notes, err := suite.service.ListNotes(ctx, accountID, historyID)

	suite.Require().NoError(err)
	suite.Equal(expected, notes)
	suite.mockNoteRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestListNotes_SnapshotNotFound() {
	ctx := context.Background()

	suite.mockHistoryRepo.On("FindHistoryByID", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	notes, err := suite.service.ListNotes(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(notes)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestHistoryService(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
