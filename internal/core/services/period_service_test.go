package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	uow        *MockUnitOfWork
	periodRepo *MockPeriodRepository
	service    portssvc.PeriodSvcFacade
	now        time.Time
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.periodRepo = new(MockPeriodRepository)
	suite.uow = &MockUnitOfWork{Tx: &stubTxRepositories{periods: suite.periodRepo}}
	suite.now = time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	suite.service = services.NewPeriodService(suite.periodRepo, suite.uow,
		services.WithPeriodClock(func() time.Time { return suite.now }))
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}

func (suite *PeriodServiceTestSuite) period(name string, start, end time.Time) *domain.AccountingPeriod {
	p, err := domain.NewAccountingPeriod(name, start, end, "admin", suite.now)
	suite.Require().NoError(err)
	return p
}

func (suite *PeriodServiceTestSuite) TestCreateAccountingPeriod_Success() {
	ctx := context.Background()
	suite.uow.On("WithinTransaction", ctx).Return(nil).Once()
	suite.periodRepo.On("FindOverlappingPeriods", ctx, date(2025, 1, 1), date(2025, 12, 31)).Return([]domain.AccountingPeriod{}, nil).Once()
	suite.periodRepo.On("SavePeriod", ctx, mock.MatchedBy(func(p domain.AccountingPeriod) bool {
		return p.Name == "FY2025" && !p.IsLocked && p.CreatedBy == "admin"
	})).Return(nil).Once()

	p, err := suite.service.CreateAccountingPeriod(ctx, "FY2025", date(2025, 1, 1), date(2025, 12, 31), "admin")

	suite.Require().NoError(err)
	suite.NotEmpty(p.PeriodID)
	suite.Equal(suite.now, p.CreatedAt)
	suite.periodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreateAccountingPeriod_Invalid() {
	ctx := context.Background()

	_, err := suite.service.CreateAccountingPeriod(ctx, "  ", date(2025, 1, 1), date(2025, 12, 31), "admin")
	suite.ErrorIs(err, domain.ErrInvalidPeriod)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateAccountingPeriod(ctx, "FY2025", date(2025, 12, 31), date(2025, 1, 1), "admin")
	suite.ErrorIs(err, domain.ErrInvalidPeriod)

	suite.uow.AssertNotCalled(suite.T(), "WithinTransaction", mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreateAccountingPeriod_Overlap() {
	ctx := context.Background()
	existing := suite.period("FY2025", date(2025, 1, 1), date(2025, 12, 31))
	suite.uow.On("WithinTransaction", ctx).Return(nil).Once()
	suite.periodRepo.On("FindOverlappingPeriods", ctx, date(2025, 7, 1), date(2026, 6, 30)).
		Return([]domain.AccountingPeriod{*existing}, nil).Once()

	_, err := suite.service.CreateAccountingPeriod(ctx, "FY2025-26", date(2025, 7, 1), date(2026, 6, 30), "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), existing.PeriodID)
	suite.periodRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestLockPeriod() {
	ctx := context.Background()
	p := suite.period("FY2025", date(2025, 1, 1), date(2025, 12, 31))
	suite.uow.On("WithinTransaction", ctx).Return(nil).Once()
	suite.periodRepo.On("FindPeriodByID", ctx, p.PeriodID).Return(p, nil).Once()
	suite.periodRepo.On("UpdatePeriodLock", ctx, mock.MatchedBy(func(u domain.AccountingPeriod) bool {
		return u.IsLocked && u.LastUpdatedBy == "chief"
	})).Return(nil).Once()

	err := suite.service.LockPeriod(ctx, p.PeriodID, "chief")

	suite.Require().NoError(err)
	suite.periodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestLockPeriod_AlreadyLocked() {
	ctx := context.Background()
	p := suite.period("FY2025", date(2025, 1, 1), date(2025, 12, 31))
	suite.Require().NoError(p.Lock())
	suite.uow.On("WithinTransaction", ctx).Return(nil).Once()
	suite.periodRepo.On("FindPeriodByID", ctx, p.PeriodID).Return(p, nil).Once()

	err := suite.service.LockPeriod(ctx, p.PeriodID, "chief")

	suite.ErrorIs(err, domain.ErrPeriodAlreadyLocked)
	suite.Equal("conflict", apperrors.Kind(err))
	suite.periodRepo.AssertNotCalled(suite.T(), "UpdatePeriodLock", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestUnlockPeriod_NotFound() {
	ctx := context.Background()
	suite.uow.On("WithinTransaction", ctx).Return(nil).Once()
	suite.periodRepo.On("FindPeriodByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.UnlockPeriod(ctx, unknownID, "chief")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), unknownID)
	suite.periodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestMalformedPeriodIDIsNotFound() {
	ctx := context.Background()

	err := suite.service.LockPeriod(ctx, "abc", "chief")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("not_found", apperrors.Kind(err))

	err = suite.service.UnlockPeriod(ctx, "abc", "chief")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.GetAccountingPeriod(ctx, "abc")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "abc")

	suite.uow.AssertNotCalled(suite.T(), "WithinTransaction", mock.Anything)
	suite.periodRepo.AssertNotCalled(suite.T(), "FindPeriodByID", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestUnlockPeriod_StorageError() {
	ctx := context.Background()
	dbErr := errors.New("deadlock detected")
	suite.uow.On("WithinTransaction", ctx).Return(nil).Once()
	suite.periodRepo.On("FindPeriodByID", ctx, unknownID).Return(nil, dbErr).Once()

	err := suite.service.UnlockPeriod(ctx, unknownID, "chief")

	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PeriodServiceTestSuite) TestFindPeriodForDate() {
	ctx := context.Background()
	p := suite.period("FY2025", date(2025, 1, 1), date(2025, 12, 31))
	suite.periodRepo.On("FindPeriodByDate", ctx, date(2025, 6, 15)).Return(p, nil).Once()
	suite.periodRepo.On("FindPeriodByDate", ctx, date(2030, 1, 1)).Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.FindPeriodForDate(ctx, time.Date(2025, 6, 15, 17, 45, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Equal(p.PeriodID, found.PeriodID)

	_, err = suite.service.FindPeriodForDate(ctx, date(2030, 1, 1))
	suite.ErrorIs(err, domain.ErrNoPeriodDefined)
}

func (suite *PeriodServiceTestSuite) TestGetAndListPeriods() {
	ctx := context.Background()
	p := suite.period("FY2025", date(2025, 1, 1), date(2025, 12, 31))
	suite.periodRepo.On("FindPeriodByID", ctx, p.PeriodID).Return(p, nil).Once()
	suite.periodRepo.On("ListPeriods", ctx).Return([]domain.AccountingPeriod{*p}, nil).Once()

	got, err := suite.service.GetAccountingPeriod(ctx, p.PeriodID)
	suite.Require().NoError(err)
	suite.Equal("FY2025", got.Name)

	all, err := suite.service.ListAccountingPeriods(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}
