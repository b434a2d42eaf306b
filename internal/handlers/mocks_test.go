package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) Exists(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountService) SeedChart(ctx context.Context, accounts []domain.Account) (int, error) {
	args := m.Called(ctx, accounts)
	return args.Int(0), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) GetAccountingPeriod(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) ListAccountingPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) FindPeriodForDate(ctx context.Context, d time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) CreateAccountingPeriod(ctx context.Context, name string, start, end time.Time, userID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, name, start, end, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) LockPeriod(ctx context.Context, periodID string, userID string) error {
	return m.Called(ctx, periodID, userID).Error(0)
}

func (m *MockPeriodService) UnlockPeriod(ctx context.Context, periodID string, userID string) error {
	return m.Called(ctx, periodID, userID).Error(0)
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalService) CreateJournalEntry(ctx context.Context, entry *domain.JournalEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *MockJournalService) ReverseEntry(ctx context.Context, entryID string, userID string) error {
	return m.Called(ctx, entryID, userID).Error(0)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) QueryGeneralLedger(ctx context.Context, q domain.GeneralLedgerQuery) ([]domain.GeneralLedgerRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerRow), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock ClosingService ---
type MockClosingService struct {
	mock.Mock
}

func (m *MockClosingService) CloseFiscalYear(ctx context.Context, label string, closingDate time.Time, userID string) ([]*domain.JournalEntry, error) {
	args := m.Called(ctx, label, closingDate, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalEntry), args.Error(1)
}

var _ portssvc.ClosingSvcFacade = (*MockClosingService)(nil)
