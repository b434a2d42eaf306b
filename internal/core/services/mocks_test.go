package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock UnitOfWork ---
type MockUnitOfWork struct {
	mock.Mock
	Tx portsrepo.TxRepositories
}

var _ portsrepo.UnitOfWork = (*MockUnitOfWork)(nil)

func (m *MockUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m.Tx)
}

// --- Transaction-bound repositories ---
type stubTxRepositories struct {
	accounts portsrepo.AccountReader
	periods  portsrepo.PeriodRepositoryFacade
	journals portsrepo.JournalRepositoryFacade
}

func (s *stubTxRepositories) Accounts() portsrepo.AccountReader           { return s.accounts }
func (s *stubTxRepositories) Periods() portsrepo.PeriodRepositoryFacade   { return s.periods }
func (s *stubTxRepositories) Journals() portsrepo.JournalRepositoryFacade { return s.journals }

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepositoryFacade = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) FindPeriodByDate(ctx context.Context, d time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) FindOverlappingPeriods(ctx context.Context, start, end time.Time) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) UpdatePeriodLock(ctx context.Context, period domain.AccountingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry *domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListPostedJournalEntries(ctx context.Context, limit int, nextToken *string) ([]*domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]*domain.JournalEntry), returnedNextToken, args.Error(2)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) Exists(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	args := m.Called(ctx, accounts)
	return args.Int(0), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GeneralLedger(ctx context.Context, q domain.GeneralLedgerQuery) ([]domain.GeneralLedgerRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerRow), args.Error(1)
}

// --- Mock JournalWriterSvc ---
type MockJournalWriter struct {
	mock.Mock
}

var _ portssvc.JournalWriterSvc = (*MockJournalWriter)(nil)

func (m *MockJournalWriter) CreateJournalEntry(ctx context.Context, entry *domain.JournalEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *MockJournalWriter) ReverseEntry(ctx context.Context, entryID string, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}

// fakeChart is a fixed chart of accounts.
type fakeChart map[string]bool

func (f fakeChart) Exists(_ context.Context, accountNumber string) (bool, error) {
	return f[accountNumber], nil
}

// layeredChart stands in for a cache; it answers every lookup from whatever it is layered over.
type layeredChart struct {
	over portsrepo.ChartOfAccounts
}

func (l *layeredChart) Exists(context.Context, string) (bool, error) {
	return false, errors.New("layered chart used outside a unit of work")
}

func (l *layeredChart) Over(next portsrepo.ChartOfAccounts) portsrepo.ChartOfAccounts {
	l.over = next
	return next
}

// unknownID is well formed but names nothing stored.
const unknownID = "5b0c1f0e-3c1d-4d8e-9a43-0f6f2b1e7c11"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
