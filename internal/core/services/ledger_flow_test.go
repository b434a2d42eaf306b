package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/core/services"
	"github.com/SscSPs/tt99_ledger/internal/platform/config"
	"github.com/SscSPs/tt99_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerFlowTestSuite drives the services end to end over the in-memory store.
type LedgerFlowTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	svc   *portssvc.ServiceContainer
	fy    *domain.AccountingPeriod
}

func TestLedgerFlowTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerFlowTestSuite))
}

func (suite *LedgerFlowTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())

	var err error
	suite.svc, err = services.NewServiceContainer(&config.Config{EquityDebitPolicy: "advisory"}, suite.repos, nil)
	suite.Require().NoError(err)

	_, err = suite.svc.Account.SeedChart(suite.ctx, []domain.Account{
		{AccountNumber: "111", Name: "Tiền mặt", AccountType: domain.Asset, Level: 1},
		{AccountNumber: "112", Name: "Tiền gửi không kỳ hạn", AccountType: domain.Asset, Level: 1},
		{AccountNumber: "421", Name: "Lợi nhuận sau thuế chưa phân phối", AccountType: domain.Equity, Level: 1},
		{AccountNumber: "511", Name: "Doanh thu bán hàng và cung cấp dịch vụ", AccountType: domain.Revenue, Level: 1},
		{AccountNumber: "632", Name: "Giá vốn hàng bán", AccountType: domain.Expense, Level: 1},
	})
	suite.Require().NoError(err)

	suite.fy, err = suite.svc.Period.CreateAccountingPeriod(suite.ctx, "FY2025", date(2025, 1, 1), date(2025, 12, 31), "admin")
	suite.Require().NoError(err)
}

func (suite *LedgerFlowTestSuite) entry(voucher string, d time.Time, lines ...lineSpec) *domain.JournalEntry {
	e, err := domain.NewJournalEntry(voucher, d, "Bán hàng thu tiền mặt", "clerk", time.Now())
	suite.Require().NoError(err)
	for _, l := range lines {
		amount := decimal.NewFromInt(l.amount)
		var line domain.LedgerEntry
		if amount.IsPositive() {
			line, err = domain.DebitLine(l.account, "", amount)
		} else {
			line, err = domain.CreditLine(l.account, "", amount.Neg())
		}
		suite.Require().NoError(err)
		suite.Require().NoError(e.AddLine(line))
	}
	return e
}

// lineSpec is a signed amount: positive debits, negative credits.
type lineSpec struct {
	account string
	amount  int64
}

func dr(acc string, amount int64) lineSpec { return lineSpec{acc, amount} }
func cr(acc string, amount int64) lineSpec { return lineSpec{acc, -amount} }

func (suite *LedgerFlowTestSuite) postedCount() int {
	resp, _, err := suite.repos.JournalRepo.ListPostedJournalEntries(suite.ctx, 1000, nil)
	suite.Require().NoError(err)
	return len(resp)
}

func (suite *LedgerFlowTestSuite) TestPostsBalancedEntry() {
	e := suite.entry("PT0001", date(2025, 6, 15), dr("111", 100), cr("511", 100))

	id, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, e)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, e.Status)
	stored, err := suite.svc.Journal.GetJournalEntry(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal(domain.Posted, stored.Status)
	suite.Equal(2, stored.LineCount())
}

func (suite *LedgerFlowTestSuite) TestUnbalancedEntryPersistsNothing() {
	e := suite.entry("PT0001", date(2025, 6, 15), dr("111", 100), cr("511", 90))

	_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, e)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrUnbalanced)
	suite.Equal(domain.Draft, e.Status)
	suite.Equal(0, suite.postedCount())
}

func (suite *LedgerFlowTestSuite) TestLockedPeriodRejectsPosting() {
	suite.Require().NoError(suite.svc.Period.LockPeriod(suite.ctx, suite.fy.PeriodID, "chief-accountant"))
	e := suite.entry("PT0002", date(2025, 6, 15), dr("111", 100), cr("511", 100))

	_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, e)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrPeriodLocked)

	suite.Require().NoError(suite.svc.Period.UnlockPeriod(suite.ctx, suite.fy.PeriodID, "chief-accountant"))
	_, err = suite.svc.Journal.CreateJournalEntry(suite.ctx, e)
	suite.Require().NoError(err)
}

func (suite *LedgerFlowTestSuite) TestUnknownAccountRejected() {
	e := suite.entry("PT0003", date(2025, 6, 15), dr("999", 100), cr("511", 100))

	_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, e)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrUnknownAccount)
	var perr *domain.PostingError
	suite.Require().True(errors.As(err, &perr))
	suite.Equal("999", perr.Value)
}

func (suite *LedgerFlowTestSuite) TestGeneralLedgerWindow() {
	inside1 := suite.entry("PT0010", date(2025, 6, 30), dr("112", 300), cr("511", 300))
	inside2 := suite.entry("PT0011", date(2025, 6, 1), dr("111", 100), cr("511", 100))
	onEnd := suite.entry("PT0012", date(2025, 7, 1), dr("111", 50), cr("511", 50))
	before := suite.entry("PT0013", date(2025, 5, 31), dr("111", 70), cr("511", 70))
	for _, e := range []*domain.JournalEntry{inside1, inside2, onEnd, before} {
		_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, e)
		suite.Require().NoError(err)
	}

	rows, err := suite.svc.Reporting.QueryGeneralLedger(suite.ctx, domain.GeneralLedgerQuery{
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 7, 1),
	})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)
	suite.Equal(inside2.EntryID, rows[0].EntryID)
	suite.Equal(inside2.EntryID, rows[1].EntryID)
	suite.Equal(inside1.EntryID, rows[2].EntryID)
	suite.Equal(inside1.EntryID, rows[3].EntryID)
	suite.Equal("Tiền mặt", rows[0].AccountName)
	suite.Equal("Tiền gửi không kỳ hạn", rows[2].AccountName)
	suite.Equal("Doanh thu bán hàng và cung cấp dịch vụ", rows[3].AccountName)
	suite.True(rows[0].Debit.Equal(decimal.NewFromInt(100)))
	suite.True(rows[1].Credit.Equal(decimal.NewFromInt(100)))

	account := "112"
	rows, err = suite.svc.Reporting.QueryGeneralLedger(suite.ctx, domain.GeneralLedgerQuery{
		StartDate:     date(2025, 1, 1),
		EndDate:       date(2026, 1, 1),
		AccountNumber: &account,
	})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("PT0010", rows[0].VoucherNumber)
}

func (suite *LedgerFlowTestSuite) TestDraftNeverReachesLedger() {
	draft := suite.entry("PT0020", date(2025, 6, 15), dr("111", 100), cr("511", 100))
	suite.Require().NoError(suite.repos.JournalRepo.SaveJournalEntry(suite.ctx, draft))

	rows, err := suite.svc.Reporting.QueryGeneralLedger(suite.ctx, domain.GeneralLedgerQuery{
		StartDate: date(1900, 1, 1),
		EndDate:   date(2100, 1, 1),
	})

	suite.Require().NoError(err)
	suite.NotNil(rows)
	suite.Empty(rows)
}

func (suite *LedgerFlowTestSuite) TestNoPeriodDefined() {
	e := suite.entry("PT0030", date(2026, 1, 2), dr("111", 100), cr("511", 100))

	_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, e)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrNoPeriodDefined)
}

func (suite *LedgerFlowTestSuite) TestConcurrentLockAndPost() {
	entries := make([]*domain.JournalEntry, 20)
	for i := range entries {
		entries[i] = suite.entry(fmt.Sprintf("PT1%03d", i), date(2025, 3, 3), dr("111", 10), cr("511", 10))
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(entries))
	for _, e := range entries {
		wg.Add(1)
		go func(e *domain.JournalEntry) {
			defer wg.Done()
			_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, e)
			errs <- err
		}(e)
	}
	suite.Require().NoError(suite.svc.Period.LockPeriod(suite.ctx, suite.fy.PeriodID, "chief-accountant"))
	wg.Wait()
	close(errs)

	posted := 0
	for err := range errs {
		if err == nil {
			posted++
			continue
		}
		suite.ErrorIs(err, domain.ErrPeriodLocked)
	}
	// Every post either committed before the lock or was refused after it.
	suite.Equal(posted, suite.postedCount())

	late := suite.entry("PT2000", date(2025, 3, 3), dr("111", 10), cr("511", 10))
	_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, late)
	suite.ErrorIs(err, domain.ErrPeriodLocked)
}

// netCredit sums credit minus debit on account over FY2025.
func (suite *LedgerFlowTestSuite) netCredit(account string) decimal.Decimal {
	rows, err := suite.svc.Reporting.QueryGeneralLedger(suite.ctx, domain.GeneralLedgerQuery{
		StartDate:     date(2025, 1, 1),
		EndDate:       date(2026, 1, 1),
		AccountNumber: &account,
	})
	suite.Require().NoError(err)
	net := decimal.Zero
	for _, r := range rows {
		net = net.Add(r.Credit).Sub(r.Debit)
	}
	return net
}

func (suite *LedgerFlowTestSuite) TestCloseFiscalYearMovesProfitToRetainedEarnings() {
	_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, suite.entry("PT0001", date(2025, 3, 1), dr("111", 10_000_000), cr("511", 10_000_000)))
	suite.Require().NoError(err)
	_, err = suite.svc.Journal.CreateJournalEntry(suite.ctx, suite.entry("PX0001", date(2025, 4, 1), dr("632", 3_000_000), cr("111", 3_000_000)))
	suite.Require().NoError(err)

	entries, err := suite.svc.Closing.CloseFiscalYear(suite.ctx, "FY2025", date(2025, 12, 31), "chief-accountant")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	for _, e := range entries {
		suite.Equal(domain.Posted, e.Status)
	}
	suite.True(suite.netCredit("421").Equal(decimal.NewFromInt(7_000_000)))
	suite.True(suite.netCredit("511").IsZero())
	suite.True(suite.netCredit("632").IsZero())
	suite.Equal(4, suite.postedCount())

	again, err := suite.svc.Closing.CloseFiscalYear(suite.ctx, "FY2025", date(2025, 12, 31), "chief-accountant")
	suite.Require().NoError(err)
	suite.Empty(again)
	suite.Equal(4, suite.postedCount())
}

func (suite *LedgerFlowTestSuite) TestCloseFiscalYearInLockedPeriod() {
	_, err := suite.svc.Journal.CreateJournalEntry(suite.ctx, suite.entry("PT0001", date(2025, 3, 1), dr("111", 100), cr("511", 100)))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.svc.Period.LockPeriod(suite.ctx, suite.fy.PeriodID, "chief-accountant"))

	_, err = suite.svc.Closing.CloseFiscalYear(suite.ctx, "FY2025", date(2025, 12, 31), "chief-accountant")

	suite.ErrorIs(err, domain.ErrPeriodLocked)
	suite.Equal(1, suite.postedCount())
}
