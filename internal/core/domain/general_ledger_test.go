package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postedEntry(t *testing.T, id string, d time.Time, lines ...domain.LedgerEntry) *domain.JournalEntry {
	t.Helper()
	e := domain.RestoreJournalEntry(domain.JournalEntry{
		EntryID:         id,
		VoucherNumber:   "V-" + id,
		TransactionDate: d,
		Narration:       "narration " + id,
		Status:          domain.Draft,
	}, lines)
	require.NoError(t, e.Post(time.Now()))
	return e
}

func TestBuildGeneralLedger(t *testing.T) {
	names := map[string]string{"111": "Tiền Việt Nam", "511": "Doanh thu bán hàng và cung cấp dịch vụ"}

	inRangeB := postedEntry(t, "b", date(2025, 6, 15), mustLine(t, "111", 100, 0), mustLine(t, "511", 0, 100))
	inRangeA := postedEntry(t, "a", date(2025, 6, 15), mustLine(t, "111", 20, 0), mustLine(t, "511", 0, 20))
	early := postedEntry(t, "c", date(2025, 6, 1), mustLine(t, "111", 5, 0), mustLine(t, "511", 0, 5))
	onEnd := postedEntry(t, "d", date(2025, 7, 1), mustLine(t, "111", 7, 0), mustLine(t, "511", 0, 7))
	before := postedEntry(t, "e", date(2025, 5, 31), mustLine(t, "111", 9, 0), mustLine(t, "511", 0, 9))
	draft := domain.RestoreJournalEntry(domain.JournalEntry{EntryID: "f", TransactionDate: date(2025, 6, 20), Status: domain.Draft},
		[]domain.LedgerEntry{mustLine(t, "111", 1, 0), mustLine(t, "511", 0, 1)})

	entries := []*domain.JournalEntry{inRangeB, draft, onEnd, inRangeA, before, early}
	q := domain.GeneralLedgerQuery{StartDate: date(2025, 6, 1), EndDate: date(2025, 7, 1)}

	rows := domain.BuildGeneralLedger(entries, names, q)
	require.Len(t, rows, 6)

	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.EntryID+":"+r.AccountNumber)
		assert.Equal(t, names[r.AccountNumber], r.AccountName)
		assert.NotEqual(t, "f", r.EntryID)
	}
	assert.Equal(t, []string{"c:111", "c:511", "a:111", "a:511", "b:111", "b:511"}, got)
	assert.Equal(t, "narration c", rows[0].Description)
}

func TestBuildGeneralLedger_AccountFilter(t *testing.T) {
	names := map[string]string{"111": "Cash", "511": "Revenue"}
	e := postedEntry(t, "a", date(2025, 6, 15), mustLine(t, "111", 100, 0), mustLine(t, "511", 0, 100))
	filter := "511"

	rows := domain.BuildGeneralLedger([]*domain.JournalEntry{e}, names, domain.GeneralLedgerQuery{
		StartDate: date(2025, 1, 1), EndDate: date(2026, 1, 1), AccountNumber: &filter,
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "511", rows[0].AccountNumber)
	assert.True(t, rows[0].Credit.IsPositive())
}

func TestBuildGeneralLedger_EmptyIsNotNil(t *testing.T) {
	rows := domain.BuildGeneralLedger(nil, nil, domain.GeneralLedgerQuery{StartDate: date(2025, 1, 1), EndDate: date(2025, 2, 1)})
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
