package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerQuery selects posted lines with StartDate <= date < EndDate.
type GeneralLedgerQuery struct {
	StartDate     time.Time
	EndDate       time.Time
	AccountNumber *string
}

// Normalize truncates both bounds to the day.
func (q GeneralLedgerQuery) Normalize() GeneralLedgerQuery {
	q.StartDate = DateOnly(q.StartDate)
	q.EndDate = DateOnly(q.EndDate)
	return q
}

// Includes reports whether a line dated d on accountNumber belongs in the result.
func (q GeneralLedgerQuery) Includes(d time.Time, accountNumber string) bool {
	day := DateOnly(d)
	if day.Before(DateOnly(q.StartDate)) || !day.Before(DateOnly(q.EndDate)) {
		return false
	}
	return q.AccountNumber == nil || *q.AccountNumber == accountNumber
}

// GeneralLedgerRow is one posted line joined to its account name.
// Description carries the entry narration; LineDescription the line's own text.
type GeneralLedgerRow struct {
	TransactionDate time.Time       `json:"transactionDate"`
	EntryID         string          `json:"entryID"`
	VoucherNumber   string          `json:"voucherNumber"`
	LineNo          int             `json:"lineNo"`
	AccountNumber   string          `json:"accountNumber"`
	AccountName     string          `json:"accountName"`
	Description     string          `json:"description"`
	LineDescription string          `json:"lineDescription"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
}

// SortGeneralLedger orders rows by date, then entry id, then line position.
func SortGeneralLedger(rows []GeneralLedgerRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.TransactionDate.Equal(b.TransactionDate) {
			return a.TransactionDate.Before(b.TransactionDate)
		}
		if a.EntryID != b.EntryID {
			return a.EntryID < b.EntryID
		}
		return a.LineNo < b.LineNo
	})
}

// BuildGeneralLedger expands posted entries into ledger rows. Draft entries
// and lines whose account is missing from accountNames are skipped.
func BuildGeneralLedger(entries []*JournalEntry, accountNames map[string]string, q GeneralLedgerQuery) []GeneralLedgerRow {
	q = q.Normalize()
	rows := []GeneralLedgerRow{}
	for _, e := range entries {
		if e.Status != Posted {
			continue
		}
		for i, l := range e.lines {
			if !q.Includes(e.TransactionDate, l.AccountNumber) {
				continue
			}
			name, ok := accountNames[l.AccountNumber]
			if !ok {
				continue
			}
			rows = append(rows, GeneralLedgerRow{
				TransactionDate: e.TransactionDate,
				EntryID:         e.EntryID,
				VoucherNumber:   e.VoucherNumber,
				LineNo:          i + 1,
				AccountNumber:   l.AccountNumber,
				AccountName:     name,
				Description:     e.Narration,
				LineDescription: l.Description,
				Debit:           l.Debit,
				Credit:          l.Credit,
			})
		}
	}
	SortGeneralLedger(rows)
	return rows
}
