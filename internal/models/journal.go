package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID         string        `db:"entry_id"`
	VoucherNumber   string        `db:"voucher_number"`
	TransactionDate time.Time     `db:"transaction_date"`
	Narration       string        `db:"narration"`
	Status          JournalStatus `db:"status"`
	PostedAt        *time.Time    `db:"posted_at"`
	AuditFields
}

// LedgerLine is a row of the ledger_lines table. Lines have no identity of
// their own; (EntryID, LineNo) is the key.
type LedgerLine struct {
	EntryID       string          `db:"entry_id"`
	LineNo        int             `db:"line_no"`
	AccountNumber string          `db:"account_number"`
	Description   string          `db:"description"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
}

// GeneralLedgerRow is one row of the general ledger projection.
type GeneralLedgerRow struct {
	TransactionDate time.Time       `db:"transaction_date"`
	EntryID         string          `db:"entry_id"`
	VoucherNumber   string          `db:"voucher_number"`
	LineNo          int             `db:"line_no"`
	AccountNumber   string          `db:"account_number"`
	AccountName     string          `db:"account_name"`
	Narration       string          `db:"narration"`
	LineDescription string          `db:"line_description"`
	Debit           decimal.Decimal `db:"debit"`
	Credit          decimal.Decimal `db:"credit"`
}
