package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// JournalEntry is one accounting transaction. It owns its lines and moves from
// Draft to Posted exactly once.
type JournalEntry struct {
	EntryID         string        `json:"entryID"`
	VoucherNumber   string        `json:"voucherNumber"`
	TransactionDate time.Time     `json:"transactionDate"`
	Narration       string        `json:"narration"`
	Status          JournalStatus `json:"status"`
	PostedAt        *time.Time    `json:"postedAt,omitempty"`
	AuditFields

	lines []LedgerEntry
}

// NewJournalEntry creates an empty Draft entry dated on the day of transactionDate.
func NewJournalEntry(voucherNumber string, transactionDate time.Time, narration string, createdBy string, now time.Time) (*JournalEntry, error) {
	voucherNumber = strings.TrimSpace(voucherNumber)
	if voucherNumber == "" {
		return nil, fmt.Errorf("%w: voucher number is required", ErrInvalidEntry)
	}
	if transactionDate.IsZero() {
		return nil, fmt.Errorf("%w: transaction date is required for voucher %s", ErrInvalidEntry, voucherNumber)
	}
	return &JournalEntry{
		EntryID:         uuid.NewString(),
		VoucherNumber:   voucherNumber,
		TransactionDate: DateOnly(transactionDate),
		Narration:       narration,
		Status:          Draft,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}, nil
}

// RestoreJournalEntry rebuilds an entry from storage without re-running the
// Draft constructor checks.
func RestoreJournalEntry(header JournalEntry, lines []LedgerEntry) *JournalEntry {
	e := header
	e.TransactionDate = DateOnly(header.TransactionDate)
	e.lines = append([]LedgerEntry(nil), lines...)
	return &e
}

// AddLine appends a validated line. Posted entries are immutable.
func (e *JournalEntry) AddLine(line LedgerEntry) error {
	if e.Status == Posted {
		return fmt.Errorf("%w: cannot add lines to voucher %s", ErrAlreadyPosted, e.VoucherNumber)
	}
	if err := line.Validate(); err != nil {
		return err
	}
	e.lines = append(e.lines, line)
	return nil
}

// Lines returns a copy of the entry's lines in insertion order.
func (e *JournalEntry) Lines() []LedgerEntry {
	return append([]LedgerEntry(nil), e.lines...)
}

// LineCount returns the number of lines.
func (e *JournalEntry) LineCount() int {
	return len(e.lines)
}

// TotalDebit sums the debit side.
func (e *JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side.
func (e *JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced is true when the entry has at least one line and debits equal credits exactly.
func (e *JournalEntry) IsBalanced() bool {
	return len(e.lines) > 0 && e.TotalDebit().Equal(e.TotalCredit())
}

// AccountNumbers returns each referenced account number once, in first-seen order.
func (e *JournalEntry) AccountNumbers() []string {
	seen := make(map[string]struct{}, len(e.lines))
	numbers := make([]string, 0, len(e.lines))
	for _, l := range e.lines {
		if _, ok := seen[l.AccountNumber]; ok {
			continue
		}
		seen[l.AccountNumber] = struct{}{}
		numbers = append(numbers, l.AccountNumber)
	}
	return numbers
}

// Post moves the entry from Draft to Posted.
func (e *JournalEntry) Post(at time.Time) error {
	if e.Status == Posted {
		return fmt.Errorf("%w: voucher %s", ErrAlreadyPosted, e.VoucherNumber)
	}
	if len(e.lines) == 0 {
		return fmt.Errorf("%w: voucher %s", ErrNoLines, e.VoucherNumber)
	}
	if !e.IsBalanced() {
		return &PostingError{
			Reason:        ErrUnbalanced,
			VoucherNumber: e.VoucherNumber,
			Value:         fmt.Sprintf("debit %s, credit %s", e.TotalDebit().String(), e.TotalCredit().String()),
		}
	}
	e.Status = Posted
	e.PostedAt = &at
	e.LastUpdatedAt = at
	return nil
}

// Clone returns a deep copy of the entry.
func (e *JournalEntry) Clone() *JournalEntry {
	c := *e
	c.lines = e.Lines()
	if e.PostedAt != nil {
		t := *e.PostedAt
		c.PostedAt = &t
	}
	return &c
}
