package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClosingGroup is the set of accounts one year-end closing entry brings to zero.
// An account belongs to the group when its number starts with one of Roots, so
// 511 also covers 5111.
type ClosingGroup struct {
	Roots []string

	// CreditNormal marks revenue-like groups whose balances sit on the credit side.
	CreditNormal bool
}

// ClosingBalance is an account's net balance on its group's normal side.
// A negative Amount is a balance on the other side.
type ClosingBalance struct {
	AccountNumber string
	Amount        decimal.Decimal
}

// Covers reports whether accountNumber is closed by the group.
func (g ClosingGroup) Covers(accountNumber string) bool {
	for _, root := range g.Roots {
		if root != "" && strings.HasPrefix(accountNumber, root) {
			return true
		}
	}
	return false
}

// Balances nets the rows of covered accounts. Accounts already at zero are
// dropped and the rest are ordered by account number.
func (g ClosingGroup) Balances(rows []GeneralLedgerRow) []ClosingBalance {
	net := make(map[string]decimal.Decimal)
	for _, row := range rows {
		if !g.Covers(row.AccountNumber) {
			continue
		}
		movement := row.Debit.Sub(row.Credit)
		if g.CreditNormal {
			movement = movement.Neg()
		}
		net[row.AccountNumber] = net[row.AccountNumber].Add(movement)
	}

	balances := make([]ClosingBalance, 0, len(net))
	for account, amount := range net {
		if amount.IsZero() {
			continue
		}
		balances = append(balances, ClosingBalance{AccountNumber: account, Amount: amount})
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].AccountNumber < balances[j].AccountNumber })
	return balances
}

// BuildClosingEntry returns a Draft entry that moves every balance into the
// retained earnings account. It returns nil when there is nothing to move.
func BuildClosingEntry(voucherNumber string, closingDate time.Time, narration string, g ClosingGroup,
	balances []ClosingBalance, retainedEarnings string, createdBy string, now time.Time) (*JournalEntry, error) {
	if len(balances) == 0 {
		return nil, nil
	}
	if g.Covers(retainedEarnings) {
		return nil, fmt.Errorf("%w: retained earnings account %s is itself closed", ErrInvalidEntry, retainedEarnings)
	}

	entry, err := NewJournalEntry(voucherNumber, closingDate, narration, createdBy, now)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, b := range balances {
		line, err := offsetLine(b.AccountNumber, narration, b.Amount, g.CreditNormal)
		if err != nil {
			return nil, err
		}
		if err := entry.AddLine(line); err != nil {
			return nil, err
		}
		total = total.Add(b.Amount)
	}
	if !total.IsZero() {
		line, err := offsetLine(retainedEarnings, narration, total, !g.CreditNormal)
		if err != nil {
			return nil, err
		}
		if err := entry.AddLine(line); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

// offsetLine books amount on the debit side when debit is set, flipping sides for
// a negative amount.
func offsetLine(accountNumber, description string, amount decimal.Decimal, debit bool) (LedgerEntry, error) {
	if amount.IsNegative() {
		amount = amount.Neg()
		debit = !debit
	}
	if debit {
		return DebitLine(accountNumber, description, amount)
	}
	return CreditLine(accountNumber, description, amount)
}
