package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Line amounts are stored as NUMERIC(20,4): at most 4 decimal places and 16
// integer digits. Amounts outside that are rejected, never rounded.
const (
	AmountScale         = 4
	AmountIntegerDigits = 16
)

var amountLimit = decimal.New(1, AmountIntegerDigits)

// LedgerEntry is one line of a journal entry. A line is either a debit line or
// a credit line; it has no identity outside the entry that owns it.
type LedgerEntry struct {
	AccountNumber string          `json:"accountNumber"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// NewLedgerEntry builds a validated line.
func NewLedgerEntry(accountNumber, description string, debit, credit decimal.Decimal) (LedgerEntry, error) {
	l := LedgerEntry{
		AccountNumber: strings.TrimSpace(accountNumber),
		Description:   description,
		Debit:         debit,
		Credit:        credit,
	}
	if err := l.Validate(); err != nil {
		return LedgerEntry{}, err
	}
	return l, nil
}

// DebitLine is a shorthand for a line that only debits accountNumber.
func DebitLine(accountNumber, description string, amount decimal.Decimal) (LedgerEntry, error) {
	return NewLedgerEntry(accountNumber, description, amount, decimal.Zero)
}

// CreditLine is a shorthand for a line that only credits accountNumber.
func CreditLine(accountNumber, description string, amount decimal.Decimal) (LedgerEntry, error) {
	return NewLedgerEntry(accountNumber, description, decimal.Zero, amount)
}

// Validate enforces non-negative amounts within the stored precision and the
// exclusive debit/credit rule.
func (l LedgerEntry) Validate() error {
	if l.AccountNumber == "" {
		return fmt.Errorf("%w: account number is required", ErrInvalidLine)
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("%w: negative amount on account %s", ErrInvalidLine, l.AccountNumber)
	}
	if err := checkAmount("debit", l.Debit, l.AccountNumber); err != nil {
		return err
	}
	if err := checkAmount("credit", l.Credit, l.AccountNumber); err != nil {
		return err
	}
	if l.Debit.IsZero() && l.Credit.IsZero() {
		return fmt.Errorf("%w: debit and credit are both zero on account %s", ErrInvalidLine, l.AccountNumber)
	}
	if l.Debit.IsPositive() && l.Credit.IsPositive() {
		return fmt.Errorf("%w: line on account %s has both a debit and a credit", ErrInvalidLine, l.AccountNumber)
	}
	return nil
}

func checkAmount(side string, amount decimal.Decimal, accountNumber string) error {
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: %s %s on account %s has more than %d decimal places",
			ErrInvalidLine, side, amount.String(), accountNumber, AmountScale)
	}
	if amount.Cmp(amountLimit) >= 0 {
		return fmt.Errorf("%w: %s %s on account %s has more than %d integer digits",
			ErrInvalidLine, side, amount.String(), accountNumber, AmountIntegerDigits)
	}
	return nil
}

// IsDebit reports whether this is a debit line.
func (l LedgerEntry) IsDebit() bool {
	return l.Debit.IsPositive() && l.Credit.IsZero()
}

// IsCredit reports whether this is a credit line.
func (l LedgerEntry) IsCredit() bool {
	return l.Credit.IsPositive() && l.Debit.IsZero()
}
