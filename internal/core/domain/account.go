package domain

import (
	"fmt"
	"strings"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	Other     AccountType = "OTHER"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense, Other:
		return true
	}
	return false
}

// MaxAccountLevel is the deepest hierarchy level of the chart.
const MaxAccountLevel = 3

// Account is an entry of the chart of accounts. It is keyed by its business
// account number and never changes after seeding.
type Account struct {
	AccountNumber       string      `json:"accountNumber"`
	Name                string      `json:"name"`
	AccountType         AccountType `json:"accountType"`
	Level               int         `json:"level"`
	ParentAccountNumber string      `json:"parentAccountNumber,omitempty"`
	IsSummary           bool        `json:"isSummary"`
}

// NewAccount builds and validates an Account.
func NewAccount(number, name string, accountType AccountType, level int, parent string, isSummary bool) (*Account, error) {
	a := &Account{
		AccountNumber:       strings.TrimSpace(number),
		Name:                strings.TrimSpace(name),
		AccountType:         accountType,
		Level:               level,
		ParentAccountNumber: strings.TrimSpace(parent),
		IsSummary:           isSummary,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the structural invariants of an account.
func (a Account) Validate() error {
	if a.AccountNumber == "" {
		return fmt.Errorf("%w: account number is required", ErrInvalidAccount)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: name is required for account %s", ErrInvalidAccount, a.AccountNumber)
	}
	if !a.AccountType.IsValid() {
		return fmt.Errorf("%w: unknown account type %q for account %s", ErrInvalidAccount, a.AccountType, a.AccountNumber)
	}
	if a.Level < 1 || a.Level > MaxAccountLevel {
		return fmt.Errorf("%w: level %d out of range for account %s", ErrInvalidAccount, a.Level, a.AccountNumber)
	}
	if a.Level > 1 && a.ParentAccountNumber == "" {
		return fmt.Errorf("%w: account %s at level %d needs a parent", ErrInvalidAccount, a.AccountNumber, a.Level)
	}
	return nil
}

// ValidateAccountNumberFormat applies the TT99 numbering convention: digits
// only, between 3 and 10 characters.
func ValidateAccountNumberFormat(number string) error {
	if len(number) < 3 || len(number) > 10 {
		return fmt.Errorf("%w: account number %q must be 3 to 10 digits", ErrInvalidAccount, number)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: account number %q must contain digits only", ErrInvalidAccount, number)
		}
	}
	return nil
}
