package models

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

// Account is a row of the accounts table.
// ParentAccountNumber is NULL for top-level accounts.
type Account struct {
	AccountNumber       string      `db:"account_number"`
	Name                string      `db:"name"`
	AccountType         AccountType `db:"account_type"`
	Level               int16       `db:"level"`
	ParentAccountNumber *string     `db:"parent_account_number"`
	IsSummary           bool        `db:"is_summary"`
}
