package repositories

import (
	"context"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// ChartOfAccounts is the read-only lookup the posting service needs.
type ChartOfAccounts interface {
	// Exists reports whether accountNumber is in the chart.
	Exists(ctx context.Context, accountNumber string) (bool, error)
}

// LayeredChart is a lookup, such as a cache, that can be put in front of
// another chart. The posting service layers it over the account reader of its
// unit of work so that misses are answered inside the transaction.
type LayeredChart interface {
	ChartOfAccounts

	// Over returns the same layer reading through to next on a miss.
	Over(next ChartOfAccounts) ChartOfAccounts
}

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	ChartOfAccounts

	// FindAccountByNumber retrieves an account by its business number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccounts retrieves the whole chart ordered by account number.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccounts inserts accounts that are not stored yet and returns how many were inserted.
	SaveAccounts(ctx context.Context, accounts []domain.Account) (int, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
