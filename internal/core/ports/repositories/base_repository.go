package repositories

import (
	"context"
)

// TxRepositories are repositories bound to one open transaction.
// Inside a transaction FindPeriodByDate takes a shared lock on the row it returns
// and FindPeriodByID an exclusive one, so lock/unlock and postings into the same
// period are serialised.
type TxRepositories interface {
	Accounts() AccountReader
	Periods() PeriodRepositoryFacade
	Journals() JournalRepositoryFacade
}

// UnitOfWork runs a function inside a single storage transaction.
type UnitOfWork interface {
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx TxRepositories) error) error
}
