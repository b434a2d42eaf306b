package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *pgxUnitOfWork {
	return &pgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

// WithinTransaction runs fn with repositories bound to one READ COMMITTED
// transaction. A context cancelled before commit rolls everything back.
func (u *pgxUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback(context.WithoutCancel(ctx), tx)

	bound := BaseRepository{Pool: u.Pool, Tx: tx}
	repos := &txRepositories{
		accounts: &PgxAccountRepository{BaseRepository: bound},
		periods:  &PgxPeriodRepository{BaseRepository: bound},
		journals: &PgxJournalRepository{BaseRepository: bound},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

type txRepositories struct {
	accounts *PgxAccountRepository
	periods  *PgxPeriodRepository
	journals *PgxJournalRepository
}

func (t *txRepositories) Accounts() portsrepo.AccountReader           { return t.accounts }
func (t *txRepositories) Periods() portsrepo.PeriodRepositoryFacade   { return t.periods }
func (t *txRepositories) Journals() portsrepo.JournalRepositoryFacade { return t.journals }
