// Package memory is an in-process implementation of the repository ports.
// Units of work are serialised and applied copy-on-write, so a failed unit
// leaves no trace.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
)

type data struct {
	accounts map[string]domain.Account
	periods  map[string]domain.AccountingPeriod
	journals map[string]*domain.JournalEntry
}

func (d *data) clone() *data {
	c := &data{
		accounts: make(map[string]domain.Account, len(d.accounts)),
		periods:  make(map[string]domain.AccountingPeriod, len(d.periods)),
		journals: make(map[string]*domain.JournalEntry, len(d.journals)),
	}
	for k, v := range d.accounts {
		c.accounts[k] = v
	}
	for k, v := range d.periods {
		c.periods[k] = v
	}
	for k, v := range d.journals {
		c.journals[k] = v
	}
	return c
}

// Store holds all ledger state in memory.
type Store struct {
	mu   sync.RWMutex
	data *data
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: &data{
		accounts: map[string]domain.Account{},
		periods:  map[string]domain.AccountingPeriod{},
		journals: map[string]*domain.JournalEntry{},
	}}
}

// access runs fn against the committed data, or against tx when the caller is
// inside a unit of work (whose lock is already held).
func (s *Store) access(tx *data, write bool, fn func(d *data) error) error {
	if tx != nil {
		return fn(tx)
	}
	if write {
		s.mu.Lock()
		defer s.mu.Unlock()
	} else {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return fn(s.data)
}

// NewRepositoryProvider wires every port to the same store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   &accountRepository{store: store},
		PeriodRepo:    &periodRepository{store: store},
		JournalRepo:   &journalRepository{store: store},
		ReportingRepo: &reportingRepository{store: store},
		UnitOfWork:    &unitOfWork{store: store},
	}
}

type unitOfWork struct {
	store *Store
}

var _ portsrepo.UnitOfWork = (*unitOfWork)(nil)

func (u *unitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	staged := u.store.data.clone()
	repos := &txRepositories{
		accounts: &accountRepository{store: u.store, tx: staged},
		periods:  &periodRepository{store: u.store, tx: staged},
		journals: &journalRepository{store: u.store, tx: staged},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	// Commit point: nothing staged survives a cancelled context.
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.data = staged
	return nil
}

type txRepositories struct {
	accounts *accountRepository
	periods  *periodRepository
	journals *journalRepository
}

func (t *txRepositories) Accounts() portsrepo.AccountReader           { return t.accounts }
func (t *txRepositories) Periods() portsrepo.PeriodRepositoryFacade   { return t.periods }
func (t *txRepositories) Journals() portsrepo.JournalRepositoryFacade { return t.journals }
