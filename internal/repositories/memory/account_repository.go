package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
	tx    *data
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) Exists(ctx context.Context, accountNumber string) (bool, error) {
	var ok bool
	err := r.store.access(r.tx, false, func(d *data) error {
		_, ok = d.accounts[accountNumber]
		return nil
	})
	return ok, err
}

func (r *accountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	var found *domain.Account
	err := r.store.access(r.tx, false, func(d *data) error {
		a, ok := d.accounts[accountNumber]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
		}
		found = &a
		return nil
	})
	return found, err
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts := []domain.Account{}
	err := r.store.access(r.tx, false, func(d *data) error {
		for _, a := range d.accounts {
			accounts = append(accounts, a)
		}
		return nil
	})
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].AccountNumber < accounts[j].AccountNumber })
	return accounts, err
}

func (r *accountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	inserted := 0
	err := r.store.access(r.tx, true, func(d *data) error {
		for _, a := range accounts {
			if _, ok := d.accounts[a.AccountNumber]; ok {
				continue
			}
			d.accounts[a.AccountNumber] = a
			inserted++
		}
		return nil
	})
	return inserted, err
}
