package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/tt99_ledger/internal/models"
	"github.com/SscSPs/tt99_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for the chart of accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_number, name, account_type, level, parent_account_number, is_summary`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(&m.AccountNumber, &m.Name, &m.AccountType, &m.Level, &m.ParentAccountNumber, &m.IsSummary)
	return m, err
}

// Exists reports whether accountNumber is in the chart.
func (r *PgxAccountRepository) Exists(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	err := r.db().QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`, accountNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account %s: %w", accountNumber, err)
	}
	return exists, nil
}

// FindAccountByNumber retrieves an account by its business number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`
	m, err := scanAccount(r.db().QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountNumber, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves the whole chart ordered by account number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db().Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY account_number;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	ms := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// SaveAccounts inserts the accounts that are not stored yet. Parents are
// inserted before their children.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	ordered := append([]domain.Account(nil), accounts...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Level < ordered[j].Level })

	inserted := 0
	err := r.atomically(ctx, func(q querier) error {
		batch := &pgx.Batch{}
		query := `
			INSERT INTO accounts (` + accountColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (account_number) DO NOTHING;
		`
		for _, a := range ordered {
			m := mapping.ToModelAccount(a)
			batch.Queue(query, m.AccountNumber, m.Name, m.AccountType, m.Level, m.ParentAccountNumber, m.IsSummary)
		}

		br := q.SendBatch(ctx, batch)
		defer br.Close()
		for _, a := range ordered {
			tag, err := br.Exec()
			if err != nil {
				return translatePgError(err, "account "+a.AccountNumber)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
