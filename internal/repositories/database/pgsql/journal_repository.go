package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/tt99_ledger/internal/models"
	"github.com/SscSPs/tt99_ledger/internal/utils/mapping"
	"github.com/SscSPs/tt99_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `entry_id, voucher_number, transaction_date, narration, status, posted_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(&m.EntryID, &m.VoucherNumber, &m.TransactionDate, &m.Narration, &m.Status, &m.PostedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// SaveJournalEntry inserts the header and all lines in one transaction.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry *domain.JournalEntry) error {
	header := mapping.ToModelJournalEntry(entry)
	lines := mapping.ToModelLedgerLines(entry)

	return r.atomically(ctx, func(q querier) error {
		headerQuery := `INSERT INTO journal_entries (` + journalColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
		_, err := q.Exec(ctx, headerQuery,
			header.EntryID, header.VoucherNumber, header.TransactionDate, header.Narration, header.Status, header.PostedAt,
			header.CreatedAt, header.CreatedBy, header.LastUpdatedAt, header.LastUpdatedBy)
		if err != nil {
			return translatePgError(err, "journal entry "+header.EntryID)
		}

		batch := &pgx.Batch{}
		lineQuery := `INSERT INTO ledger_lines (entry_id, line_no, account_number, description, debit, credit)
			VALUES ($1, $2, $3, $4, $5, $6);`
		for _, l := range lines {
			batch.Queue(lineQuery, l.EntryID, l.LineNo, l.AccountNumber, l.Description, l.Debit, l.Credit)
		}
		br := q.SendBatch(ctx, batch)
		defer br.Close()
		for _, l := range lines {
			if _, err := br.Exec(); err != nil {
				return translatePgError(err, "line "+strconv.Itoa(l.LineNo)+" of journal entry "+l.EntryID)
			}
		}
		return nil
	})
}

// FindJournalEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	if !domain.IsEntityID(entryID) {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanJournalEntry(r.db().QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	lines, err := r.findLines(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainJournalEntry(m, lines[entryID]), nil
}

// ListPostedJournalEntries pages through posted entries by descending
// (transaction_date, entry_id).
func (r *PgxJournalRepository) ListPostedJournalEntries(ctx context.Context, limit int, nextToken *string) ([]*domain.JournalEntry, *string, error) {
	args := []any{limit + 1}
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE status = 'POSTED'`
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (transaction_date, entry_id) < ($2, $3)`
		args = append(args, cursorDate, cursorID)
	}
	query += ` ORDER BY transaction_date DESC, entry_id DESC LIMIT $1;`

	rows, err := r.db().Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	headers := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		headers = append(headers, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entries: %w", err)
	}

	var next *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[len(headers)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.EntryID)
		next = &token
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.EntryID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]*domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, lines[h.EntryID])
	}
	return entries, next, nil
}

func (r *PgxJournalRepository) findLines(ctx context.Context, entryIDs []string) (map[string][]models.LedgerLine, error) {
	result := make(map[string][]models.LedgerLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}

	query := `SELECT entry_id, line_no, account_number, description, debit, credit
		FROM ledger_lines WHERE entry_id = ANY($1) ORDER BY entry_id, line_no;`
	rows, err := r.db().Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.LedgerLine
		if err := rows.Scan(&l.EntryID, &l.LineNo, &l.AccountNumber, &l.Description, &l.Debit, &l.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		result[l.EntryID] = append(result[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger lines: %w", err)
	}
	return result, nil
}
