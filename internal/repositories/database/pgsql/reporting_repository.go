package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/tt99_ledger/internal/models"
	"github.com/SscSPs/tt99_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GeneralLedger returns posted lines in [StartDate, EndDate), optionally for one account.
func (r *reportingRepository) GeneralLedger(ctx context.Context, q domain.GeneralLedgerQuery) ([]domain.GeneralLedgerRow, error) {
	q = q.Normalize()
	query := `
		SELECT
			j.transaction_date,
			j.entry_id,
			j.voucher_number,
			l.line_no,
			l.account_number,
			a.name AS account_name,
			j.narration,
			l.description AS line_description,
			l.debit,
			l.credit
		FROM ledger_lines l
		JOIN journal_entries j ON l.entry_id = j.entry_id
		JOIN accounts a ON l.account_number = a.account_number
		WHERE j.status = 'POSTED'
			AND j.transaction_date >= $1
			AND j.transaction_date < $2
			AND ($3::varchar IS NULL OR l.account_number = $3)
		ORDER BY j.transaction_date, j.entry_id, l.line_no
	`

	rows, err := r.db().Query(ctx, query, q.StartDate, q.EndDate, q.AccountNumber)
	if err != nil {
		return nil, fmt.Errorf("error querying general ledger: %w", err)
	}
	defer rows.Close()

	result := []domain.GeneralLedgerRow{}
	for rows.Next() {
		var m models.GeneralLedgerRow
		if err := rows.Scan(
			&m.TransactionDate,
			&m.EntryID,
			&m.VoucherNumber,
			&m.LineNo,
			&m.AccountNumber,
			&m.AccountName,
			&m.Narration,
			&m.LineDescription,
			&m.Debit,
			&m.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning general ledger row: %w", err)
		}
		result = append(result, mapping.ToDomainGeneralLedgerRow(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating general ledger rows: %w", err)
	}
	return result, nil
}
