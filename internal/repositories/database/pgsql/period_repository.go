package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/tt99_ledger/internal/models"
	"github.com/SscSPs/tt99_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for accounting periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) *PgxPeriodRepository {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `period_id, name, start_date, end_date, is_locked, created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (models.AccountingPeriod, error) {
	var m models.AccountingPeriod
	err := row.Scan(&m.PeriodID, &m.Name, &m.StartDate, &m.EndDate, &m.IsLocked,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxPeriodRepository) findOne(ctx context.Context, query string, what string, args ...any) (*domain.AccountingPeriod, error) {
	m, err := scanPeriod(r.db().QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
		}
		return nil, fmt.Errorf("failed to find %s: %w", what, err)
	}
	p := mapping.ToDomainAccountingPeriod(m)
	return &p, nil
}

// FindPeriodByID retrieves a period. Inside a unit of work the row is locked
// FOR UPDATE until commit.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	// period_id is a UUID column; a malformed id would fail the cast instead of matching nothing.
	if !domain.IsEntityID(periodID) {
		return nil, fmt.Errorf("%w: accounting period %s", apperrors.ErrNotFound, periodID)
	}
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1`
	if r.inTx() {
		query += ` FOR UPDATE`
	}
	return r.findOne(ctx, query, "accounting period "+periodID, periodID)
}

// FindPeriodByDate retrieves the period containing d. Inside a unit of work the
// row is locked FOR SHARE, which blocks a concurrent lock or unlock until commit.
func (r *PgxPeriodRepository) FindPeriodByDate(ctx context.Context, d time.Time) (*domain.AccountingPeriod, error) {
	day := domain.DateOnly(d)
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE start_date <= $1 AND end_date >= $1`
	if r.inTx() {
		query += ` FOR SHARE`
	}
	return r.findOne(ctx, query, "accounting period for "+day.Format(domain.DateLayout), day)
}

// ListPeriods retrieves all periods ordered by start date.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	return r.list(ctx, `SELECT `+periodColumns+` FROM accounting_periods ORDER BY start_date;`)
}

// FindOverlappingPeriods retrieves periods sharing at least one day with [start, end].
func (r *PgxPeriodRepository) FindOverlappingPeriods(ctx context.Context, start, end time.Time) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date;`
	return r.list(ctx, query, domain.DateOnly(start), domain.DateOnly(end))
}

func (r *PgxPeriodRepository) list(ctx context.Context, query string, args ...any) ([]domain.AccountingPeriod, error) {
	rows, err := r.db().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounting periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.AccountingPeriod{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan accounting period: %w", err)
		}
		periods = append(periods, mapping.ToDomainAccountingPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounting periods: %w", err)
	}
	return periods, nil
}

// SavePeriod inserts a new period. The exclusion constraint rejects overlaps
// that race past the service's own check.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	m := mapping.ToModelAccountingPeriod(period)
	query := `INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.db().Exec(ctx, query,
		m.PeriodID, m.Name, m.StartDate, m.EndDate, m.IsLocked,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translatePgError(err, "accounting period "+m.Name)
	}
	return nil
}

// UpdatePeriodLock persists the lock flag and audit fields.
func (r *PgxPeriodRepository) UpdatePeriodLock(ctx context.Context, period domain.AccountingPeriod) error {
	query := `UPDATE accounting_periods
		SET is_locked = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;`
	tag, err := r.db().Exec(ctx, query, period.PeriodID, period.IsLocked, period.LastUpdatedAt, period.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update accounting period "+period.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: accounting period %s", apperrors.ErrNotFound, period.PeriodID)
	}
	return nil
}
