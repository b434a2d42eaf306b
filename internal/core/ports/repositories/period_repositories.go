package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// PeriodReader defines read operations for accounting periods
type PeriodReader interface {
	// FindPeriodByID retrieves a period by id, or apperrors.ErrNotFound.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// FindPeriodByDate retrieves the period whose range contains d, or apperrors.ErrNotFound.
	FindPeriodByDate(ctx context.Context, d time.Time) (*domain.AccountingPeriod, error)

	// ListPeriods retrieves all periods ordered by start date.
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)

	// FindOverlappingPeriods retrieves periods sharing at least one day with [start, end].
	FindOverlappingPeriods(ctx context.Context, start, end time.Time) ([]domain.AccountingPeriod, error)
}

// PeriodWriter defines write operations for accounting periods
type PeriodWriter interface {
	// SavePeriod persists a new period.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error

	// UpdatePeriodLock persists the lock flag and audit fields of an existing period.
	UpdatePeriodLock(ctx context.Context, period domain.AccountingPeriod) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
