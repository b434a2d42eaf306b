package repositories

import (
	"context"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// ReportingRepository defines read-side projections over posted entries
type ReportingRepository interface {
	// GeneralLedger returns one row per posted line with StartDate <= date < EndDate,
	// ordered by date, entry id and line number.
	GeneralLedger(ctx context.Context, q domain.GeneralLedgerQuery) ([]domain.GeneralLedgerRow, error)
}
