package services

import (
	"context"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// ReportingSvcFacade defines read-side reports over posted entries
type ReportingSvcFacade interface {
	// QueryGeneralLedger returns posted lines in [q.StartDate, q.EndDate), optionally for one account.
	QueryGeneralLedger(ctx context.Context, q domain.GeneralLedgerQuery) ([]domain.GeneralLedgerRow, error)
}
