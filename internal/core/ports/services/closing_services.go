package services

import (
	"context"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// ClosingSvcFacade defines the year-end closing operation
type ClosingSvcFacade interface {
	// CloseFiscalYear moves the revenue and expense balances of the period covering
	// closingDate into retained earnings. Balances are taken from posted lines
	// dated from the period start up to closingDate. Each closing entry is posted
	// through the journal service; an empty result means every balance was
	// already zero.
	CloseFiscalYear(ctx context.Context, label string, closingDate time.Time, userID string) ([]*domain.JournalEntry, error)
}
