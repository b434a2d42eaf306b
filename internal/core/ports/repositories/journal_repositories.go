package repositories

import (
	"context"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry with its lines, or apperrors.ErrNotFound.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListPostedJournalEntries retrieves posted entries, newest transaction date first, using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListPostedJournalEntries(ctx context.Context, limit int, nextToken *string) ([]*domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveJournalEntry persists the entry header and all of its lines.
	SaveJournalEntry(ctx context.Context, entry *domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
