package services

import (
	"context"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetJournalEntry retrieves a specific entry by its ID.
	GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a paginated list of posted entries.
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateJournalEntry validates a Draft entry, posts it and persists it atomically.
	// On success the entry is Posted and its id is returned.
	CreateJournalEntry(ctx context.Context, entry *domain.JournalEntry) (string, error)

	// ReverseEntry is part of the contract but always fails with apperrors.ErrNotImplemented.
	ReverseEntry(ctx context.Context, entryID string, userID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
