package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/tt99_ledger/internal/utils/pagination"
)

type journalRepository struct {
	store *Store
	tx    *data
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

func (r *journalRepository) SaveJournalEntry(ctx context.Context, entry *domain.JournalEntry) error {
	return r.store.access(r.tx, true, func(d *data) error {
		if _, ok := d.journals[entry.EntryID]; ok {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrDuplicate, entry.EntryID)
		}
		d.journals[entry.EntryID] = entry.Clone()
		return nil
	})
}

func (r *journalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	var found *domain.JournalEntry
	err := r.store.access(r.tx, false, func(d *data) error {
		e, ok := d.journals[entryID]
		if !ok {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		found = e.Clone()
		return nil
	})
	return found, err
}

func (r *journalRepository) ListPostedJournalEntries(ctx context.Context, limit int, nextToken *string) ([]*domain.JournalEntry, *string, error) {
	var posted []*domain.JournalEntry
	err := r.store.access(r.tx, false, func(d *data) error {
		for _, e := range d.journals {
			if e.Status == domain.Posted {
				posted = append(posted, e.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(posted, func(i, j int) bool {
		return pagination.After(posted[j].TransactionDate, posted[j].EntryID, posted[i].TransactionDate, posted[i].EntryID)
	})

	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start := len(posted)
		for i, e := range posted {
			if pagination.After(e.TransactionDate, e.EntryID, cursorDate, cursorID) {
				start = i
				break
			}
		}
		posted = posted[start:]
	}

	page := []*domain.JournalEntry{}
	var next *string
	for i, e := range posted {
		if i == limit {
			last := page[len(page)-1]
			token := pagination.EncodeToken(last.TransactionDate, last.EntryID)
			next = &token
			break
		}
		page = append(page, e)
	}
	return page, next, nil
}
