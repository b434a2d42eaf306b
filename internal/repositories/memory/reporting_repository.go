package memory

import (
	"context"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
)

type reportingRepository struct {
	store *Store
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) GeneralLedger(ctx context.Context, q domain.GeneralLedgerQuery) ([]domain.GeneralLedgerRow, error) {
	var rows []domain.GeneralLedgerRow
	err := r.store.access(nil, false, func(d *data) error {
		names := make(map[string]string, len(d.accounts))
		for n, a := range d.accounts {
			names[n] = a.Name
		}
		entries := make([]*domain.JournalEntry, 0, len(d.journals))
		for _, e := range d.journals {
			entries = append(entries, e)
		}
		rows = domain.BuildGeneralLedger(entries, names, q)
		return nil
	})
	return rows, err
}
