package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
)

type periodRepository struct {
	store *Store
	tx    *data
}

var _ portsrepo.PeriodRepositoryFacade = (*periodRepository)(nil)

func (r *periodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	var found *domain.AccountingPeriod
	err := r.store.access(r.tx, false, func(d *data) error {
		p, ok := d.periods[periodID]
		if !ok {
			return fmt.Errorf("%w: accounting period %s", apperrors.ErrNotFound, periodID)
		}
		found = &p
		return nil
	})
	return found, err
}

func (r *periodRepository) FindPeriodByDate(ctx context.Context, day time.Time) (*domain.AccountingPeriod, error) {
	var found *domain.AccountingPeriod
	err := r.store.access(r.tx, false, func(d *data) error {
		for _, p := range sortedPeriods(d) {
			if p.ContainsDate(day) {
				p := p
				found = &p
				return nil
			}
		}
		return fmt.Errorf("%w: no accounting period for %s", apperrors.ErrNotFound, domain.DateOnly(day).Format(domain.DateLayout))
	})
	return found, err
}

func (r *periodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	var periods []domain.AccountingPeriod
	err := r.store.access(r.tx, false, func(d *data) error {
		periods = sortedPeriods(d)
		return nil
	})
	return periods, err
}

func (r *periodRepository) FindOverlappingPeriods(ctx context.Context, start, end time.Time) ([]domain.AccountingPeriod, error) {
	overlapping := []domain.AccountingPeriod{}
	err := r.store.access(r.tx, false, func(d *data) error {
		for _, p := range sortedPeriods(d) {
			if p.Overlaps(start, end) {
				overlapping = append(overlapping, p)
			}
		}
		return nil
	})
	return overlapping, err
}

func (r *periodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	return r.store.access(r.tx, true, func(d *data) error {
		if _, ok := d.periods[period.PeriodID]; ok {
			return fmt.Errorf("%w: accounting period %s", apperrors.ErrDuplicate, period.PeriodID)
		}
		d.periods[period.PeriodID] = period
		return nil
	})
}

func (r *periodRepository) UpdatePeriodLock(ctx context.Context, period domain.AccountingPeriod) error {
	return r.store.access(r.tx, true, func(d *data) error {
		stored, ok := d.periods[period.PeriodID]
		if !ok {
			return fmt.Errorf("%w: accounting period %s", apperrors.ErrNotFound, period.PeriodID)
		}
		stored.IsLocked = period.IsLocked
		stored.LastUpdatedAt = period.LastUpdatedAt
		stored.LastUpdatedBy = period.LastUpdatedBy
		d.periods[period.PeriodID] = stored
		return nil
	})
}

func sortedPeriods(d *data) []domain.AccountingPeriod {
	periods := make([]domain.AccountingPeriod, 0, len(d.periods))
	for _, p := range d.periods {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].StartDate.Before(periods[j].StartDate) })
	return periods
}
