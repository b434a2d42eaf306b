package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountingPeriod is a closed calendar window [StartDate, EndDate] that either
// accepts postings (open) or refuses them (locked).
type AccountingPeriod struct {
	PeriodID  string    `json:"periodID"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsLocked  bool      `json:"isLocked"`
	AuditFields
}

// NewAccountingPeriod creates an open period. Both dates are truncated to the day.
func NewAccountingPeriod(name string, start, end time.Time, createdBy string, now time.Time) (*AccountingPeriod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidPeriod)
	}
	start, end = DateOnly(start), DateOnly(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s",
			ErrInvalidPeriod, start.Format(DateLayout), end.Format(DateLayout))
	}
	return &AccountingPeriod{
		PeriodID:  uuid.NewString(),
		Name:      name,
		StartDate: start,
		EndDate:   end,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}, nil
}

// ContainsDate reports whether d falls inside the period, both ends inclusive.
func (p *AccountingPeriod) ContainsDate(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(p.StartDate)) && !day.After(DateOnly(p.EndDate))
}

// Overlaps reports whether the period shares at least one day with [start, end].
func (p *AccountingPeriod) Overlaps(start, end time.Time) bool {
	return !DateOnly(start).After(DateOnly(p.EndDate)) && !DateOnly(end).Before(DateOnly(p.StartDate))
}

// Lock moves an open period to locked.
func (p *AccountingPeriod) Lock() error {
	if p.IsLocked {
		return fmt.Errorf("%w: %s (%s)", ErrPeriodAlreadyLocked, p.Name, p.PeriodID)
	}
	p.IsLocked = true
	return nil
}

// Unlock moves a locked period back to open.
func (p *AccountingPeriod) Unlock() error {
	if !p.IsLocked {
		return fmt.Errorf("%w: %s (%s)", ErrPeriodAlreadyUnlocked, p.Name, p.PeriodID)
	}
	p.IsLocked = false
	return nil
}

// Touch records who last changed the period and when.
func (p *AccountingPeriod) Touch(userID string, at time.Time) {
	p.LastUpdatedAt = at
	p.LastUpdatedBy = userID
}
