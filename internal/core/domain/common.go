package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format of every date-only value in the ledger.
const DateLayout = "2006-01-02"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// DateOnly strips the time-of-day from t. The calendar day is taken in t's own
// location and the result is midnight UTC of that day, so two values for the
// same calendar day always compare equal.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a DateLayout string into a date-only value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// IsEntityID reports whether id is in the canonical UUID form the ledger issues
// for periods and journal entries. Any other string names no stored row.
func IsEntityID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
