package mapping

import (
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/models"
)

// storedTime is t as a TIMESTAMPTZ column keeps it: UTC, microsecond precision.
// Mapping both directions through it makes a saved period or entry read back equal.
func storedTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Microsecond)
}

func storedTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	st := storedTime(*t)
	return &st
}

// toAuditColumns fills the NOT NULL last_updated columns from the creation
// stamp for a row that was never updated.
func toAuditColumns(d domain.AuditFields) models.AuditFields {
	m := models.AuditFields{
		CreatedAt:     storedTime(d.CreatedAt),
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: storedTime(d.LastUpdatedAt),
		LastUpdatedBy: d.LastUpdatedBy,
	}
	if m.LastUpdatedAt.IsZero() {
		m.LastUpdatedAt = m.CreatedAt
	}
	if m.LastUpdatedBy == "" {
		m.LastUpdatedBy = m.CreatedBy
	}
	return m
}

func fromAuditColumns(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     storedTime(m.CreatedAt),
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: storedTime(m.LastUpdatedAt),
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
