package mapping

import (
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/models"
)

// ToModelAccountingPeriod converts a domain AccountingPeriod to a model AccountingPeriod
func ToModelAccountingPeriod(d domain.AccountingPeriod) models.AccountingPeriod {
	return models.AccountingPeriod{
		PeriodID:    d.PeriodID,
		Name:        d.Name,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		IsLocked:    d.IsLocked,
		AuditFields: toAuditColumns(d.AuditFields),
	}
}

// ToDomainAccountingPeriod converts a model AccountingPeriod to a domain AccountingPeriod
// with both dates truncated to the day.
func ToDomainAccountingPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:    m.PeriodID,
		Name:        m.Name,
		StartDate:   domain.DateOnly(m.StartDate),
		EndDate:     domain.DateOnly(m.EndDate),
		IsLocked:    m.IsLocked,
		AuditFields: fromAuditColumns(m.AuditFields),
	}
}
