package models

import "time"

// AccountingPeriod is a row of the accounting_periods table.
type AccountingPeriod struct {
	PeriodID  string    `db:"period_id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	IsLocked  bool      `db:"is_locked"`
	AuditFields
}
