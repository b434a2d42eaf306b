package services

import (
	"context"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// PeriodReaderSvc defines read operations for accounting periods
type PeriodReaderSvc interface {
	GetAccountingPeriod(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)
	ListAccountingPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)

	// FindPeriodForDate answers "is date d postable": it returns the covering period
	// (check IsLocked) or a NoPeriodDefined error.
	FindPeriodForDate(ctx context.Context, d time.Time) (*domain.AccountingPeriod, error)
}

// PeriodWriterSvc defines the period lifecycle operations
type PeriodWriterSvc interface {
	CreateAccountingPeriod(ctx context.Context, name string, start, end time.Time, userID string) (*domain.AccountingPeriod, error)
	LockPeriod(ctx context.Context, periodID string, userID string) error
	UnlockPeriod(ctx context.Context, periodID string, userID string) error
}

// PeriodSvcFacade combines all period-related service interfaces
type PeriodSvcFacade interface {
	PeriodReaderSvc
	PeriodWriterSvc
}
