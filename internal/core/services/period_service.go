package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
)

// periodService owns the accounting period lifecycle.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodReader
	uow        portsrepo.UnitOfWork
}

// PeriodServiceOption is a functional option for configuring the period service
type PeriodServiceOption func(*periodService)

// WithPeriodClock overrides the clock used for audit fields.
func WithPeriodClock(clock func() time.Time) PeriodServiceOption {
	return func(s *periodService) {
		s.Clock = clock
	}
}

// NewPeriodService creates a new period service
func NewPeriodService(periodRepo portsrepo.PeriodReader, uow portsrepo.UnitOfWork, options ...PeriodServiceOption) portssvc.PeriodSvcFacade {
	svc := &periodService{periodRepo: periodRepo, uow: uow}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreateAccountingPeriod creates an open period. Ranges may not overlap.
func (s *periodService) CreateAccountingPeriod(ctx context.Context, name string, start, end time.Time, userID string) (*domain.AccountingPeriod, error) {
	period, err := domain.NewAccountingPeriod(name, start, end, userID, s.now())
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		overlapping, err := tx.Periods().FindOverlappingPeriods(ctx, period.StartDate, period.EndDate)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			o := overlapping[0]
			return fmt.Errorf("%w: period %s overlaps %s (%s, %s to %s)", apperrors.ErrConflict,
				period.Name, o.Name, o.PeriodID, o.StartDate.Format(domain.DateLayout), o.EndDate.Format(domain.DateLayout))
		}
		return tx.Periods().SavePeriod(ctx, *period)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create accounting period", slog.String("name", period.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Accounting period created",
		slog.String("period_id", period.PeriodID),
		slog.String("start_date", period.StartDate.Format(domain.DateLayout)),
		slog.String("end_date", period.EndDate.Format(domain.DateLayout)))
	return period, nil
}

// LockPeriod closes a period to new postings.
func (s *periodService) LockPeriod(ctx context.Context, periodID string, userID string) error {
	return s.transition(ctx, periodID, userID, "locked", (*domain.AccountingPeriod).Lock)
}

// UnlockPeriod reopens a locked period.
func (s *periodService) UnlockPeriod(ctx context.Context, periodID string, userID string) error {
	return s.transition(ctx, periodID, userID, "unlocked", (*domain.AccountingPeriod).Unlock)
}

func (s *periodService) transition(ctx context.Context, periodID, userID, verb string, apply func(*domain.AccountingPeriod) error) error {
	if !domain.IsEntityID(periodID) {
		return notFoundPeriod(apperrors.ErrNotFound, periodID)
	}
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		period, err := tx.Periods().FindPeriodByID(ctx, periodID)
		if err != nil {
			return notFoundPeriod(err, periodID)
		}
		if err := apply(period); err != nil {
			return err
		}
		period.Touch(userID, s.now())
		return tx.Periods().UpdatePeriodLock(ctx, *period)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			s.GetLogger(ctx).Warn("Period state change refused", slog.String("period_id", periodID), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to change period state", slog.String("period_id", periodID))
		}
		return err
	}
	s.LogInfo(ctx, "Accounting period "+verb, slog.String("period_id", periodID), slog.String("user_id", userID))
	return nil
}

// GetAccountingPeriod retrieves a period by id.
func (s *periodService) GetAccountingPeriod(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	if !domain.IsEntityID(periodID) {
		return nil, notFoundPeriod(apperrors.ErrNotFound, periodID)
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, notFoundPeriod(err, periodID)
	}
	return period, nil
}

// ListAccountingPeriods lists all periods by start date.
func (s *periodService) ListAccountingPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounting periods")
		return nil, err
	}
	return periods, nil
}

// FindPeriodForDate returns the period covering d.
func (s *periodService) FindPeriodForDate(ctx context.Context, d time.Time) (*domain.AccountingPeriod, error) {
	period, err := s.periodRepo.FindPeriodByDate(ctx, domain.DateOnly(d))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoPeriodDefined, domain.DateOnly(d).Format(domain.DateLayout))
		}
		return nil, err
	}
	return period, nil
}

func notFoundPeriod(err error, periodID string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: accounting period %s", apperrors.ErrNotFound, periodID)
	}
	return err
}
