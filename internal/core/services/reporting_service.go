package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// QueryGeneralLedger returns posted lines in [StartDate, EndDate).
func (s *reportingService) QueryGeneralLedger(ctx context.Context, q domain.GeneralLedgerQuery) ([]domain.GeneralLedgerRow, error) {
	if q.StartDate.IsZero() || q.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidation)
	}
	q = q.Normalize()
	if q.EndDate.Before(q.StartDate) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s", apperrors.ErrValidation,
			q.EndDate.Format(domain.DateLayout), q.StartDate.Format(domain.DateLayout))
	}

	rows, err := s.reportingRepo.GeneralLedger(ctx, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to query general ledger",
			slog.String("start_date", q.StartDate.Format(domain.DateLayout)),
			slog.String("end_date", q.EndDate.Format(domain.DateLayout)))
		return nil, err
	}
	if rows == nil {
		rows = []domain.GeneralLedgerRow{}
	}

	s.LogDebug(ctx, "General ledger queried", slog.Int("rows", len(rows)))
	return rows, nil
}
