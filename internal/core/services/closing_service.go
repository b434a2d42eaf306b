package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
)

// Closing voucher prefixes; the label given to CloseFiscalYear is appended.
const (
	RevenueClosingVoucher = "KC-DOANH-THU-"
	ExpenseClosingVoucher = "KC-CHI-PHI-"

	maxVoucherLength = 50
)

// Closing accounts of the TT99 chart, used when config names none.
var (
	DefaultClosingRevenueAccounts  = []string{"511", "512", "515"}
	DefaultClosingExpenseAccounts  = []string{"632", "635", "641", "642", "811", "821"}
	DefaultRetainedEarningsAccount = "421"
)

// closingService builds year-end closing entries from the posted general ledger
// and posts them like any other entry.
type closingService struct {
	BaseService
	periodRepo    portsrepo.PeriodReader
	reportingRepo portsrepo.ReportingRepository
	journal       portssvc.JournalWriterSvc
	revenue       domain.ClosingGroup
	expense       domain.ClosingGroup
	retained      string
}

// ClosingServiceOption is a functional option for configuring the closing service
type ClosingServiceOption func(*closingService)

// WithClosingAccounts overrides the closed account roots and the retained
// earnings account. Empty arguments keep the defaults.
func WithClosingAccounts(revenue, expense []string, retainedEarnings string) ClosingServiceOption {
	return func(s *closingService) {
		if len(revenue) > 0 {
			s.revenue.Roots = revenue
		}
		if len(expense) > 0 {
			s.expense.Roots = expense
		}
		if retainedEarnings != "" {
			s.retained = retainedEarnings
		}
	}
}

// WithClosingClock overrides the clock used for the entries' audit fields.
func WithClosingClock(clock func() time.Time) ClosingServiceOption {
	return func(s *closingService) {
		s.Clock = clock
	}
}

// NewClosingService creates a closing service posting through journal.
func NewClosingService(periodRepo portsrepo.PeriodReader, reportingRepo portsrepo.ReportingRepository, journal portssvc.JournalWriterSvc, options ...ClosingServiceOption) portssvc.ClosingSvcFacade {
	svc := &closingService{
		periodRepo:    periodRepo,
		reportingRepo: reportingRepo,
		journal:       journal,
		revenue:       domain.ClosingGroup{Roots: DefaultClosingRevenueAccounts, CreditNormal: true},
		expense:       domain.ClosingGroup{Roots: DefaultClosingExpenseAccounts},
		retained:      DefaultRetainedEarningsAccount,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

type closingStep struct {
	voucher   string
	narration string
	group     domain.ClosingGroup
}

// CloseFiscalYear posts the revenue entry first, then the expense entry. The
// balances are recomputed on every call, so running it again after a failure
// or a late posting only closes what is still open.
func (s *closingService) CloseFiscalYear(ctx context.Context, label string, closingDate time.Time, userID string) ([]*domain.JournalEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: closing label is required", apperrors.ErrValidation)
	}
	if closingDate.IsZero() {
		return nil, fmt.Errorf("%w: closing date is required", apperrors.ErrValidation)
	}
	closingDate = domain.DateOnly(closingDate)

	steps := []closingStep{
		{voucher: RevenueClosingVoucher + label, narration: "Kết chuyển doanh thu " + label, group: s.revenue},
		{voucher: ExpenseClosingVoucher + label, narration: "Kết chuyển chi phí " + label, group: s.expense},
	}
	for _, step := range steps {
		if len(step.voucher) > maxVoucherLength {
			return nil, fmt.Errorf("%w: closing voucher %s is longer than %d characters", apperrors.ErrValidation, step.voucher, maxVoucherLength)
		}
	}

	logger := s.GetLogger(ctx).With(slog.String("label", label), slog.String("closing_date", closingDate.Format(domain.DateLayout)))

	period, err := s.periodRepo.FindPeriodByDate(ctx, closingDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &domain.PostingError{
				Reason:        domain.ErrNoPeriodDefined,
				VoucherNumber: steps[0].voucher,
				Value:         closingDate.Format(domain.DateLayout),
			}
		}
		s.LogError(ctx, err, "Failed to find period for closing", slog.String("label", label))
		return nil, err
	}
	if period.IsLocked {
		return nil, &domain.PostingError{
			Reason:        domain.ErrPeriodLocked,
			VoucherNumber: steps[0].voucher,
			Value:         period.PeriodID,
			Detail:        period.Name,
		}
	}

	rows, err := s.reportingRepo.GeneralLedger(ctx, domain.GeneralLedgerQuery{
		StartDate: domain.DateOnly(period.StartDate),
		EndDate:   closingDate.AddDate(0, 0, 1),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to read general ledger for closing", slog.String("label", label))
		return nil, err
	}

	now := s.now()
	posted := make([]*domain.JournalEntry, 0, len(steps))
	for _, step := range steps {
		entry, err := domain.BuildClosingEntry(step.voucher, closingDate, step.narration, step.group,
			step.group.Balances(rows), s.retained, userID, now)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			logger.Debug("Nothing to close", slog.String("voucher_number", step.voucher))
			continue
		}
		if _, err := s.journal.CreateJournalEntry(ctx, entry); err != nil {
			logger.Warn("Closing stopped", slog.String("voucher_number", step.voucher), slog.Int("posted", len(posted)))
			return nil, err
		}
		posted = append(posted, entry)
	}

	logger.Info("Fiscal year closed", slog.String("period", period.Name), slog.Int("entries", len(posted)))
	return posted, nil
}
