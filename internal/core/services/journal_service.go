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
	"github.com/SscSPs/tt99_ledger/internal/dto"
)

const defaultJournalListLimit = 50

// journalService posts journal entries and serves them back.
type journalService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	journalRepo portsrepo.JournalReader
	chart       portsrepo.ChartOfAccounts
	rules       []PostingRule
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithChartOfAccounts makes the service check account existence against chart
// instead of the transaction's own account repository. A portsrepo.LayeredChart
// is put in front of the transaction's account repository instead.
func WithChartOfAccounts(chart portsrepo.ChartOfAccounts) JournalServiceOption {
	return func(s *journalService) {
		s.chart = chart
	}
}

// WithPostingRules registers the domain rules evaluated before commit.
func WithPostingRules(rules ...PostingRule) JournalServiceOption {
	return func(s *journalService) {
		s.rules = append(s.rules, rules...)
	}
}

// WithJournalClock overrides the clock used for PostedAt.
func WithJournalClock(clock func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.Clock = clock
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(uow portsrepo.UnitOfWork, journalRepo portsrepo.JournalReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		uow:         uow,
		journalRepo: journalRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournalEntry runs the posting checks in order (period, balance, accounts,
// rules) inside one unit of work and persists the entry as Posted. The caller's
// entry is only marked Posted once the transaction has committed.
func (s *journalService) CreateJournalEntry(ctx context.Context, entry *domain.JournalEntry) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("%w: journal entry is required", apperrors.ErrValidation)
	}
	logger := s.GetLogger(ctx).With(slog.String("voucher_number", entry.VoucherNumber))

	if entry.Status == domain.Posted {
		return "", fmt.Errorf("%w: voucher %s (%s)", domain.ErrAlreadyPosted, entry.VoucherNumber, entry.EntryID)
	}
	if entry.LineCount() == 0 {
		return "", fmt.Errorf("%w: voucher %s", domain.ErrNoLines, entry.VoucherNumber)
	}

	var posted *domain.JournalEntry
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.checkPeriod(ctx, tx, entry); err != nil {
			return err
		}
		if !entry.IsBalanced() {
			return &domain.PostingError{
				Reason:        domain.ErrUnbalanced,
				VoucherNumber: entry.VoucherNumber,
				Value:         fmt.Sprintf("debit %s, credit %s", entry.TotalDebit().String(), entry.TotalCredit().String()),
			}
		}
		if err := s.checkAccounts(ctx, tx, entry); err != nil {
			return err
		}
		if err := s.applyRules(logger, entry); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		candidate := entry.Clone()
		if err := candidate.Post(s.now()); err != nil {
			return err
		}
		if err := tx.Journals().SaveJournalEntry(ctx, candidate); err != nil {
			return err
		}
		posted = candidate
		return nil
	})
	if err != nil {
		var perr *domain.PostingError
		if errors.As(err, &perr) {
			logger.Warn("Journal entry rejected", slog.String("reason", perr.Error()))
		} else {
			s.LogError(ctx, err, "Failed to post journal entry", slog.String("voucher_number", entry.VoucherNumber))
		}
		return "", err
	}

	*entry = *posted
	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID), slog.Int("lines", entry.LineCount()))
	return entry.EntryID, nil
}

func (s *journalService) checkPeriod(ctx context.Context, tx portsrepo.TxRepositories, entry *domain.JournalEntry) error {
	period, err := tx.Periods().FindPeriodByDate(ctx, entry.TransactionDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.PostingError{
				Reason:        domain.ErrNoPeriodDefined,
				VoucherNumber: entry.VoucherNumber,
				Value:         entry.TransactionDate.Format(domain.DateLayout),
			}
		}
		return err
	}
	if period.IsLocked {
		return &domain.PostingError{
			Reason:        domain.ErrPeriodLocked,
			VoucherNumber: entry.VoucherNumber,
			Value:         period.PeriodID,
			Detail:        period.Name,
		}
	}
	return nil
}

// checkAccounts looks each distinct account number up once.
func (s *journalService) checkAccounts(ctx context.Context, tx portsrepo.TxRepositories, entry *domain.JournalEntry) error {
	var chart portsrepo.ChartOfAccounts = tx.Accounts()
	switch c := s.chart.(type) {
	case nil:
	case portsrepo.LayeredChart:
		chart = c.Over(tx.Accounts())
	default:
		chart = c
	}
	for _, number := range entry.AccountNumbers() {
		exists, err := chart.Exists(ctx, number)
		if err != nil {
			return err
		}
		if !exists {
			return &domain.PostingError{
				Reason:        domain.ErrUnknownAccount,
				VoucherNumber: entry.VoucherNumber,
				Value:         number,
			}
		}
	}
	return nil
}

func (s *journalService) applyRules(logger *slog.Logger, entry *domain.JournalEntry) error {
	for _, rule := range s.rules {
		reason := rule.Evaluate(entry)
		if reason == "" {
			continue
		}
		if rule.Policy() == PolicyBlocking {
			return &domain.PostingError{
				Reason:        domain.ErrRuleViolation,
				VoucherNumber: entry.VoucherNumber,
				Value:         rule.Name(),
				Detail:        reason,
			}
		}
		logger.Warn("Advisory posting rule violated",
			slog.String("rule", rule.Name()),
			slog.String("reason", reason))
	}
	return nil
}

// GetJournalEntry retrieves a journal entry with its lines.
func (s *journalService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	if !domain.IsEntityID(entryID) {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		s.LogError(ctx, err, "Failed to get journal entry", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// ListJournalEntries lists posted entries, newest first.
func (s *journalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalListLimit
	}

	entries, nextToken, err := s.journalRepo.ListPostedJournalEntries(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.Int("limit", limit))
		return nil, err
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i, e := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(e)
	}
	return resp, nil
}

// ReverseEntry is not supported.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, userID string) error {
	s.LogInfo(ctx, "Reversal requested but not supported",
		slog.String("entry_id", entryID),
		slog.String("user_id", userID))
	return fmt.Errorf("%w: reversing journal entry %s is not supported", apperrors.ErrNotImplemented, entryID)
}
