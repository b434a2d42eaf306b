package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
)

// accountService serves the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	chart       portsrepo.ChartOfAccounts
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountLookup routes Exists through chart, typically a cache in front of the repository.
func WithAccountLookup(chart portsrepo.ChartOfAccounts) AccountServiceOption {
	return func(s *accountService) {
		s.chart = chart
	}
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{accountRepo: accountRepo, chart: accountRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
		}
		s.LogError(ctx, err, "Failed to get account", slog.String("account_number", accountNumber))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) Exists(ctx context.Context, accountNumber string) (bool, error) {
	return s.chart.Exists(ctx, accountNumber)
}

// SeedChart validates the whole batch before inserting anything. A child
// account's parent must be in the batch or already stored.
func (s *accountService) SeedChart(ctx context.Context, accounts []domain.Account) (int, error) {
	inBatch := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		if err := a.Validate(); err != nil {
			return 0, err
		}
		if err := domain.ValidateAccountNumberFormat(a.AccountNumber); err != nil {
			return 0, err
		}
		if _, dup := inBatch[a.AccountNumber]; dup {
			return 0, fmt.Errorf("%w: account %s appears twice in the seed", apperrors.ErrValidation, a.AccountNumber)
		}
		inBatch[a.AccountNumber] = struct{}{}
	}

	for _, a := range accounts {
		if a.ParentAccountNumber == "" {
			continue
		}
		if _, ok := inBatch[a.ParentAccountNumber]; ok {
			continue
		}
		exists, err := s.accountRepo.Exists(ctx, a.ParentAccountNumber)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, fmt.Errorf("%w: parent %s of account %s is not in the chart", apperrors.ErrValidation, a.ParentAccountNumber, a.AccountNumber)
		}
	}

	inserted, err := s.accountRepo.SaveAccounts(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed chart of accounts", slog.Int("accounts", len(accounts)))
		return 0, err
	}
	s.LogInfo(ctx, "Chart of accounts seeded", slog.Int("submitted", len(accounts)), slog.Int("inserted", inserted))
	return inserted, nil
}
