package services

import (
	"context"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	Exists(ctx context.Context, accountNumber string) (bool, error)
}

// AccountSeederSvc loads a catalog into the chart
type AccountSeederSvc interface {
	// SeedChart validates and inserts accounts not yet present, returning how many were inserted.
	SeedChart(ctx context.Context, accounts []domain.Account) (int, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountSeederSvc
}
