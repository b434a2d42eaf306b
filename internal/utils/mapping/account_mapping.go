package mapping

import (
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountNumber: d.AccountNumber,
		Name:          d.Name,
		AccountType:   models.AccountType(d.AccountType),
		Level:         int16(d.Level),
		IsSummary:     d.IsSummary,
	}
	if d.ParentAccountNumber != "" {
		parent := d.ParentAccountNumber
		m.ParentAccountNumber = &parent
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountNumber: m.AccountNumber,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		Level:         int(m.Level),
		IsSummary:     m.IsSummary,
	}
	if m.ParentAccountNumber != nil {
		d.ParentAccountNumber = *m.ParentAccountNumber
	}
	return d
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
