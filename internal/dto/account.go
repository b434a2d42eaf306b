package dto

import "github.com/SscSPs/tt99_ledger/internal/core/domain"

// AccountResponse defines the data returned for a chart account.
type AccountResponse struct {
	AccountNumber       string `json:"accountNumber"`
	Name                string `json:"name"`
	AccountType         string `json:"accountType"`
	Level               int    `json:"level"`
	ParentAccountNumber string `json:"parentAccountNumber,omitempty"`
	IsSummary           bool   `json:"isSummary"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber:       a.AccountNumber,
		Name:                a.Name,
		AccountType:         string(a.AccountType),
		Level:               a.Level,
		ParentAccountNumber: a.ParentAccountNumber,
		IsSummary:           a.IsSummary,
	}
}

// ToAccountResponses converts a slice of domain.Account.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}

// ListAccountsResponse wraps the chart listing.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
