package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerLineRequest is one line of a journal entry request.
type CreateLedgerLineRequest struct {
	AccountNumber string          `json:"accountNumber" binding:"required,accountnumber" example:"111"`
	Description   string          `json:"description" binding:"max=500"`
	Debit         decimal.Decimal `json:"debit" swaggertype:"string" example:"100"`
	Credit        decimal.Decimal `json:"credit" swaggertype:"string" example:"0"`
}

// CreateJournalEntryRequest defines the body for posting a journal entry.
type CreateJournalEntryRequest struct {
	VoucherNumber   string                    `json:"voucherNumber" binding:"required,max=50" example:"PT0001"`
	TransactionDate string                    `json:"transactionDate" binding:"required,datetime=2006-01-02" example:"2025-06-15"`
	Narration       string                    `json:"narration" binding:"max=500"`
	Lines           []CreateLedgerLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToJournalEntry builds the Draft domain entry for this request.
func (r CreateJournalEntryRequest) ToJournalEntry(createdBy string, now time.Time) (*domain.JournalEntry, error) {
	txDate, err := domain.ParseDate(r.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: transactionDate: %v", apperrors.ErrValidation, err)
	}
	entry, err := domain.NewJournalEntry(r.VoucherNumber, txDate, r.Narration, createdBy, now)
	if err != nil {
		return nil, err
	}
	for i, l := range r.Lines {
		line, err := domain.NewLedgerEntry(l.AccountNumber, l.Description, l.Debit, l.Credit)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := entry.AddLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return entry, nil
}

// CreateJournalEntryResponse is returned after a successful post.
type CreateJournalEntryResponse struct {
	EntryID string `json:"entryID"`
	Status  string `json:"status"`
}

// LedgerLineResponse defines the data returned for one line.
type LedgerLineResponse struct {
	LineNo        int             `json:"lineNo"`
	AccountNumber string          `json:"accountNumber"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit        decimal.Decimal `json:"credit" swaggertype:"string"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string               `json:"entryID"`
	VoucherNumber   string               `json:"voucherNumber"`
	TransactionDate string               `json:"transactionDate"`
	Narration       string               `json:"narration"`
	Status          string               `json:"status"`
	PostedAt        *time.Time           `json:"postedAt,omitempty"`
	TotalDebit      decimal.Decimal      `json:"totalDebit" swaggertype:"string"`
	TotalCredit     decimal.Decimal      `json:"totalCredit" swaggertype:"string"`
	Lines           []LedgerLineResponse `json:"lines"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := e.Lines()
	resp := JournalEntryResponse{
		EntryID:         e.EntryID,
		VoucherNumber:   e.VoucherNumber,
		TransactionDate: e.TransactionDate.Format(domain.DateLayout),
		Narration:       e.Narration,
		Status:          string(e.Status),
		PostedAt:        e.PostedAt,
		TotalDebit:      e.TotalDebit(),
		TotalCredit:     e.TotalCredit(),
		Lines:           make([]LedgerLineResponse, len(lines)),
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
	for i, l := range lines {
		resp.Lines[i] = LedgerLineResponse{
			LineNo:        i + 1,
			AccountNumber: l.AccountNumber,
			Description:   l.Description,
			Debit:         l.Debit,
			Credit:        l.Credit,
		}
	}
	return resp
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}
