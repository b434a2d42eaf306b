package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// CloseFiscalYearRequest defines the body for year-end closing.
// Label is appended to the closing voucher numbers.
type CloseFiscalYearRequest struct {
	Label       string `json:"label" binding:"required,max=37" example:"FY2025"`
	ClosingDate string `json:"closingDate" binding:"required,datetime=2006-01-02" example:"2025-12-31"`
}

// Date parses the closing date.
func (r CloseFiscalYearRequest) Date() (time.Time, error) {
	d, err := domain.ParseDate(r.ClosingDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: closingDate: %v", apperrors.ErrValidation, err)
	}
	return d, nil
}

// CloseFiscalYearResponse lists the closing entries posted by one run.
type CloseFiscalYearResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToCloseFiscalYearResponse converts the posted closing entries.
func ToCloseFiscalYearResponse(entries []*domain.JournalEntry) CloseFiscalYearResponse {
	resp := CloseFiscalYearResponse{Entries: make([]JournalEntryResponse, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = ToJournalEntryResponse(e)
	}
	return resp
}
