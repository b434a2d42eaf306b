package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJournalEntryRequest_ToJournalEntry(t *testing.T) {
	req := dto.CreateJournalEntryRequest{
		VoucherNumber:   "PT0001",
		TransactionDate: "2025-06-15",
		Narration:       "cash sale",
		Lines: []dto.CreateLedgerLineRequest{
			{AccountNumber: "111", Debit: decimal.NewFromInt(100)},
			{AccountNumber: "511", Credit: decimal.NewFromInt(100)},
		},
	}

	entry, err := req.ToJournalEntry("user-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.Draft, entry.Status)
	assert.Equal(t, 2, entry.LineCount())
	assert.Equal(t, "user-1", entry.CreatedBy)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), entry.TransactionDate)
}

func TestCreateJournalEntryRequest_ToJournalEntryRejectsBadLine(t *testing.T) {
	req := dto.CreateJournalEntryRequest{
		VoucherNumber:   "PT0001",
		TransactionDate: "2025-06-15",
		Lines: []dto.CreateLedgerLineRequest{
			{AccountNumber: "111", Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(100)},
		},
	}

	_, err := req.ToJournalEntry("user-1", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidLine)
	assert.Contains(t, err.Error(), "line 1")
}

func TestGeneralLedgerQueryParams_ToQuery(t *testing.T) {
	q, err := dto.GeneralLedgerQueryParams{StartDate: "2025-06-01", EndDate: "2025-06-30", AccountNumber: "111"}.ToQuery()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), q.StartDate)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), q.EndDate)
	require.NotNil(t, q.AccountNumber)
	assert.Equal(t, "111", *q.AccountNumber)

	q, err = dto.GeneralLedgerQueryParams{StartDate: "2025-06-01", EndDate: "2025-06-30"}.ToQuery()
	require.NoError(t, err)
	assert.Nil(t, q.AccountNumber)

	_, err = dto.GeneralLedgerQueryParams{StartDate: "June", EndDate: "2025-06-30"}.ToQuery()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToGeneralLedgerResponse_Totals(t *testing.T) {
	rows := []domain.GeneralLedgerRow{
		{TransactionDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), EntryID: "e1", AccountNumber: "111", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{TransactionDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), EntryID: "e1", AccountNumber: "511", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
	}
	resp := dto.ToGeneralLedgerResponse(dto.GeneralLedgerQueryParams{StartDate: "2025-06-01", EndDate: "2025-06-30"}, rows)

	assert.Len(t, resp.Rows, 2)
	assert.Equal(t, "2025-06-15", resp.Rows[0].Date)
	assert.True(t, resp.Totals.Debit.Equal(resp.Totals.Credit))
}
