package mapping

import (
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to its header row
func ToModelJournalEntry(d *domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		VoucherNumber:   d.VoucherNumber,
		TransactionDate: d.TransactionDate,
		Narration:       d.Narration,
		Status:          models.JournalStatus(d.Status),
		PostedAt:        storedTimePtr(d.PostedAt),
		AuditFields:     toAuditColumns(d.AuditFields),
	}
}

// ToModelLedgerLines numbers the entry's lines from 1 in insertion order.
func ToModelLedgerLines(d *domain.JournalEntry) []models.LedgerLine {
	lines := d.Lines()
	ms := make([]models.LedgerLine, len(lines))
	for i, l := range lines {
		ms[i] = models.LedgerLine{
			EntryID:       d.EntryID,
			LineNo:        i + 1,
			AccountNumber: l.AccountNumber,
			Description:   l.Description,
			Debit:         l.Debit,
			Credit:        l.Credit,
		}
	}
	return ms
}

// ToDomainJournalEntry rebuilds the aggregate from its header row and lines.
// Lines must already be ordered by LineNo.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.LedgerLine) *domain.JournalEntry {
	header := domain.JournalEntry{
		EntryID:         m.EntryID,
		VoucherNumber:   m.VoucherNumber,
		TransactionDate: m.TransactionDate,
		Narration:       m.Narration,
		Status:          domain.JournalStatus(m.Status),
		PostedAt:        storedTimePtr(m.PostedAt),
		AuditFields:     fromAuditColumns(m.AuditFields),
	}
	ds := make([]domain.LedgerEntry, len(lines))
	for i, l := range lines {
		ds[i] = domain.LedgerEntry{
			AccountNumber: l.AccountNumber,
			Description:   l.Description,
			Debit:         l.Debit,
			Credit:        l.Credit,
		}
	}
	return domain.RestoreJournalEntry(header, ds)
}

// ToDomainGeneralLedgerRow converts a projection row to its domain form
func ToDomainGeneralLedgerRow(m models.GeneralLedgerRow) domain.GeneralLedgerRow {
	return domain.GeneralLedgerRow{
		TransactionDate: domain.DateOnly(m.TransactionDate),
		EntryID:         m.EntryID,
		VoucherNumber:   m.VoucherNumber,
		LineNo:          m.LineNo,
		AccountNumber:   m.AccountNumber,
		AccountName:     m.AccountName,
		Description:     m.Narration,
		LineDescription: m.LineDescription,
		Debit:           m.Debit,
		Credit:          m.Credit,
	}
}
