package dto

import (
	"fmt"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeneralLedgerQueryParams are the query parameters of the general ledger report.
// EndDate is inclusive here; the report itself works on an exclusive bound.
type GeneralLedgerQueryParams struct {
	StartDate     string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate       string `form:"endDate" binding:"required,datetime=2006-01-02"`
	AccountNumber string `form:"accountNumber" binding:"omitempty,accountnumber"`
}

// ToQuery converts the parameters into a domain query with an exclusive end (EndDate + 1 day).
func (p GeneralLedgerQueryParams) ToQuery() (domain.GeneralLedgerQuery, error) {
	start, err := domain.ParseDate(p.StartDate)
	if err != nil {
		return domain.GeneralLedgerQuery{}, fmt.Errorf("%w: startDate: %v", apperrors.ErrValidation, err)
	}
	end, err := domain.ParseDate(p.EndDate)
	if err != nil {
		return domain.GeneralLedgerQuery{}, fmt.Errorf("%w: endDate: %v", apperrors.ErrValidation, err)
	}
	q := domain.GeneralLedgerQuery{StartDate: start, EndDate: end.AddDate(0, 0, 1)}
	if p.AccountNumber != "" {
		acc := p.AccountNumber
		q.AccountNumber = &acc
	}
	return q, nil
}

// GeneralLedgerRowResponse represents a row in the general ledger response
type GeneralLedgerRowResponse struct {
	Date            string          `json:"date"`
	EntryID         string          `json:"entryID"`
	VoucherNumber   string          `json:"voucherNumber"`
	AccountNumber   string          `json:"accountNumber"`
	AccountName     string          `json:"accountName"`
	Description     string          `json:"description"`
	LineDescription string          `json:"lineDescription"`
	Debit           decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit          decimal.Decimal `json:"credit" swaggertype:"string"`
}

// GeneralLedgerResponse represents the general ledger report response
type GeneralLedgerResponse struct {
	StartDate     string                     `json:"startDate"`
	EndDate       string                     `json:"endDate"`
	AccountNumber string                     `json:"accountNumber,omitempty"`
	Rows          []GeneralLedgerRowResponse `json:"rows"`
	Totals        struct {
		Debit  decimal.Decimal `json:"debit" swaggertype:"string"`
		Credit decimal.Decimal `json:"credit" swaggertype:"string"`
	} `json:"totals"`
}

// ToGeneralLedgerResponse builds the report body, echoing the caller's inclusive dates.
func ToGeneralLedgerResponse(p GeneralLedgerQueryParams, rows []domain.GeneralLedgerRow) GeneralLedgerResponse {
	resp := GeneralLedgerResponse{
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		AccountNumber: p.AccountNumber,
		Rows:          make([]GeneralLedgerRowResponse, len(rows)),
	}
	resp.Totals.Debit = decimal.Zero
	resp.Totals.Credit = decimal.Zero
	for i, r := range rows {
		resp.Rows[i] = GeneralLedgerRowResponse{
			Date:            r.TransactionDate.Format(domain.DateLayout),
			EntryID:         r.EntryID,
			VoucherNumber:   r.VoucherNumber,
			AccountNumber:   r.AccountNumber,
			AccountName:     r.AccountName,
			Description:     r.Description,
			LineDescription: r.LineDescription,
			Debit:           r.Debit,
			Credit:          r.Credit,
		}
		resp.Totals.Debit = resp.Totals.Debit.Add(r.Debit)
		resp.Totals.Credit = resp.Totals.Credit.Add(r.Credit)
	}
	return resp
}
