package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// CreateAccountingPeriodRequest defines the body for creating a period.
type CreateAccountingPeriodRequest struct {
	Name      string `json:"name" binding:"required,max=100" example:"FY2025"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02" example:"2025-01-01"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02" example:"2025-12-31"`
}

// Dates parses both boundaries.
func (r CreateAccountingPeriodRequest) Dates() (time.Time, time.Time, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate: %v", apperrors.ErrValidation, err)
	}
	end, err := domain.ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate: %v", apperrors.ErrValidation, err)
	}
	return start, end, nil
}

// CreateAccountingPeriodResponse is returned after a period is created.
type CreateAccountingPeriodResponse struct {
	PeriodID string `json:"periodID"`
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID      string    `json:"periodID"`
	Name          string    `json:"name"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	IsLocked      bool      `json:"isLocked"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToPeriodResponse converts a domain.AccountingPeriod to its response DTO.
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:      p.PeriodID,
		Name:          p.Name,
		StartDate:     p.StartDate.Format(domain.DateLayout),
		EndDate:       p.EndDate.Format(domain.DateLayout),
		IsLocked:      p.IsLocked,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToPeriodResponses converts a slice of periods.
func ToPeriodResponses(periods []domain.AccountingPeriod) []PeriodResponse {
	out := make([]PeriodResponse, len(periods))
	for i := range periods {
		out[i] = ToPeriodResponse(&periods[i])
	}
	return out
}

// PeriodLookupParams selects the period covering a date.
type PeriodLookupParams struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}
