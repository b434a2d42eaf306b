package handlers

import (
	"sync"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom binding rules used by the request DTOs
// on gin's validator engine. Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("accountnumber", validateAccountNumber)
		v.RegisterStructValidation(validateGeneralLedgerQuery, dto.GeneralLedgerQueryParams{})
	})
}

func validateAccountNumber(fl validator.FieldLevel) bool {
	return domain.ValidateAccountNumberFormat(fl.Field().String()) == nil
}

// validateGeneralLedgerQuery requires startDate <= endDate and an endDate that is not in the future.
// Unparseable dates are left to the datetime tag.
func validateGeneralLedgerQuery(sl validator.StructLevel) {
	p := sl.Current().Interface().(dto.GeneralLedgerQueryParams)

	start, err := domain.ParseDate(p.StartDate)
	if err != nil {
		return
	}
	end, err := domain.ParseDate(p.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(p.EndDate, "EndDate", "endDate", "gtefield", "StartDate")
	}
	if end.After(domain.DateOnly(time.Now())) {
		sl.ReportError(p.EndDate, "EndDate", "endDate", "notfuture", "")
	}
}
