package domain

import (
	"fmt"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
)

// Period state machine failures.
var (
	ErrPeriodAlreadyLocked   = fmt.Errorf("%w: accounting period is already locked", apperrors.ErrConflict)
	ErrPeriodAlreadyUnlocked = fmt.Errorf("%w: accounting period is already unlocked", apperrors.ErrConflict)
	ErrInvalidPeriod         = fmt.Errorf("%w: invalid accounting period", apperrors.ErrValidation)
)

// Journal entry and posting failures.
var (
	ErrAlreadyPosted   = fmt.Errorf("%w: journal entry is already posted", apperrors.ErrConflict)
	ErrPeriodLocked    = fmt.Errorf("%w: accounting period is locked", apperrors.ErrConflict)
	ErrNoPeriodDefined = fmt.Errorf("%w: no accounting period covers the transaction date", apperrors.ErrBusinessRule)
	ErrUnbalanced      = fmt.Errorf("%w: total debits do not equal total credits", apperrors.ErrBusinessRule)
	ErrUnknownAccount  = fmt.Errorf("%w: account does not exist in the chart of accounts", apperrors.ErrBusinessRule)
	ErrRuleViolation   = fmt.Errorf("%w: posting rule violated", apperrors.ErrBusinessRule)
	ErrNoLines         = fmt.Errorf("%w: journal entry has no lines", apperrors.ErrValidation)
	ErrInvalidLine     = fmt.Errorf("%w: invalid ledger line", apperrors.ErrValidation)
	ErrInvalidEntry    = fmt.Errorf("%w: invalid journal entry", apperrors.ErrValidation)
	ErrInvalidAccount  = fmt.Errorf("%w: invalid account", apperrors.ErrValidation)
)

// PostingError is the structured failure returned when a journal entry cannot be posted.
// Reason is one of the sentinels above; Value is the offending value (an account
// number, a period id, the totals of an unbalanced entry, a rule name).
type PostingError struct {
	Reason        error
	VoucherNumber string
	Value         string
	Detail        string
}

func (e *PostingError) Error() string {
	msg := fmt.Sprintf("voucher %s: %v", e.VoucherNumber, e.Reason)
	if e.Value != "" {
		msg += " (" + e.Value + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *PostingError) Unwrap() error {
	return e.Reason
}
