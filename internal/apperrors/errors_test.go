package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "validation", err: fmt.Errorf("%w: name required", apperrors.ErrValidation), want: "validation"},
		{name: "not found", err: fmt.Errorf("%w: period p1", apperrors.ErrNotFound), want: "not_found"},
		{name: "conflict", err: fmt.Errorf("%w: locked", apperrors.ErrConflict), want: "conflict"},
		{name: "duplicate counts as conflict", err: apperrors.ErrDuplicate, want: "conflict"},
		{name: "business rule", err: fmt.Errorf("%w: unbalanced", apperrors.ErrBusinessRule), want: "business_rule_violation"},
		{name: "not implemented", err: apperrors.ErrNotImplemented, want: "not_implemented"},
		{name: "plain error", err: errors.New("boom"), want: "internal"},
		{name: "app error wrapping not found", err: apperrors.NewAppError(404, "missing", apperrors.ErrNotFound), want: "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.Kind(tt.err))
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to insert journal entry", inner)

	assert.Equal(t, "failed to insert journal entry: connection reset", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "bare", apperrors.NewAppError(500, "bare", nil).Error())
}
