package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response from /api/v1.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

func statusForKind(kind string) int {
	switch kind {
	case "validation":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	case "conflict":
		return http.StatusConflict
	case "business_rule_violation":
		return http.StatusUnprocessableEntity
	case "not_implemented":
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err using the taxonomy status mapping. Internal failures
// are logged in full and reported to the caller as fallbackMsg.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.LoggerOrDefault(c.Request.Context())
	kind := apperrors.Kind(err)
	status := statusForKind(kind)

	body := ErrorResponse{Error: err.Error(), Kind: kind}
	var perr *domain.PostingError
	if errors.As(err, &perr) {
		body.Value = perr.Value
	}

	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		body.Error = fallbackMsg
	} else {
		logger.Warn(fallbackMsg, slog.String("kind", kind), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

// bindingError turns a gin binding failure into a validation error.
func bindingError(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}
