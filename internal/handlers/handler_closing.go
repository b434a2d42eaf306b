package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/dto"
	"github.com/SscSPs/tt99_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// closingHandler handles year-end closing requests.
type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
}

func newClosingHandler(closingService portssvc.ClosingSvcFacade) *closingHandler {
	return &closingHandler{closingService: closingService}
}

// registerClosingRoutes registers the year-end closing route.
func registerClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvcFacade) {
	h := newClosingHandler(closingService)

	rg.POST("/closings", h.closeFiscalYear)
}

// closeFiscalYear godoc
// @Summary Close a fiscal year
// @Description Moves the revenue and expense balances of the period covering closingDate into retained earnings (421).
// @Description Returns 201 with the posted entries, or 200 with none when every balance is already zero.
// @Tags closing
// @Accept  json
// @Produce  json
// @Param   closing body dto.CloseFiscalYearRequest true "Closing label and date"
// @Success 200 {object} dto.CloseFiscalYearResponse "Nothing to close"
// @Success 201 {object} dto.CloseFiscalYearResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Period locked"
// @Failure 422 {object} handlers.ErrorResponse "No period defined"
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /closings [post]
func (h *closingHandler) closeFiscalYear(c *gin.Context) {
	logger := middleware.LoggerOrDefault(c.Request.Context())

	var req dto.CloseFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err), "Invalid request format")
		return
	}
	closingDate, err := req.Date()
	if err != nil {
		respondError(c, err, "Invalid closing date")
		return
	}

	entries, err := h.closingService.CloseFiscalYear(c.Request.Context(), req.Label, closingDate, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to close fiscal year")
		return
	}

	status := http.StatusCreated
	if len(entries) == 0 {
		status = http.StatusOK
	}
	logger.Info("Fiscal year closing handled", slog.String("label", req.Label), slog.Int("entries", len(entries)))
	c.JSON(status, dto.ToCloseFiscalYearResponse(entries))
}
