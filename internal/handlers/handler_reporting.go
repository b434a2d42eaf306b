package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/dto"
	"github.com/SscSPs/tt99_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/general-ledger", h.getGeneralLedger)
	}
}

// getGeneralLedger godoc
// @Summary General ledger
// @Description Posted lines dated between startDate and endDate (both inclusive), ordered by date then entry.
// @Tags reports
// @Produce  json
// @Param   startDate query string true "Start date (YYYY-MM-DD)"
// @Param   endDate query string true "End date (YYYY-MM-DD), not in the future"
// @Param   accountNumber query string false "Restrict to one account"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /reports/general-ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.LoggerOrDefault(c.Request.Context())

	var params dto.GeneralLedgerQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, bindingError(err), "Invalid query parameters")
		return
	}
	q, err := params.ToQuery()
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	rows, err := h.reportingService.QueryGeneralLedger(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Failed to build general ledger")
		return
	}

	logger.Debug("General ledger built", slog.Int("rows", len(rows)))
	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(params, rows))
}
