package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/dto"
	"github.com/SscSPs/tt99_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// periodHandler handles HTTP requests related to accounting periods.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

// newPeriodHandler creates a new periodHandler.
func newPeriodHandler(periodService portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: periodService}
}

// registerPeriodRoutes registers routes related to accounting periods.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/lookup", h.lookupPeriod)
		periods.GET("/:periodID", h.getPeriod)
		periods.POST("/:periodID/lock", h.lockPeriod)
		periods.POST("/:periodID/unlock", h.unlockPeriod)
	}
}

// createPeriod godoc
// @Summary Create an accounting period
// @Description Creates an open period. The date range may not overlap an existing period.
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   period body dto.CreateAccountingPeriodRequest true "Period definition"
// @Success 201 {object} dto.CreateAccountingPeriodResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Overlapping period"
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.LoggerOrDefault(c.Request.Context())

	var req dto.CreateAccountingPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err), "Invalid request format")
		return
	}
	start, end, err := req.Dates()
	if err != nil {
		respondError(c, err, "Invalid period dates")
		return
	}

	period, err := h.periodService.CreateAccountingPeriod(c.Request.Context(), req.Name, start, end, middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to create accounting period")
		return
	}

	logger.Info("Accounting period created", slog.String("period_id", period.PeriodID))
	c.JSON(http.StatusCreated, dto.CreateAccountingPeriodResponse{PeriodID: period.PeriodID})
}

// listPeriods godoc
// @Summary List accounting periods
// @Tags periods
// @Produce  json
// @Success 200 {array} dto.PeriodResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	periods, err := h.periodService.ListAccountingPeriods(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list accounting periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponses(periods))
}

// getPeriod godoc
// @Summary Get an accounting period
// @Tags periods
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	period, err := h.periodService.GetAccountingPeriod(c.Request.Context(), c.Param("periodID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve accounting period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// lookupPeriod godoc
// @Summary Find the period covering a date
// @Description Answers whether a date is postable: the covering period and its lock flag, or 422 when no period covers it.
// @Tags periods
// @Produce  json
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 422 {object} handlers.ErrorResponse "No period defined"
// @Security BearerAuth
// @Router /periods/lookup [get]
func (h *periodHandler) lookupPeriod(c *gin.Context) {
	var params dto.PeriodLookupParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, bindingError(err), "Invalid query parameters")
		return
	}
	d, err := domain.ParseDate(params.Date)
	if err != nil {
		respondError(c, bindingError(err), "Invalid date")
		return
	}

	period, err := h.periodService.FindPeriodForDate(c.Request.Context(), d)
	if err != nil {
		respondError(c, err, "Failed to look up accounting period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// lockPeriod godoc
// @Summary Lock an accounting period
// @Tags periods
// @Param   periodID path string true "Period ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Already locked"
// @Security BearerAuth
// @Router /periods/{periodID}/lock [post]
func (h *periodHandler) lockPeriod(c *gin.Context) {
	if err := h.periodService.LockPeriod(c.Request.Context(), c.Param("periodID"), middleware.ActorFromContext(c)); err != nil {
		respondError(c, err, "Failed to lock accounting period")
		return
	}
	c.Status(http.StatusNoContent)
}

// unlockPeriod godoc
// @Summary Unlock an accounting period
// @Tags periods
// @Param   periodID path string true "Period ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Already unlocked"
// @Security BearerAuth
// @Router /periods/{periodID}/unlock [post]
func (h *periodHandler) unlockPeriod(c *gin.Context) {
	if err := h.periodService.UnlockPeriod(c.Request.Context(), c.Param("periodID"), middleware.ActorFromContext(c)); err != nil {
		respondError(c, err, "Failed to unlock accounting period")
		return
	}
	c.Status(http.StatusNoContent)
}
