package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/dto"
	"github.com/SscSPs/tt99_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:entryID", h.getJournalEntry)
		entries.POST("/:entryID/reverse", h.reverseJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Post a journal entry
// @Description Validates the entry against its period, balance, the chart of accounts and the posting rules, then posts it atomically.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.CreateJournalEntryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Period locked"
// @Failure 422 {object} handlers.ErrorResponse "Unbalanced, unknown account, no period or rule violation"
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.LoggerOrDefault(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err), "Invalid request format")
		return
	}

	entry, err := req.ToJournalEntry(middleware.ActorFromContext(c), time.Now().UTC())
	if err != nil {
		respondError(c, err, "Invalid journal entry")
		return
	}

	entryID, err := h.journalService.CreateJournalEntry(c.Request.Context(), entry)
	if err != nil {
		respondError(c, err, "Failed to post journal entry")
		return
	}

	logger.Info("Journal entry created", slog.String("entry_id", entryID))
	c.JSON(http.StatusCreated, dto.CreateJournalEntryResponse{EntryID: entryID, Status: string(entry.Status)})
}

// listJournalEntries godoc
// @Summary List posted journal entries
// @Description Newest first, paged with an opaque token.
// @Tags journal-entries
// @Produce  json
// @Param   limit query int false "Page size (max 200)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, bindingError(err), "Invalid query parameters")
		return
	}

	resp, err := h.journalService.ListJournalEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseJournalEntry godoc
// @Summary Reverse a journal entry
// @Description Not supported; always answers 501.
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Failure 501 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/{entryID}/reverse [post]
func (h *journalHandler) reverseJournalEntry(c *gin.Context) {
	err := h.journalService.ReverseEntry(c.Request.Context(), c.Param("entryID"), middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to reverse journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}
