package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler serves the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountReaderSvc
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountReaderSvc) {
	h := &accountHandler{accountService: accountService}

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountNumber", h.getAccount)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToAccountResponses(accounts)})
}

// getAccount godoc
// @Summary Get an account by number
// @Tags accounts
// @Produce  json
// @Param   accountNumber path string true "Account number" example(111)
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountNumber} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccount(c.Request.Context(), c.Param("accountNumber"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
