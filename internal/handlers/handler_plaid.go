package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/dto"
	"github.com/clarity-finance/clarity-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// plaidHandler fronts the banking-provider gateway endpoints.
type plaidHandler struct {
	bankLinkService portssvc.BankLinkSvcFacade
}

func newPlaidHandler(svc portssvc.BankLinkSvcFacade) *plaidHandler {
	return &plaidHandler{bankLinkService: svc}
}

// registerPlaidRoutes registers the provider gateway routes. The limiter
// middlewares are passed in because the classes differ per route.
func registerPlaidRoutes(rg *gin.RouterGroup, svc portssvc.BankLinkSvcFacade, authLimit, plaidLimit, dbLimit gin.HandlerFunc) {
	h := newPlaidHandler(svc)

	plaid := rg.Group("/plaid")
	{
		plaid.POST("/create-link-token", authLimit, plaidLimit, h.createLinkToken)
		plaid.POST("/exchange-token", authLimit, plaidLimit, h.exchangeToken)
		plaid.POST("/sync-transactions", plaidLimit, h.syncTransactions)
		plaid.POST("/save-transactions", dbLimit, h.saveTransactions)
		plaid.POST("/accounts", plaidLimit, h.accounts)
	}
}

// respondProviderFailure maps a service error to the contract's 400/500
// bodies: validation failures carry a static message, provider failures get
// the provider's details attached.
func respondProviderFailure(c *gin.Context, err error, badRequestMsg, internalMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": badRequestMsg})
		return
	}

	var provErr *apperrors.ProviderError
	if errors.As(err, &provErr) {
		logger.Error(internalMsg, slog.String("details", provErr.Details))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg, "details": provErr.Details})
		return
	}

	logger.Error(internalMsg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg, "details": err.Error()})
}

// createLinkToken godoc
// @Summary Create a bank-linking token
// @Description Issues a short-lived link token to initialize the account-linking UI flow
// @Tags plaid
// @Accept json
// @Produce json
// @Param request body dto.CreateLinkTokenRequest true "User to link"
// @Success 200 {object} domain.LinkToken
// @Failure 400 {object} map[string]string "User ID is required"
// @Failure 500 {object} map[string]string "Provider error with details"
// @Security BearerAuth
// @Router /plaid/create-link-token [post]
func (h *plaidHandler) createLinkToken(c *gin.Context) {
	var req dto.CreateLinkTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	token, err := h.bankLinkService.CreateLinkToken(c.Request.Context(), req.UserID)
	if err != nil {
		respondProviderFailure(c, err, "User ID is required", "Unable to create link token")
		return
	}
	c.JSON(http.StatusOK, token)
}

// exchangeToken godoc
// @Summary Exchange a public token
// @Description Trades a one-time public token for the long-lived access token
// @Tags plaid
// @Accept json
// @Produce json
// @Param request body dto.ExchangeTokenRequest true "Public token"
// @Success 200 {object} dto.ExchangeTokenResponse
// @Failure 400 {object} map[string]string "Public token is required"
// @Failure 500 {object} map[string]string "Provider error with details"
// @Security BearerAuth
// @Router /plaid/exchange-token [post]
func (h *plaidHandler) exchangeToken(c *gin.Context) {
	var req dto.ExchangeTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.PublicToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Public token is required"})
		return
	}

	exchange, err := h.bankLinkService.ExchangePublicToken(c.Request.Context(), req.PublicToken)
	if err != nil {
		respondProviderFailure(c, err, "Public token is required", "Unable to exchange token")
		return
	}
	c.JSON(http.StatusOK, dto.ExchangeTokenResponse{AccessToken: exchange.AccessToken, ItemID: exchange.ItemID})
}

// syncTransactions godoc
// @Summary Fetch transactions from the provider
// @Description Fetches one page of transactions and accounts for a date range
// @Tags plaid
// @Accept json
// @Produce json
// @Param request body dto.SyncTransactionsRequest true "Access token and date range"
// @Success 200 {object} dto.SyncTransactionsResponse
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 500 {object} map[string]string "Provider error with details"
// @Security BearerAuth
// @Router /plaid/sync-transactions [post]
func (h *plaidHandler) syncTransactions(c *gin.Context) {
	var req dto.SyncTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.AccessToken == "" || req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Access token, start date, and end date are required"})
		return
	}

	page, err := h.bankLinkService.SyncTransactions(c.Request.Context(), req.AccessToken, req.StartDate, req.EndDate)
	if err != nil {
		respondProviderFailure(c, err, "Access token, start date, and end date are required", "Unable to sync transactions")
		return
	}
	c.JSON(http.StatusOK, dto.SyncTransactionsResponse{
		Transactions: page.Transactions,
		Accounts:     page.Accounts,
		Total:        page.Total,
	})
}

// saveTransactions godoc
// @Summary Save synced transactions
// @Description Transforms provider records and bulk-inserts them for the user
// @Tags plaid
// @Accept json
// @Produce json
// @Param request body dto.SaveTransactionsRequest true "Transactions and owner"
// @Success 200 {object} dto.SaveTransactionsResponse
// @Failure 400 {object} map[string]string "Missing fields or too many records"
// @Failure 500 {object} map[string]string "Storage error"
// @Security BearerAuth
// @Router /plaid/save-transactions [post]
func (h *plaidHandler) saveTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if len(req.Transactions) == 0 || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transactions and userId are required"})
		return
	}
	if len(req.Transactions) > portssvc.MaxSaveBatch {
		logger.Warn("Excessive transaction count", slog.Int("count", len(req.Transactions)))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Too many transactions",
			"message": "Maximum 1000 transactions allowed per request",
		})
		return
	}

	count, err := h.bankLinkService.SaveTransactions(c.Request.Context(), req.UserID, req.Transactions)
	if err != nil {
		respondProviderFailure(c, err, "Transactions and userId are required", "Unable to save transactions")
		return
	}
	c.JSON(http.StatusOK, dto.SaveTransactionsResponse{Success: true, Count: count})
}

// accounts godoc
// @Summary Fetch linked account metadata
// @Description Returns the accounts linked to an access token
// @Tags plaid
// @Accept json
// @Produce json
// @Param request body dto.AccountsRequest true "Access token"
// @Success 200 {object} dto.AccountsResponse
// @Failure 400 {object} map[string]string "Access token is required"
// @Failure 500 {object} map[string]string "Provider error with details"
// @Security BearerAuth
// @Router /plaid/accounts [post]
func (h *plaidHandler) accounts(c *gin.Context) {
	var req dto.AccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.AccessToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Access token is required"})
		return
	}

	accounts, err := h.bankLinkService.GetAccounts(c.Request.Context(), req.AccessToken)
	if err != nil {
		respondProviderFailure(c, err, "Access token is required", "Unable to fetch accounts")
		return
	}
	c.JSON(http.StatusOK, dto.AccountsResponse{Accounts: accounts})
}
