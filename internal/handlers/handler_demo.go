package handlers

import (
	"errors"
	"net/http"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// demoHandler serves the bundled demo dataset. Demo routes are public: they
// exist precisely so the app can be explored without an account.
type demoHandler struct {
	demoService portssvc.DemoSvcFacade
}

func newDemoHandler(svc portssvc.DemoSvcFacade) *demoHandler {
	return &demoHandler{demoService: svc}
}

// registerDemoRoutes registers the demo-mode routes.
func registerDemoRoutes(rg *gin.RouterGroup, svc portssvc.DemoSvcFacade) {
	h := newDemoHandler(svc)

	demo := rg.Group("/demo")
	{
		demo.GET("/transactions", h.transactions)
		demo.GET("/accounts", h.accounts)
		demo.GET("/reports/summary", h.summary)
		demo.GET("/reports/categories", h.categories)
		demo.GET("/reports/monthly", h.monthly)
	}
}

// transactions godoc
// @Summary Demo transactions
// @Description Returns the bundled demo transactions with signed amounts, optionally date-filtered
// @Tags demo
// @Produce json
// @Param start_date query string false "Inclusive YYYY-MM-DD lower bound"
// @Param end_date query string false "Inclusive YYYY-MM-DD upper bound"
// @Success 200 {array} dto.DemoTransactionResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /demo/transactions [get]
func (h *demoHandler) transactions(c *gin.Context) {
	var params dto.DemoTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.demoService.Transactions(params.StartDate, params.EndDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load demo transactions"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDemoTransactionsResponse(txns))
}

// accounts godoc
// @Summary Demo accounts
// @Description Returns the synthetic demo account and net worth
// @Tags demo
// @Produce json
// @Success 200 {object} dto.DemoAccountsResponse
// @Router /demo/accounts [get]
func (h *demoHandler) accounts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DemoAccountsResponse{
		Accounts: h.demoService.Accounts(),
		NetWorth: h.demoService.NetWorth(),
	})
}

// summary godoc
// @Summary Demo totals
// @Tags demo
// @Produce json
// @Success 200 {object} reports.Summary
// @Router /demo/reports/summary [get]
func (h *demoHandler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.demoService.Summary())
}

// categories godoc
// @Summary Demo spending by category
// @Tags demo
// @Produce json
// @Param month query string false "YYYY-MM month filter"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Router /demo/reports/categories [get]
func (h *demoHandler) categories(c *gin.Context) {
	var params dto.CategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		Month:      params.Month,
		Categories: h.demoService.Categories(params.Month),
	})
}

// monthly godoc
// @Summary Demo monthly trend
// @Tags demo
// @Produce json
// @Success 200 {object} dto.MonthlyTrendResponse
// @Router /demo/reports/monthly [get]
func (h *demoHandler) monthly(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MonthlyTrendResponse{Months: h.demoService.MonthlyTrend()})
}
