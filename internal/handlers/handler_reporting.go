package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/dto"
	"github.com/clarity-finance/clarity-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the derived dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(svc portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: svc}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, svc portssvc.ReportingSvcFacade) {
	h := newReportingHandler(svc)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/categories", h.categories)
		reports.GET("/monthly", h.monthly)
	}
}

// summary godoc
// @Summary Income/expense totals
// @Description Returns total income, total expenses and their difference for the authenticated user
// @Tags reports
// @Produce json
// @Success 200 {object} reports.Summary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to generate summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// categories godoc
// @Summary Spending by category
// @Description Returns the debit-only category breakdown with percentages, optionally for one month
// @Tags reports
// @Produce json
// @Param month query string false "YYYY-MM month filter"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate breakdown"
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) categories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.CategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.Categories(c.Request.Context(), userID, params.Month)
	if err != nil {
		logger.Error("Failed to generate category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate breakdown"})
		return
	}
	c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{Month: params.Month, Categories: rows})
}

// monthly godoc
// @Summary Monthly income/expense trend
// @Description Returns the per-month income, expense and net series, oldest first
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MonthlyTrendResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate trend"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	series, err := h.reportingService.MonthlyTrend(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to generate monthly trend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trend"})
		return
	}
	c.JSON(http.StatusOK, dto.MonthlyTrendResponse{Months: series})
}
