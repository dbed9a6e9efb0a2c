package dto

import (
	"github.com/clarity-finance/clarity-backend/internal/core/reports"
)

// SummaryResponse is the dashboard totals payload.
type SummaryResponse = reports.Summary

// CategoryBreakdownResponse wraps the spending-by-category rows.
type CategoryBreakdownResponse struct {
	Month      string                  `json:"month,omitempty"`
	Categories []reports.CategoryTotal `json:"categories"`
}

// MonthlyTrendResponse wraps the per-month trend series.
type MonthlyTrendResponse struct {
	Months []reports.MonthlyPoint `json:"months"`
}

// CategoriesParams defines the query parameters of the category report.
type CategoriesParams struct {
	Month string `form:"month" binding:"omitempty,yearmonth"`
}
