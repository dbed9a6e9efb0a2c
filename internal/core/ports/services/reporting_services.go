package services

import (
	"context"

	"github.com/clarity-finance/clarity-backend/internal/core/reports"
)

// ReportingSvcFacade derives the dashboard aggregates from a user's stored
// transactions.
type ReportingSvcFacade interface {
	Summary(ctx context.Context, userID string) (reports.Summary, error)
	// Categories restricts to one YYYY-MM month when month is non-empty.
	Categories(ctx context.Context, userID string, month string) ([]reports.CategoryTotal, error)
	MonthlyTrend(ctx context.Context, userID string) ([]reports.MonthlyPoint, error)
}
