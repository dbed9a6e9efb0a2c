package services

import (
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/clarity-finance/clarity-backend/internal/core/reports"
	"github.com/shopspring/decimal"
)

// DemoSvcFacade serves the bundled demo dataset through the same aggregation
// code the live path uses. All methods are pure and deterministic, so no
// context or error is involved.
type DemoSvcFacade interface {
	// Transactions returns the demo transactions, optionally restricted to an
	// inclusive YYYY-MM-DD date range (empty bounds mean unbounded).
	Transactions(startDate, endDate string) ([]domain.Transaction, error)
	Accounts() []domain.DemoAccount
	NetWorth() decimal.Decimal
	Summary() reports.Summary
	Categories(month string) []reports.CategoryTotal
	MonthlyTrend() []reports.MonthlyPoint
	// CategorySpending is the flat category-to-total map of debit spending.
	CategorySpending() map[string]decimal.Decimal
}
