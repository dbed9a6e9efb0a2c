package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/clarity-finance/clarity-backend/internal/core/ports/repositories"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/core/reports"
)

// reportingService derives the dashboard aggregates from stored transactions.
// All the arithmetic lives in the reports package; this service only fetches
// the user's transactions and applies it.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{transactionRepo: repo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context, userID string) (reports.Summary, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return reports.Summary{}, err
	}
	return reports.Summarize(txns), nil
}

func (s *reportingService) Categories(ctx context.Context, userID string, month string) ([]reports.CategoryTotal, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for category breakdown")
		return nil, err
	}
	rows := reports.CategoryBreakdown(txns, month)
	s.LogInfo(ctx, "Category breakdown generated", slog.Int("categories", len(rows)), slog.String("month", month))
	return rows, nil
}

func (s *reportingService) MonthlyTrend(ctx context.Context, userID string) ([]reports.MonthlyPoint, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for monthly trend")
		return nil, err
	}
	return reports.MonthlyTrend(txns), nil
}
