package services

import (
	"fmt"
	"time"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/core/reports"
	"github.com/shopspring/decimal"
)

// demoAccountID is the synthetic account every demo transaction belongs to.
const demoAccountID = "checking_001"

// demoService serves a fixed transaction dataset through the same reports
// functions the live path uses, so demo and live aggregation cannot diverge.
type demoService struct {
	transactions []domain.Transaction
}

// NewDemoService creates a demo service over the given dataset. The dataset
// is assumed already validated (see demodata.Load).
func NewDemoService(transactions []domain.Transaction) portssvc.DemoSvcFacade {
	return &demoService{transactions: transactions}
}

var _ portssvc.DemoSvcFacade = (*demoService)(nil)

// Transactions returns the demo dataset, optionally restricted to an
// inclusive date range.
func (s *demoService) Transactions(startDate, endDate string) ([]domain.Transaction, error) {
	var start, end time.Time
	var err error
	if startDate != "" {
		if start, err = time.Parse(time.DateOnly, startDate); err != nil {
			return nil, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, startDate)
		}
	}
	if endDate != "" {
		if end, err = time.Parse(time.DateOnly, endDate); err != nil {
			return nil, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, endDate)
		}
	}

	out := make([]domain.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if !start.IsZero() && t.Date.Before(start) {
			continue
		}
		if !end.IsZero() && t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Accounts returns the single synthetic account whose balance is the signed
// sum of the whole dataset.
func (s *demoService) Accounts() []domain.DemoAccount {
	balance := decimal.Zero
	for _, t := range s.transactions {
		balance = balance.Add(t.SignedAmount())
	}
	return []domain.DemoAccount{
		{
			ID:      demoAccountID,
			Name:    "Demo Checking Account",
			Type:    "depository",
			Balance: balance,
		},
	}
}

// NetWorth is the sum of all demo account balances.
func (s *demoService) NetWorth() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Accounts() {
		total = total.Add(a.Balance)
	}
	return total
}

func (s *demoService) Summary() reports.Summary {
	return reports.Summarize(s.transactions)
}

func (s *demoService) Categories(month string) []reports.CategoryTotal {
	return reports.CategoryBreakdown(s.transactions, month)
}

func (s *demoService) MonthlyTrend() []reports.MonthlyPoint {
	return reports.MonthlyTrend(s.transactions)
}

// CategorySpending is the flat category-to-total map of debit spending.
func (s *demoService) CategorySpending() map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)
	for _, t := range s.transactions {
		if t.Type != domain.Debit {
			continue
		}
		spending[t.Category] = spending[t.Category].Add(t.Amount.Abs())
	}
	return spending
}
