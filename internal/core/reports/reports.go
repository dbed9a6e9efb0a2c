// Package reports holds the pure aggregation functions behind the dashboard
// endpoints. Every function is a deterministic transform over an in-memory
// transaction slice, so the live path and the demo path share one code path.
package reports

import (
	"sort"
	"strings"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summary is the income/expense/net totals over a set of transactions.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Net           decimal.Decimal `json:"net"`
	CreditCount   int             `json:"creditCount"`
	DebitCount    int             `json:"debitCount"`
}

// CategoryTotal is one row of the spending-by-category breakdown.
type CategoryTotal struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// MonthlyPoint is one month of the income/expense trend series.
type MonthlyPoint struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// Summarize computes income, expense and net totals. The invariant
// Net == TotalIncome - TotalExpenses holds exactly.
func Summarize(txns []domain.Transaction) Summary {
	s := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, t := range txns {
		switch t.Type {
		case domain.Credit:
			s.TotalIncome = s.TotalIncome.Add(t.Amount.Abs())
			s.CreditCount++
		case domain.Debit:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount.Abs())
			s.DebitCount++
		}
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// percentScale is the rounding applied to percentage values.
const percentScale = 2

// CategoryBreakdown groups debit transactions by category, sums their
// magnitudes and computes each group's share of the expense total, sorted by
// amount descending. month optionally restricts the input to one YYYY-MM
// period; pass "" for all months.
func CategoryBreakdown(txns []domain.Transaction, month string) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	expenseTotal := decimal.Zero
	for _, t := range txns {
		if t.Type != domain.Debit {
			continue
		}
		if month != "" && t.MonthKey() != month {
			continue
		}
		amt := t.Amount.Abs()
		totals[t.Category] = totals[t.Category].Add(amt)
		expenseTotal = expenseTotal.Add(amt)
	}

	rows := make([]CategoryTotal, 0, len(totals))
	hundred := decimal.NewFromInt(100)
	for category, amount := range totals {
		pct := decimal.Zero
		if expenseTotal.IsPositive() {
			pct = amount.Mul(hundred).DivRound(expenseTotal, percentScale)
		}
		rows = append(rows, CategoryTotal{Category: category, Amount: amount, Percentage: pct})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// MonthlyTrend accumulates income and expense sums per YYYY-MM month and
// derives the net for each, sorted chronologically ascending.
func MonthlyTrend(txns []domain.Transaction) []MonthlyPoint {
	byMonth := make(map[string]*MonthlyPoint)
	for _, t := range txns {
		key := t.MonthKey()
		point, ok := byMonth[key]
		if !ok {
			point = &MonthlyPoint{Month: key, Income: decimal.Zero, Expenses: decimal.Zero}
			byMonth[key] = point
		}
		if t.Type == domain.Credit {
			point.Income = point.Income.Add(t.Amount.Abs())
		} else {
			point.Expenses = point.Expenses.Add(t.Amount.Abs())
		}
	}

	series := make([]MonthlyPoint, 0, len(byMonth))
	for _, point := range byMonth {
		point.Net = point.Income.Sub(point.Expenses)
		series = append(series, *point)
	}
	// Lexicographic order on YYYY-MM keys is chronological order.
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

// Filter is a conjunctive set of transaction list filters. Zero values mean
// "no restriction".
type Filter struct {
	Search   string
	Category string
	Type     domain.TransactionType
	Month    string
}

// Apply returns the transactions matching every set field of f. Search is a
// case-insensitive substring match on description or category; category and
// type are exact matches.
func Apply(txns []domain.Transaction, f Filter) []domain.Transaction {
	search := strings.ToLower(f.Search)
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Description), search) &&
			!strings.Contains(strings.ToLower(t.Category), search) {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Month != "" && t.MonthKey() != f.Month {
			continue
		}
		out = append(out, t)
	}
	return out
}
