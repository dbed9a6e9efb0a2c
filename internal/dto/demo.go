package dto

import (
	"time"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DemoTransactionResponse is a demo transaction with its direction applied:
// amounts are positive for credits and negative for debits, matching what the
// demo dashboard renders.
type DemoTransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	AccountID   string          `json:"account_id"`
}

// DemoTransactionsParams defines the optional inclusive date-range filter.
type DemoTransactionsParams struct {
	StartDate string `form:"start_date" binding:"omitempty,isodate"`
	EndDate   string `form:"end_date" binding:"omitempty,isodate"`
}

// DemoAccountsResponse wraps the synthetic demo account list.
type DemoAccountsResponse struct {
	Accounts []domain.DemoAccount `json:"accounts"`
	NetWorth decimal.Decimal      `json:"netWorth"`
}

// ToDemoTransactionResponse converts a domain transaction to its signed form.
func ToDemoTransactionResponse(t *domain.Transaction) DemoTransactionResponse {
	return DemoTransactionResponse{
		ID:          t.TransactionID,
		Date:        t.Date.Format(time.DateOnly),
		Description: t.Description,
		Amount:      t.SignedAmount(),
		Type:        string(t.Type),
		Category:    t.Category,
		Subcategory: t.Subcategory,
		AccountID:   t.AccountID,
	}
}

// ToDemoTransactionsResponse converts a slice of demo transactions.
func ToDemoTransactionsResponse(txns []domain.Transaction) []DemoTransactionResponse {
	res := make([]DemoTransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToDemoTransactionResponse(&txns[i])
	}
	return res
}
