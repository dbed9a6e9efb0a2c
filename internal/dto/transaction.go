package dto

import (
	"time"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction
// manually (outside the bank-sync path).
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required,isodate"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=credit debit"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	AccountID   string          `json:"account_id"`
}

// UpdateTransactionRequest defines the fields allowed in a partial update.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date" binding:"omitempty,isodate"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type" binding:"omitempty,oneof=credit debit"`
	Category    *string          `json:"category"`
	Subcategory *string          `json:"subcategory"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	AccountID   string          `json:"account_id"`
	UserID      string          `json:"user_id,omitempty"`
}

// ListTransactionsParams defines the conjunctive query filters for listing.
type ListTransactionsParams struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Type     string `form:"type" binding:"omitempty,oneof=credit debit"`
	Month    string `form:"month" binding:"omitempty,yearmonth"`
}

// ListTransactionsResponse wraps the transaction list.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.TransactionID,
		Date:        t.Date.Format(time.DateOnly),
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Subcategory: t.Subcategory,
		AccountID:   t.AccountID,
		UserID:      t.UserID,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		Total:        len(txns),
	}
	for i := range txns {
		res.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
