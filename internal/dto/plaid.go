package dto

import (
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Requests deliberately omit binding:"required" on top-level fields: missing
// fields are reported with the fixed messages the API contract specifies, not
// with validator output. Format checks (dates) still go through binding.

// CreateLinkTokenRequest is the body of POST /api/plaid/create-link-token.
type CreateLinkTokenRequest struct {
	UserID string `json:"userId"`
}

// ExchangeTokenRequest is the body of POST /api/plaid/exchange-token.
type ExchangeTokenRequest struct {
	PublicToken string `json:"public_token"`
}

// ExchangeTokenResponse mirrors the original API's camelCase response.
type ExchangeTokenResponse struct {
	AccessToken string `json:"accessToken"`
	ItemID      string `json:"itemId"`
}

// SyncTransactionsRequest is the body of POST /api/plaid/sync-transactions.
type SyncTransactionsRequest struct {
	AccessToken string `json:"access_token"`
	StartDate   string `json:"start_date" binding:"omitempty,isodate"`
	EndDate     string `json:"end_date" binding:"omitempty,isodate"`
}

// SyncTransactionsResponse passes the provider page through verbatim-but-typed.
type SyncTransactionsResponse struct {
	Transactions []domain.ProviderTransaction `json:"transactions"`
	Accounts     []domain.BankAccount         `json:"accounts"`
	Total        int                          `json:"total_transactions"`
}

// ProviderTransactionRecord is one provider-shaped transaction record as the
// client posts it back for saving. Field names follow the provider wire format.
type ProviderTransactionRecord struct {
	Date      string          `json:"date" binding:"omitempty,isodate"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  []string        `json:"category"`
	AccountID string          `json:"account_id"`
}

// SaveTransactionsRequest is the body of POST /api/plaid/save-transactions.
type SaveTransactionsRequest struct {
	Transactions []ProviderTransactionRecord `json:"transactions"`
	UserID       string                      `json:"userId"`
}

// SaveTransactionsResponse reports a successful bulk insert.
type SaveTransactionsResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// AccountsRequest is the body of POST /api/plaid/accounts.
type AccountsRequest struct {
	AccessToken string `json:"access_token"`
}

// AccountsResponse wraps the typed account list.
type AccountsResponse struct {
	Accounts []domain.BankAccount `json:"accounts"`
}
