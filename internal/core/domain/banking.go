package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LinkToken is the short-lived credential issued by the banking provider to
// initialize an account-linking UI flow.
type LinkToken struct {
	LinkToken  string    `json:"link_token"`
	Expiration time.Time `json:"expiration"`
	RequestID  string    `json:"request_id"`
}

// TokenExchange is the result of trading a one-time public token for the
// long-lived access token identifying a linked bank item.
type TokenExchange struct {
	AccessToken string `json:"accessToken"`
	ItemID      string `json:"itemId"`
}

// ProviderTransaction is the typed shape of a single transaction record as
// returned by the banking provider, before it is transformed into a
// Transaction for storage. Amount keeps the provider's sign convention.
type ProviderTransaction struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Date          string          `json:"date"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Category      []string        `json:"category"`
	Pending       bool            `json:"pending"`
	CurrencyCode  string          `json:"iso_currency_code,omitempty"`
}

// TransactionPage is one page of provider transactions together with the
// accounts they belong to and the provider-reported total count.
type TransactionPage struct {
	Transactions []ProviderTransaction `json:"transactions"`
	Accounts     []BankAccount         `json:"accounts"`
	Total        int                   `json:"total_transactions"`
}
