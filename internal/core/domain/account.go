package domain

import "github.com/shopspring/decimal"

// BankAccount is the typed shape of a linked account as reported by the
// banking provider. It is passed through to clients and never persisted.
type BankAccount struct {
	AccountID        string          `json:"account_id"`
	Name             string          `json:"name"`
	OfficialName     string          `json:"official_name,omitempty"`
	Type             string          `json:"type"`
	Subtype          string          `json:"subtype,omitempty"`
	Mask             string          `json:"mask,omitempty"`
	CurrentBalance   decimal.Decimal `json:"current_balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	CurrencyCode     string          `json:"currency_code,omitempty"`
}

// DemoAccount is the synthetic account exposed by demo mode. Its balance is
// the signed sum of the bundled demo transactions; it is never persisted.
type DemoAccount struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}
