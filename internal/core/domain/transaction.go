package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction: a credit increases
// the balance, a debit decreases it.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// Transaction is the single domain entity of the application. Amount is always
// a non-negative magnitude; direction is carried by Type and recovered at the
// edges via SignedAmount.
type Transaction struct {
	TransactionID string          `json:"id"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	AccountID     string          `json:"account_id"`
	UserID        string          `json:"user_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SignedAmount returns the amount with its direction applied: positive for
// credits, negative for debits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Credit {
		return t.Amount.Abs()
	}
	return t.Amount.Abs().Neg()
}

// MonthKey returns the YYYY-MM grouping key for the transaction date.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// Validate checks the stored-magnitude invariants of a transaction.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must be a non-negative magnitude, got %s", t.Amount)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("transaction type must be credit or debit, got %q", t.Type)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}
