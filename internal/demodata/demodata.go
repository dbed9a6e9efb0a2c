// Package demodata bundles the static demo transaction dataset. The dataset
// stands in for a linked bank account so the dashboard can be exercised
// without provider credentials.
package demodata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

//go:embed transactions.json
var raw []byte

type fileFormat struct {
	Transactions []record `json:"transactions"`
}

type record struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	AccountID   string          `json:"account_id"`
}

// Load parses the bundled dataset into domain transactions. Amounts are
// normalized to positive magnitudes regardless of how the file stores them.
func Load() ([]domain.Transaction, error) {
	var file fileFormat
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse bundled demo dataset: %w", err)
	}

	txns := make([]domain.Transaction, 0, len(file.Transactions))
	for _, r := range file.Transactions {
		date, err := time.Parse(time.DateOnly, r.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in demo dataset: %w", r.Date, err)
		}
		t := domain.Transaction{
			TransactionID: r.ID,
			Date:          date,
			Description:   r.Description,
			Amount:        r.Amount.Abs(),
			Type:          domain.TransactionType(r.Type),
			Category:      r.Category,
			Subcategory:   r.Subcategory,
			AccountID:     r.AccountID,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("bad record %s in demo dataset: %w", r.ID, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}
