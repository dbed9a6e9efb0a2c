package providers

import (
	"context"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
)

// BankingProvider is the integration boundary to the external banking-data
// API. Implementations translate provider wire types into typed domain values
// and surface failures as apperrors.ProviderError.
type BankingProvider interface {
	// CreateLinkToken issues a short-lived link token for the given user.
	CreateLinkToken(ctx context.Context, userID string) (*domain.LinkToken, error)
	// ExchangePublicToken trades a one-time public token for an access token.
	ExchangePublicToken(ctx context.Context, publicToken string) (*domain.TokenExchange, error)
	// GetTransactions fetches a single page of transactions for a date range.
	// Dates are YYYY-MM-DD. No cursor handling: one page in, one page out.
	GetTransactions(ctx context.Context, accessToken, startDate, endDate string) (*domain.TransactionPage, error)
	// GetAccounts fetches the linked accounts for an access token.
	GetAccounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error)
}
