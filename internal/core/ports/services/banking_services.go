package services

import (
	"context"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/clarity-finance/clarity-backend/internal/dto"
)

// MaxSaveBatch is the hard cap on records accepted by SaveTransactions in a
// single request. Larger payloads are rejected outright, not chunked.
const MaxSaveBatch = 1000

// BankLinkSvcFacade exposes the banking-provider gateway operations: token
// lifecycle, single-page transaction sync, account fetch, and the
// transform-and-persist step after a successful sync.
type BankLinkSvcFacade interface {
	CreateLinkToken(ctx context.Context, userID string) (*domain.LinkToken, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*domain.TokenExchange, error)
	SyncTransactions(ctx context.Context, accessToken, startDate, endDate string) (*domain.TransactionPage, error)
	GetAccounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error)
	// SaveTransactions transforms provider records into stored transactions
	// and bulk-inserts them, returning the number of rows written.
	SaveTransactions(ctx context.Context, userID string, records []dto.ProviderTransactionRecord) (int, error)
}
