package services

import (
	"context"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/clarity-finance/clarity-backend/internal/core/reports"
	"github.com/clarity-finance/clarity-backend/internal/dto"
)

// TransactionSvcFacade exposes transaction CRUD, always scoped to the
// authenticated user.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, filter reports.Filter) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
