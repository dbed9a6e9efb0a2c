package repositories

import (
	"context"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
)

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction owned by userID.
	FindTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
	// FindTransactionsByUser retrieves all transactions for a user, newest first.
	FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	// SaveTransaction inserts a single transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// SaveTransactions bulk-inserts transactions as one atomic operation:
	// either every row is written or none is.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error
	// UpdateTransaction overwrites the mutable fields of an existing row.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction removes a transaction owned by userID.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// TransactionRepository combines the reader and writer facades.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
