package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	portsrepo "github.com/clarity-finance/clarity-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository persists transactions in the transactions table.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, date, description, amount, type, category, subcategory, account_id, user_id, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.Date,
		&t.Description,
		&t.Amount,
		&t.Type,
		&t.Category,
		&t.Subcategory,
		&t.AccountID,
		&t.UserID,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTransaction inserts a single transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.Type,
		txn.Category,
		txn.Subcategory,
		txn.AccountID,
		txn.UserID,
		txn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// SaveTransactions bulk-inserts transactions inside one database transaction,
// so either every row is written or none is.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"transactions"},
		[]string{"transaction_id", "date", "description", "amount", "type", "category", "subcategory", "account_id", "user_id", "created_at"},
		pgx.CopyFromSlice(len(txns), func(i int) ([]any, error) {
			t := txns[i]
			return []any{
				t.TransactionID,
				t.Date,
				t.Description,
				t.Amount,
				string(t.Type),
				t.Category,
				t.Subcategory,
				t.AccountID,
				t.UserID,
				t.CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert %d transactions: %w", len(txns), err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a single transaction owned by userID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	t, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return t, nil
}

// FindTransactionsByUser retrieves all transactions for a user, newest first.
func (r *PgxTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction overwrites the mutable fields of an existing row.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET date = $3, description = $4, amount = $5, type = $6, category = $7, subcategory = $8
		WHERE transaction_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.Type,
		txn.Category,
		txn.Subcategory,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction owned by userID.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
