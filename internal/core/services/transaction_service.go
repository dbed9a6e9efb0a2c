package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	portsrepo "github.com/clarity-finance/clarity-backend/internal/core/ports/repositories"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/core/reports"
	"github.com/clarity-finance/clarity-backend/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Description:   req.Description,
		Amount:        req.Amount.Abs(),
		Type:          domain.TransactionType(req.Type),
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		AccountID:     req.AccountID,
		UserID:        userID,
		CreatedAt:     time.Now(),
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter reports.Filter) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	return reports.Apply(txns, filter), nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		txn.Date = date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Amount != nil {
		txn.Amount = req.Amount.Abs()
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Subcategory != nil {
		txn.Subcategory = *req.Subcategory
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
