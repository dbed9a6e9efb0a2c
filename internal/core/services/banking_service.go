package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	portsprov "github.com/clarity-finance/clarity-backend/internal/core/ports/providers"
	portsrepo "github.com/clarity-finance/clarity-backend/internal/core/ports/repositories"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/dto"
	"github.com/google/uuid"
)

// bankLinkService implements the BankLinkSvcFacade interface, fronting the
// banking provider and the transform-and-persist step after a sync.
type bankLinkService struct {
	BaseService
	provider        portsprov.BankingProvider
	transactionRepo portsrepo.TransactionWriter
}

// NewBankLinkService creates a new bank link service.
func NewBankLinkService(provider portsprov.BankingProvider, repo portsrepo.TransactionWriter) portssvc.BankLinkSvcFacade {
	return &bankLinkService{provider: provider, transactionRepo: repo}
}

var _ portssvc.BankLinkSvcFacade = (*bankLinkService)(nil)

func (s *bankLinkService) CreateLinkToken(ctx context.Context, userID string) (*domain.LinkToken, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}

	token, err := s.provider.CreateLinkToken(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Error creating link token")
		return nil, err
	}

	s.LogInfo(ctx, "Link token created", slog.String("request_id", token.RequestID))
	return token, nil
}

func (s *bankLinkService) ExchangePublicToken(ctx context.Context, publicToken string) (*domain.TokenExchange, error) {
	if publicToken == "" {
		return nil, fmt.Errorf("%w: public token is required", apperrors.ErrValidation)
	}

	exchange, err := s.provider.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		s.LogError(ctx, err, "Error exchanging token")
		return nil, err
	}

	s.LogInfo(ctx, "Token exchange successful", slog.String("item_id", exchange.ItemID))
	return exchange, nil
}

func (s *bankLinkService) SyncTransactions(ctx context.Context, accessToken, startDate, endDate string) (*domain.TransactionPage, error) {
	if accessToken == "" || startDate == "" || endDate == "" {
		return nil, fmt.Errorf("%w: access token, start date, and end date are required", apperrors.ErrValidation)
	}

	page, err := s.provider.GetTransactions(ctx, accessToken, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Error syncing transactions")
		return nil, err
	}

	s.LogInfo(ctx, "Transactions fetched successfully",
		slog.Int("count", len(page.Transactions)),
		slog.Int("total", page.Total))
	return page, nil
}

func (s *bankLinkService) GetAccounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: access token is required", apperrors.ErrValidation)
	}

	accounts, err := s.provider.GetAccounts(ctx, accessToken)
	if err != nil {
		s.LogError(ctx, err, "Error fetching accounts")
		return nil, err
	}

	s.LogInfo(ctx, "Accounts fetched successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

// SaveTransactions transforms provider records into stored transactions and
// bulk-inserts them in one atomic call. There is no idempotency key: calling
// this twice with the same records duplicates rows.
func (s *bankLinkService) SaveTransactions(ctx context.Context, userID string, records []dto.ProviderTransactionRecord) (int, error) {
	if len(records) == 0 || userID == "" {
		return 0, fmt.Errorf("%w: transactions and userId are required", apperrors.ErrValidation)
	}
	if len(records) > portssvc.MaxSaveBatch {
		s.LogWarn(ctx, "Excessive transaction count rejected", slog.Int("count", len(records)))
		return 0, fmt.Errorf("%w: at most %d transactions allowed per request", apperrors.ErrValidation, portssvc.MaxSaveBatch)
	}

	now := time.Now()
	txns := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		txn, err := transformProviderRecord(r, userID, now)
		if err != nil {
			return 0, err
		}
		txns = append(txns, txn)
	}

	if err := s.transactionRepo.SaveTransactions(ctx, txns); err != nil {
		s.LogError(ctx, err, "Error saving transactions", slog.Int("count", len(txns)))
		return 0, err
	}

	s.LogInfo(ctx, "Transactions saved", slog.Int("count", len(txns)))
	return len(txns), nil
}

// transformProviderRecord maps one provider-shaped record into the stored
// transaction shape: the amount sign is split into a type (positive means
// credit), the magnitude is kept non-negative, and the provider's category
// taxonomy is flattened to its first two entries.
func transformProviderRecord(r dto.ProviderTransactionRecord, userID string, now time.Time) (domain.Transaction, error) {
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: invalid transaction date %q", apperrors.ErrValidation, r.Date)
	}

	txnType := domain.Debit
	if r.Amount.IsPositive() {
		txnType = domain.Credit
	}

	category := "Other"
	subcategory := ""
	if len(r.Category) > 0 && r.Category[0] != "" {
		category = r.Category[0]
	}
	if len(r.Category) > 1 {
		subcategory = r.Category[1]
	}

	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Description:   r.Name,
		Amount:        r.Amount.Abs(),
		Type:          txnType,
		Category:      category,
		Subcategory:   subcategory,
		AccountID:     r.AccountID,
		UserID:        userID,
		CreatedAt:     now,
	}, nil
}
