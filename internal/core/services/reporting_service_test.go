package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.ReportingSvcFacade
	userID   string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) storedTransactions() []domain.Transaction {
	jan5, _ := time.Parse(time.DateOnly, "2024-01-05")
	jan10, _ := time.Parse(time.DateOnly, "2024-01-10")
	feb2, _ := time.Parse(time.DateOnly, "2024-02-02")
	return []domain.Transaction{
		{TransactionID: "t1", Date: jan10, Amount: decimal.NewFromInt(5000), Type: domain.Credit, Category: "Income", UserID: suite.userID},
		{TransactionID: "t2", Date: jan5, Amount: decimal.NewFromInt(150), Type: domain.Debit, Category: "Food", UserID: suite.userID},
		{TransactionID: "t3", Date: feb2, Amount: decimal.NewFromInt(90), Type: domain.Debit, Category: "Entertainment", UserID: suite.userID},
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestSummary() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(suite.storedTransactions(), nil).Once()

	summary, err := suite.service.Summary(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(5000)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(240)))
	suite.True(summary.Net.Equal(decimal.NewFromInt(4760)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(nil, assert.AnError).Once()

	_, err := suite.service.Summary(ctx, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestCategories_MonthScoped() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(suite.storedTransactions(), nil).Once()

	rows, err := suite.service.Categories(ctx, suite.userID, "2024-01")

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("Food", rows[0].Category)
	suite.True(rows[0].Percentage.Equal(decimal.NewFromInt(100)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyTrend() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(suite.storedTransactions(), nil).Once()

	series, err := suite.service.MonthlyTrend(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(series, 2)
	suite.Equal("2024-01", series[0].Month)
	suite.True(series[0].Net.Equal(decimal.NewFromInt(4850)))
	suite.Equal("2024-02", series[1].Month)
	suite.True(series[1].Net.Equal(decimal.NewFromInt(-90)))
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
