package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/clarity-finance/clarity-backend/internal/core/reports"
	"github.com/clarity-finance/clarity-backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	container, _, transaction, _, _ := newTestServices()
	suite.mockService = transaction
	suite.router = newTestRouter(container)
}

func (suite *TransactionHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) sampleTransaction() *domain.Transaction {
	date, _ := time.Parse(time.DateOnly, "2024-01-05")
	return &domain.Transaction{
		TransactionID: "t1",
		Date:          date,
		Description:   "Coffee",
		Amount:        decimal.RequireFromString("4.50"),
		Type:          domain.Debit,
		Category:      "Food",
		UserID:        testUserID,
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	txns := []domain.Transaction{*suite.sampleTransaction()}
	suite.mockService.On("ListTransactions", mock.Anything, testUserID, reports.Filter{}).
		Return(txns, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(1, body.Total)
	suite.Require().Len(body.Transactions, 1)
	suite.Equal("t1", body.Transactions[0].ID)
	suite.Equal("2024-01-05", body.Transactions[0].Date)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesFilters() {
	suite.mockService.On("ListTransactions", mock.Anything, testUserID, reports.Filter{
		Search:   "coffee",
		Category: "Food",
		Type:     domain.Debit,
		Month:    "2024-01",
	}).Return([]domain.Transaction{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions?search=coffee&category=Food&type=debit&month=2024-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadTypeParam() {
	w := suite.do(http.MethodGet, "/api/transactions?type=transfer", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadMonthParam() {
	w := suite.do(http.MethodGet, "/api/transactions?month=January", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	created := suite.sampleTransaction()
	suite.mockService.On("CreateTransaction", mock.Anything, testUserID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Description == "Coffee" && req.Type == "debit"
		})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/transactions", gin.H{
		"date":        "2024-01-05",
		"description": "Coffee",
		"amount":      4.50,
		"type":        "debit",
		"category":    "Food",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("t1", body.ID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingFields() {
	w := suite.do(http.MethodPost, "/api/transactions", gin.H{"description": "Coffee"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationError() {
	suite.mockService.On("CreateTransaction", mock.Anything, testUserID,
		mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodPost, "/api/transactions", gin.H{
		"date":        "2024-01-05",
		"description": "Coffee",
		"amount":      4.50,
		"type":        "debit",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_Success() {
	updated := suite.sampleTransaction()
	updated.Description = "Espresso"
	suite.mockService.On("UpdateTransaction", mock.Anything, testUserID, "t1",
		mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
			return req.Description != nil && *req.Description == "Espresso"
		})).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/transactions/t1", gin.H{"description": "Espresso"})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Espresso", body.Description)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockService.On("UpdateTransaction", mock.Anything, testUserID, "missing",
		mock.AnythingOfType("dto.UpdateTransactionRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/transactions/missing", gin.H{"description": "x"})

	suite.Equal(http.StatusNotFound, w.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Transaction not found", body["error"])
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	suite.mockService.On("DeleteTransaction", mock.Anything, testUserID, "t1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/transactions/t1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	suite.mockService.On("DeleteTransaction", mock.Anything, testUserID, "missing").
		Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/transactions/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
