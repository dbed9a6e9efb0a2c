package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clarity-finance/clarity-backend/internal/apperrors"
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	"github.com/clarity-finance/clarity-backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type PlaidHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBankLinkService
}

func (suite *PlaidHandlerTestSuite) SetupTest() {
	container, bankLink, _, _, _ := newTestServices()
	suite.mockService = bankLink
	suite.router = newTestRouter(container)
}

func (suite *PlaidHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PlaidHandlerTestSuite) decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- Test Cases ---

func (suite *PlaidHandlerTestSuite) TestCreateLinkToken_MissingUserID() {
	w := suite.postJSON("/api/plaid/create-link-token", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("User ID is required", suite.decodeBody(w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "CreateLinkToken")
}

func (suite *PlaidHandlerTestSuite) TestCreateLinkToken_Success() {
	token := &domain.LinkToken{LinkToken: "link-sandbox-abc", RequestID: "req-1"}
	suite.mockService.On("CreateLinkToken", mock.Anything, "user-1").Return(token, nil).Once()

	w := suite.postJSON("/api/plaid/create-link-token", gin.H{"userId": "user-1"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("link-sandbox-abc", suite.decodeBody(w)["link_token"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PlaidHandlerTestSuite) TestCreateLinkToken_ProviderFailure() {
	provErr := apperrors.NewProviderError("INVALID_API_KEYS", nil)
	suite.mockService.On("CreateLinkToken", mock.Anything, "user-1").Return(nil, provErr).Once()

	w := suite.postJSON("/api/plaid/create-link-token", gin.H{"userId": "user-1"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("Unable to create link token", body["error"])
	suite.Equal("INVALID_API_KEYS", body["details"])
}

func (suite *PlaidHandlerTestSuite) TestExchangeToken_MissingToken() {
	w := suite.postJSON("/api/plaid/exchange-token", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Public token is required", suite.decodeBody(w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "ExchangePublicToken")
}

func (suite *PlaidHandlerTestSuite) TestExchangeToken_Success() {
	exchange := &domain.TokenExchange{AccessToken: "access-abc", ItemID: "item-1"}
	suite.mockService.On("ExchangePublicToken", mock.Anything, "public-abc").Return(exchange, nil).Once()

	w := suite.postJSON("/api/plaid/exchange-token", gin.H{"public_token": "public-abc"})

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("access-abc", body["accessToken"])
	suite.Equal("item-1", body["itemId"])
}

func (suite *PlaidHandlerTestSuite) TestSyncTransactions_MissingFields() {
	w := suite.postJSON("/api/plaid/sync-transactions", gin.H{"access_token": "access-abc"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Access token, start date, and end date are required", suite.decodeBody(w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "SyncTransactions")
}

func (suite *PlaidHandlerTestSuite) TestSyncTransactions_Success() {
	page := &domain.TransactionPage{
		Transactions: []domain.ProviderTransaction{{TransactionID: "p-1", Name: "Coffee"}},
		Total:        1,
	}
	suite.mockService.On("SyncTransactions", mock.Anything, "access-abc", "2024-01-01", "2024-01-31").
		Return(page, nil).Once()

	w := suite.postJSON("/api/plaid/sync-transactions", gin.H{
		"access_token": "access-abc",
		"start_date":   "2024-01-01",
		"end_date":     "2024-01-31",
	})

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.EqualValues(1, body["total_transactions"])
}

func (suite *PlaidHandlerTestSuite) TestSyncTransactions_MalformedDate() {
	w := suite.postJSON("/api/plaid/sync-transactions", gin.H{
		"access_token": "access-abc",
		"start_date":   "31/01/2024",
		"end_date":     "2024-01-31",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SyncTransactions")
}

func (suite *PlaidHandlerTestSuite) TestSaveTransactions_MissingFields() {
	w := suite.postJSON("/api/plaid/save-transactions", gin.H{"userId": "user-1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Transactions and userId are required", suite.decodeBody(w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *PlaidHandlerTestSuite) TestSaveTransactions_TooManyRecords() {
	records := make([]gin.H, 1001)
	for i := range records {
		records[i] = gin.H{"date": "2024-01-05", "name": fmt.Sprintf("txn %d", i), "amount": 1}
	}

	w := suite.postJSON("/api/plaid/save-transactions", gin.H{
		"userId":       "user-1",
		"transactions": records,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("Too many transactions", body["error"])
	suite.Equal("Maximum 1000 transactions allowed per request", body["message"])
	suite.mockService.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *PlaidHandlerTestSuite) TestSaveTransactions_Success() {
	suite.mockService.On("SaveTransactions", mock.Anything, "user-1",
		mock.AnythingOfType("[]dto.ProviderTransactionRecord")).Return(2, nil).Once()

	w := suite.postJSON("/api/plaid/save-transactions", gin.H{
		"userId": "user-1",
		"transactions": []gin.H{
			{"date": "2024-01-05", "name": "Paycheck", "amount": 2500, "category": []string{"Income"}},
			{"date": "2024-01-06", "name": "Groceries", "amount": -82.45},
		},
	})

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.Equal(true, body["success"])
	suite.EqualValues(2, body["count"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PlaidHandlerTestSuite) TestAccounts_MissingToken() {
	w := suite.postJSON("/api/plaid/accounts", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Access token is required", suite.decodeBody(w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "GetAccounts")
}

func (suite *PlaidHandlerTestSuite) TestAccounts_Success() {
	accounts := []domain.BankAccount{{AccountID: "acct-1", Name: "Checking", Type: "depository"}}
	suite.mockService.On("GetAccounts", mock.Anything, "access-abc").Return(accounts, nil).Once()

	w := suite.postJSON("/api/plaid/accounts", gin.H{"access_token": "access-abc"})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Accounts, 1)
	suite.Equal("acct-1", body.Accounts[0].AccountID)
}

// --- Run Suite ---
func TestPlaidHandler(t *testing.T) {
	suite.Run(t, new(PlaidHandlerTestSuite))
}
