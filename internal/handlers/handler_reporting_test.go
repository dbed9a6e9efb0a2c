package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clarity-finance/clarity-backend/internal/core/reports"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportingService
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	container, _, _, reporting, _ := newTestServices()
	suite.mockService = reporting
	suite.router = newTestRouter(container)
}

func (suite *ReportingHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestSummary() {
	suite.mockService.On("Summary", mock.Anything, testUserID).Return(reports.Summary{
		TotalIncome:   decimal.NewFromInt(5000),
		TotalExpenses: decimal.NewFromInt(150),
		Net:           decimal.NewFromInt(4850),
		CreditCount:   1,
		DebitCount:    1,
	}, nil).Once()

	w := suite.get("/api/reports/summary")

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("5000", body["totalIncome"])
	suite.Equal("4850", body["net"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestSummary_ServiceError() {
	suite.mockService.On("Summary", mock.Anything, testUserID).
		Return(reports.Summary{}, assert.AnError).Once()

	w := suite.get("/api/reports/summary")

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestCategories_WithMonth() {
	rows := []reports.CategoryTotal{
		{Category: "Food", Amount: decimal.NewFromInt(150), Percentage: decimal.NewFromInt(100)},
	}
	suite.mockService.On("Categories", mock.Anything, testUserID, "2024-01").Return(rows, nil).Once()

	w := suite.get("/api/reports/categories?month=2024-01")

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2024-01", body["month"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestCategories_BadMonth() {
	w := suite.get("/api/reports/categories?month=notamonth")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Categories")
}

func (suite *ReportingHandlerTestSuite) TestMonthly() {
	series := []reports.MonthlyPoint{
		{Month: "2024-01", Income: decimal.NewFromInt(5000), Expenses: decimal.NewFromInt(150), Net: decimal.NewFromInt(4850)},
	}
	suite.mockService.On("MonthlyTrend", mock.Anything, testUserID).Return(series, nil).Once()

	w := suite.get("/api/reports/monthly")

	suite.Equal(http.StatusOK, w.Code)
	var body map[string][]map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body["months"], 1)
	suite.Equal("2024-01", body["months"][0]["month"])
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
