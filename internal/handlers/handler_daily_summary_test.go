package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
	"github.com/retailbooks/daily_ledger_app/internal/handlers"
	"github.com/retailbooks/daily_ledger_app/internal/middleware"
	"github.com/retailbooks/daily_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testIssuer    = "daily-ledger-test"
)

var (
	cashier = domain.CallerContext{UserID: "cashier-1", Role: domain.RoleEmployee, BranchID: 1}
	admin   = domain.CallerContext{UserID: "ops-1", Role: domain.RoleAdmin}
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockRecon   *MockReconciliationService
	mockLedgers *MockSourceLedgerService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret, testIssuer))

	suite.mockRecon = new(MockReconciliationService)
	suite.mockLedgers = new(MockSourceLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDailySummaryRoutes(v1, suite.mockRecon)
	handlers.RegisterSourceLedgerRoutes(v1, suite.mockLedgers)
}

// generateTestToken signs a real token for caller.
func (suite *HandlerTestSuite) generateTestToken(caller domain.CallerContext) string {
	token, err := utils.GenerateCallerToken(caller, testJWTSecret, time.Hour, testIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, url string, caller *domain.CallerContext, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if caller != nil {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(*caller))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func scenarioSummary() *domain.DailySummary {
	return &domain.DailySummary{
		SummaryID:   10,
		BranchID:    1,
		SummaryDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		GrossSales:  decimal.NewFromInt(5000),
		Expenses:    decimal.NewFromInt(500),
		Deposits:    decimal.NewFromInt(300),
		CardPayment: decimal.NewFromInt(700),
		OpeningFund: decimal.NewFromInt(1000),
		DayBalance:  decimal.NewFromInt(5800),
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestCreateDailySummary_Success() {
	suite.mockRecon.On("CreateDailySummary", mock.Anything, cashier,
		mock.MatchedBy(func(r dto.CreateDailySummaryRequest) bool {
			return r.Date == "2024-03-01" && r.BranchID == nil && r.GrossSales != nil && r.GrossSales.Equal(decimal.NewFromInt(5000))
		}),
	).Return(scenarioSummary(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/daily-summaries", &cashier, map[string]any{
		"date":       "2024-03-01",
		"grossSales": 5000,
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.DailySummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.SummaryID)
	suite.Equal("2024-03-01", resp.Date)
	suite.True(resp.DayBalance.Equal(decimal.NewFromInt(5800)))
	suite.mockRecon.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateDailySummary_Conflict() {
	suite.mockRecon.On("CreateDailySummary", mock.Anything, cashier, mock.Anything).
		Return(nil, apperrors.NewConflictError("daily summary for branch 1 on 2024-03-01")).Once()

	w := suite.do(http.MethodPost, "/api/v1/daily-summaries", &cashier, map[string]any{"date": "2024-03-01"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateDailySummary_InvalidDateRejectedBeforeService() {
	w := suite.do(http.MethodPost, "/api/v1/daily-summaries", &cashier, map[string]any{"date": "2024-13-01"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRecon.AssertNotCalled(suite.T(), "CreateDailySummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateDailySummary_MissingToken() {
	w := suite.do(http.MethodPost, "/api/v1/daily-summaries", nil, map[string]any{"date": "2024-03-01"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRecon.AssertNotCalled(suite.T(), "CreateDailySummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateDailySummary_ForgedToken() {
	forged, err := utils.GenerateCallerToken(admin, "some-other-secret", time.Hour, testIssuer)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/daily-summaries", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateDailySummary_ReturnsChanges() {
	updated := scenarioSummary()
	updated.Expenses = decimal.NewFromInt(600)
	updated.DayBalance = decimal.NewFromInt(5700)
	changes := []domain.ChangeHistoryEntry{{
		HistoryID: 1, SummaryID: 10, FieldLabel: "Expenses", OldValue: "500.00", NewValue: "600.00",
		ChangedBy: cashier.UserID, ChangedAt: time.Now().UTC(),
	}}
	suite.mockRecon.On("UpdateDailySummary", mock.Anything, cashier, int64(10), dto.UpdateDailySummaryRequest{}).
		Return(updated, changes, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/daily-summaries/10", &cashier, map[string]any{})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.UpdateDailySummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Summary.DayBalance.Equal(decimal.NewFromInt(5700)))
	suite.Require().Len(resp.Changes, 1)
	suite.Equal("Expenses", resp.Changes[0].Field)
	suite.Equal("500.00", resp.Changes[0].OldValue)
	suite.Equal("600.00", resp.Changes[0].NewValue)
}

func (suite *HandlerTestSuite) TestUpdateDailySummary_DerivedFieldsInBodyIgnored() {
	suite.mockRecon.On("UpdateDailySummary", mock.Anything, cashier, int64(10),
		mock.MatchedBy(func(r dto.UpdateDailySummaryRequest) bool {
			return r.Cash != nil && r.Cash.Equal(decimal.NewFromInt(40))
		}),
	).Return(scenarioSummary(), nil, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/daily-summaries/10", &cashier, map[string]any{
		"cash":       40,
		"dayBalance": 1,
		"expenses":   99999,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRecon.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateDailySummary_StorageFailureIsRetryable() {
	suite.mockRecon.On("UpdateDailySummary", mock.Anything, cashier, int64(10), mock.Anything).
		Return(nil, nil, apperrors.NewAppError(500, "failed to update daily summary", fmt.Errorf("conn reset"))).Once()

	w := suite.do(http.MethodPut, "/api/v1/daily-summaries/10", &cashier, map[string]any{})

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	var body map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(true, body["retryable"])
}

func (suite *HandlerTestSuite) TestUpdateDailySummary_OutOfRangeAmountIsNotRetryable() {
	suite.mockRecon.On("UpdateDailySummary", mock.Anything, cashier, int64(10),
		mock.MatchedBy(func(r dto.UpdateDailySummaryRequest) bool {
			return r.GrossSales != nil && r.GrossSales.Equal(decimal.New(1, 13))
		}),
	).Return(nil, nil, apperrors.NewFieldValidationError("grossSales", "is out of range")).Once()

	w := suite.do(http.MethodPut, "/api/v1/daily-summaries/10", &cashier, map[string]any{
		"grossSales": 10000000000000,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("grossSales", body["field"])
	suite.Nil(body["retryable"])
	suite.mockRecon.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetDailySummary_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/daily-summaries/abc", &cashier, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetDailySummary_ForbiddenBranch() {
	suite.mockRecon.On("GetDailySummary", mock.Anything, cashier, int64(77)).
		Return(nil, fmt.Errorf("summary 77 belongs to branch 2: %w", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodGet, "/api/v1/daily-summaries/77", &cashier, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestGetDailySummaryByDate_UsesCallerBranchByDefault() {
	suite.mockRecon.On("GetDailySummaryByDate", mock.Anything, cashier, (*int64)(nil), "2024-03-01").
		Return(scenarioSummary(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/daily-summaries/by-date/2024-03-01", &cashier, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRecon.AssertNotCalled(suite.T(), "GetDailySummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteDailySummary_AdminOnly() {
	suite.mockRecon.On("DeleteDailySummary", mock.Anything, cashier, int64(10)).
		Return(fmt.Errorf("delete daily summary: %w", apperrors.ErrForbidden)).Once()
	suite.mockRecon.On("DeleteDailySummary", mock.Anything, admin, int64(10)).Return(nil).Once()

	suite.Equal(http.StatusForbidden, suite.do(http.MethodDelete, "/api/v1/daily-summaries/10", &cashier, nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/daily-summaries/10", &admin, nil).Code)
}

func (suite *HandlerTestSuite) TestListSummaryHistory_InvalidToken() {
	suite.mockRecon.On("ListSummaryHistory", mock.Anything, cashier, int64(10),
		mock.MatchedBy(func(p dto.ListHistoryParams) bool {
			return p.Limit == 20 && p.NextToken != nil && *p.NextToken == "garbage"
		}),
	).Return(nil, apperrors.NewFieldValidationError("nextToken", "is invalid")).Once()

	w := suite.do(http.MethodGet, "/api/v1/daily-summaries/10/history?nextToken=garbage", &cashier, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("nextToken", body["field"])
}

func (suite *HandlerTestSuite) TestPurgeSummaryHistory() {
	suite.mockRecon.On("PurgeSummaryHistory", mock.Anything, admin, int64(10)).Return(int64(3), nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/daily-summaries/10/history", &admin, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PurgeHistoryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.Purged)
}

func (suite *HandlerTestSuite) TestListDailySummaries_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/daily-summaries?limit=1000", &admin, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRecon.AssertNotCalled(suite.T(), "ListDailySummaries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPreviewAggregates_AdminNamesBranch() {
	branch := int64(2)
	agg := &domain.Aggregates{
		BranchID:    2,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Expenses:    decimal.NewFromInt(500),
		Deposits:    decimal.NewFromInt(300),
		CardPayment: decimal.NewFromInt(700),
		OpeningFund: decimal.NewFromInt(1000),
		Counts:      domain.SourceCounts{Expenses: 2, BankDeposits: 1, CardCharges: 1, OpeningFunds: 1},
	}
	suite.mockRecon.On("PreviewAggregates", mock.Anything, admin, &branch, "2024-03-01").Return(agg, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/aggregates/2024-03-01?branchID=2", &admin, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AggregatesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(2), resp.BranchID)
	suite.Equal(2, resp.Counts.Expenses)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
