package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestRecordMovement_Success() {
	movement := &domain.Movement{
		MovementID:   5,
		BranchID:     1,
		MovementDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Kind:         domain.MovementExpense,
		Amount:       decimal.NewFromInt(100),
	}
	suite.mockLedgers.On("RecordMovement", mock.Anything, cashier,
		mock.MatchedBy(func(r dto.CreateMovementRequest) bool {
			return r.Kind == domain.MovementExpense && r.Amount.Equal(decimal.NewFromInt(100))
		}),
	).Return(movement, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/movements", &cashier, map[string]any{
		"date":   "2024-03-01",
		"kind":   "EXPENSE",
		"amount": "100",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.MovementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(5), resp.MovementID)
	suite.Equal(domain.MovementExpense, resp.Kind)
}

func (suite *HandlerTestSuite) TestRecordMovement_UnknownKind() {
	w := suite.do(http.MethodPost, "/api/v1/movements", &cashier, map[string]any{
		"date":   "2024-03-01",
		"kind":   "REFUND",
		"amount": "100",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgers.AssertNotCalled(suite.T(), "RecordMovement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListMovements_DateRequired() {
	w := suite.do(http.MethodGet, "/api/v1/movements", &cashier, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListCardCharges() {
	query := dto.SourceLedgerQuery{Date: "2024-03-01"}
	suite.mockLedgers.On("ListCardCharges", mock.Anything, cashier, query).Return([]domain.CardCharge{
		{CardChargeID: 1, BranchID: 1, Amount: decimal.NewFromInt(700), Status: domain.CardChargeSuccessful},
		{CardChargeID: 2, BranchID: 1, Amount: decimal.NewFromInt(50), Status: domain.CardChargePending},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/card-charges?date=2024-03-01", &cashier, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CardChargeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func (suite *HandlerTestSuite) TestRecordBankDeposit_ValidationFromService() {
	suite.mockLedgers.On("RecordBankDeposit", mock.Anything, cashier, mock.Anything).
		Return(nil, apperrors.NewFieldValidationError("amount", "must be greater than zero")).Once()

	w := suite.do(http.MethodPost, "/api/v1/bank-deposits", &cashier, map[string]any{
		"date":   "2024-03-01",
		"amount": "0",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("amount", body["field"])
}

func (suite *HandlerTestSuite) TestSetOpeningFund_Duplicate() {
	suite.mockLedgers.On("SetOpeningFund", mock.Anything, cashier, mock.Anything).
		Return(nil, apperrors.NewConflictError("opening fund for branch 1 on 2024-03-01")).Once()

	w := suite.do(http.MethodPost, "/api/v1/opening-funds", &cashier, map[string]any{
		"date":   "2024-03-01",
		"amount": "1000",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetOpeningFund_PathDate() {
	branch := int64(3)
	query := dto.SourceLedgerQuery{BranchID: &branch, Date: "2024-03-01"}
	suite.mockLedgers.On("GetOpeningFund", mock.Anything, admin, query).Return(&domain.OpeningFund{
		OpeningFundID: 9, BranchID: 3, FundDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(1000),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/opening-funds/2024-03-01?branchID=3", &admin, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockLedgers.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestOpeningFund_InvalidBranchQuery() {
	w := suite.do(http.MethodGet, "/api/v1/opening-funds/2024-03-01?branchID=-4", &admin, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgers.AssertNotCalled(suite.T(), "GetOpeningFund", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteOpeningFund_NotFound() {
	suite.mockLedgers.On("DeleteOpeningFund", mock.Anything, admin, dto.SourceLedgerQuery{Date: "2024-03-02"}).
		Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/opening-funds/2024-03-02", &admin, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
