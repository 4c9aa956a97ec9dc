package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/retailbooks/daily_ledger_app/internal/core/ports/services"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
	"github.com/retailbooks/daily_ledger_app/internal/middleware"
)

// sourceLedgerHandler handles the ledgers a daily summary is reconciled from.
type sourceLedgerHandler struct {
	ledgerService portssvc.SourceLedgerSvcFacade
}

func newSourceLedgerHandler(ls portssvc.SourceLedgerSvcFacade) *sourceLedgerHandler {
	return &sourceLedgerHandler{ledgerService: ls}
}

// RegisterSourceLedgerRoutes registers movements, card charges, bank deposits and opening funds.
func RegisterSourceLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.SourceLedgerSvcFacade) {
	registerValidators()
	h := newSourceLedgerHandler(ledgerService)

	rg.POST("/movements", h.recordMovement)
	rg.GET("/movements", h.listMovements)
	rg.POST("/card-charges", h.recordCardCharge)
	rg.GET("/card-charges", h.listCardCharges)
	rg.POST("/bank-deposits", h.recordBankDeposit)
	rg.GET("/bank-deposits", h.listBankDeposits)

	funds := rg.Group("/opening-funds")
	{
		funds.POST("", h.setOpeningFund)
		funds.GET("/:date", h.getOpeningFund)
		funds.PUT("/:date", h.updateOpeningFund)
		funds.DELETE("/:date", h.deleteOpeningFund)
	}
}

// dayQueryFromPath builds the (branch, date) query of the opening fund routes.
func dayQueryFromPath(c *gin.Context) (dto.SourceLedgerQuery, bool) {
	branchID, ok := optionalBranchQuery(c)
	if !ok {
		return dto.SourceLedgerQuery{}, false
	}
	return dto.SourceLedgerQuery{BranchID: branchID, Date: c.Param("date")}, true
}

// recordMovement godoc
// @Summary Record a sale or expense movement
// @Tags source-ledgers
// @Accept  json
// @Produce  json
// @Param   movement body dto.CreateMovementRequest true "Movement"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Branch not accessible"
// @Security BearerAuth
// @Router /movements [post]
func (h *sourceLedgerHandler) recordMovement(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CreateMovement", err)
		return
	}

	movement, err := h.ledgerService.RecordMovement(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "record movement")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Movement recorded",
		slog.Int64("movement_id", movement.MovementID), slog.String("kind", string(movement.Kind)))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List the movements of a branch and day
// @Tags source-ledgers
// @Produce  json
// @Param   date query string true "Date, YYYY-MM-DD"
// @Param   branchID query int false "Branch (administrators)"
// @Success 200 {array} dto.MovementResponse
// @Security BearerAuth
// @Router /movements [get]
func (h *sourceLedgerHandler) listMovements(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var query dto.SourceLedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, "ListMovements query", err)
		return
	}

	movements, err := h.ledgerService.ListMovements(c.Request.Context(), caller, query)
	if err != nil {
		respondWithError(c, err, "list movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponses(movements))
}

// recordCardCharge godoc
// @Summary Record a card terminal charge
// @Tags source-ledgers
// @Accept  json
// @Produce  json
// @Param   charge body dto.CreateCardChargeRequest true "Card charge"
// @Success 201 {object} dto.CardChargeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /card-charges [post]
func (h *sourceLedgerHandler) recordCardCharge(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var req dto.CreateCardChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CreateCardCharge", err)
		return
	}

	charge, err := h.ledgerService.RecordCardCharge(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "record card charge")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCardChargeResponse(charge))
}

// listCardCharges godoc
// @Summary List the card charges of a branch and day
// @Tags source-ledgers
// @Produce  json
// @Param   date query string true "Date, YYYY-MM-DD"
// @Param   branchID query int false "Branch (administrators)"
// @Success 200 {array} dto.CardChargeResponse
// @Security BearerAuth
// @Router /card-charges [get]
func (h *sourceLedgerHandler) listCardCharges(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var query dto.SourceLedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, "ListCardCharges query", err)
		return
	}

	charges, err := h.ledgerService.ListCardCharges(c.Request.Context(), caller, query)
	if err != nil {
		respondWithError(c, err, "list card charges")
		return
	}
	c.JSON(http.StatusOK, dto.ToCardChargeResponses(charges))
}

// recordBankDeposit godoc
// @Summary Record a bank deposit
// @Tags source-ledgers
// @Accept  json
// @Produce  json
// @Param   deposit body dto.CreateBankDepositRequest true "Bank deposit"
// @Success 201 {object} dto.BankDepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /bank-deposits [post]
func (h *sourceLedgerHandler) recordBankDeposit(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var req dto.CreateBankDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CreateBankDeposit", err)
		return
	}

	deposit, err := h.ledgerService.RecordBankDeposit(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "record bank deposit")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankDepositResponse(deposit))
}

// listBankDeposits godoc
// @Summary List the bank deposits of a branch and day
// @Tags source-ledgers
// @Produce  json
// @Param   date query string true "Date, YYYY-MM-DD"
// @Param   branchID query int false "Branch (administrators)"
// @Success 200 {array} dto.BankDepositResponse
// @Security BearerAuth
// @Router /bank-deposits [get]
func (h *sourceLedgerHandler) listBankDeposits(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var query dto.SourceLedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, "ListBankDeposits query", err)
		return
	}

	deposits, err := h.ledgerService.ListBankDeposits(c.Request.Context(), caller, query)
	if err != nil {
		respondWithError(c, err, "list bank deposits")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankDepositResponses(deposits))
}

// setOpeningFund godoc
// @Summary Set the opening fund of a branch and day
// @Tags opening-funds
// @Accept  json
// @Produce  json
// @Param   fund body dto.SetOpeningFundRequest true "Opening fund"
// @Success 201 {object} dto.OpeningFundResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Opening fund already set"
// @Security BearerAuth
// @Router /opening-funds [post]
func (h *sourceLedgerHandler) setOpeningFund(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var req dto.SetOpeningFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "SetOpeningFund", err)
		return
	}

	fund, err := h.ledgerService.SetOpeningFund(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "set opening fund")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOpeningFundResponse(fund))
}

// getOpeningFund godoc
// @Summary Get the opening fund of a branch and day
// @Tags opening-funds
// @Produce  json
// @Param   date path string true "Date, YYYY-MM-DD"
// @Param   branchID query int false "Branch (administrators)"
// @Success 200 {object} dto.OpeningFundResponse
// @Failure 404 {object} map[string]string "Opening fund not found"
// @Security BearerAuth
// @Router /opening-funds/{date} [get]
func (h *sourceLedgerHandler) getOpeningFund(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	query, ok := dayQueryFromPath(c)
	if !ok {
		return
	}

	fund, err := h.ledgerService.GetOpeningFund(c.Request.Context(), caller, query)
	if err != nil {
		respondWithError(c, err, "get opening fund")
		return
	}
	c.JSON(http.StatusOK, dto.ToOpeningFundResponse(fund))
}

// updateOpeningFund godoc
// @Summary Change the opening fund of a branch and day
// @Tags opening-funds
// @Accept  json
// @Produce  json
// @Param   date path string true "Date, YYYY-MM-DD"
// @Param   branchID query int false "Branch (administrators)"
// @Param   fund body dto.UpdateOpeningFundRequest true "New amount"
// @Success 200 {object} dto.OpeningFundResponse
// @Failure 404 {object} map[string]string "Opening fund not found"
// @Security BearerAuth
// @Router /opening-funds/{date} [put]
func (h *sourceLedgerHandler) updateOpeningFund(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	query, ok := dayQueryFromPath(c)
	if !ok {
		return
	}
	var req dto.UpdateOpeningFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "UpdateOpeningFund", err)
		return
	}

	fund, err := h.ledgerService.UpdateOpeningFund(c.Request.Context(), caller, query, req)
	if err != nil {
		respondWithError(c, err, "update opening fund")
		return
	}
	c.JSON(http.StatusOK, dto.ToOpeningFundResponse(fund))
}

// deleteOpeningFund godoc
// @Summary Delete the opening fund of a branch and day
// @Description Administrators only.
// @Tags opening-funds
// @Param   date path string true "Date, YYYY-MM-DD"
// @Param   branchID query int false "Branch"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Administrators only"
// @Failure 404 {object} map[string]string "Opening fund not found"
// @Security BearerAuth
// @Router /opening-funds/{date} [delete]
func (h *sourceLedgerHandler) deleteOpeningFund(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	query, ok := dayQueryFromPath(c)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteOpeningFund(c.Request.Context(), caller, query); err != nil {
		respondWithError(c, err, "delete opening fund")
		return
	}
	c.Status(http.StatusNoContent)
}
