package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/retailbooks/daily_ledger_app/internal/core/ports/services"
	"github.com/retailbooks/daily_ledger_app/internal/dto"
	"github.com/retailbooks/daily_ledger_app/internal/middleware"
)

// dailySummaryHandler handles HTTP requests related to daily summaries.
type dailySummaryHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newDailySummaryHandler(rs portssvc.ReconciliationSvcFacade) *dailySummaryHandler {
	return &dailySummaryHandler{reconciliationService: rs}
}

// RegisterDailySummaryRoutes registers the summary, history and aggregate preview routes.
func RegisterDailySummaryRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	registerValidators()
	h := newDailySummaryHandler(reconciliationService)

	summaries := rg.Group("/daily-summaries")
	{
		summaries.POST("", h.createDailySummary)
		summaries.GET("", h.listDailySummaries)
		summaries.GET("/by-date/:date", h.getDailySummaryByDate)
		summaries.GET("/:summaryID", h.getDailySummary)
		summaries.PUT("/:summaryID", h.updateDailySummary)
		summaries.DELETE("/:summaryID", h.deleteDailySummary)
		summaries.GET("/:summaryID/history", h.listSummaryHistory)
		summaries.DELETE("/:summaryID/history", h.purgeSummaryHistory)
	}

	rg.GET("/aggregates/:date", h.previewAggregates)
}

// createDailySummary godoc
// @Summary Reconcile and create a daily summary
// @Description Aggregates the source ledgers of a branch and day and stores the resulting summary.
// @Tags daily-summaries
// @Accept  json
// @Produce  json
// @Param   summary body dto.CreateDailySummaryRequest true "Entered figures of the day"
// @Success 201 {object} dto.DailySummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Branch not accessible"
// @Failure 404 {object} map[string]string "Branch not found"
// @Failure 409 {object} map[string]string "Summary already exists for branch and date"
// @Failure 503 {object} map[string]string "Storage unavailable, retryable"
// @Security BearerAuth
// @Router /daily-summaries [post]
func (h *dailySummaryHandler) createDailySummary(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var req dto.CreateDailySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CreateDailySummary", err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create daily summary", slog.String("date", req.Date))

	summary, err := h.reconciliationService.CreateDailySummary(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "create daily summary")
		return
	}

	logger.Info("Daily summary created", slog.Int64("summary_id", summary.SummaryID), slog.String("day_balance", summary.DayBalance.StringFixed(2)))
	c.JSON(http.StatusCreated, dto.ToDailySummaryResponse(summary))
}

// listDailySummaries godoc
// @Summary List daily summaries
// @Description Lists summaries newest date first. Employees only see their own branch.
// @Tags daily-summaries
// @Produce  json
// @Param   branchID query int false "Branch filter (administrators)"
// @Param   from query string false "First date, YYYY-MM-DD"
// @Param   to query string false "Last date, YYYY-MM-DD"
// @Param   limit query int false "Limit" default(31)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListDailySummariesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Branch not accessible"
// @Security BearerAuth
// @Router /daily-summaries [get]
func (h *dailySummaryHandler) listDailySummaries(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	var params dto.ListDailySummariesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "ListDailySummaries query", err)
		return
	}

	summaries, err := h.reconciliationService.ListDailySummaries(c.Request.Context(), caller, params)
	if err != nil {
		respondWithError(c, err, "list daily summaries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDailySummariesResponse(summaries))
}

// getDailySummary godoc
// @Summary Get a daily summary
// @Tags daily-summaries
// @Produce  json
// @Param   summaryID path int true "Summary ID"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Branch not accessible"
// @Failure 404 {object} map[string]string "Summary not found"
// @Security BearerAuth
// @Router /daily-summaries/{summaryID} [get]
func (h *dailySummaryHandler) getDailySummary(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	summaryID, ok := summaryIDParam(c)
	if !ok {
		return
	}

	summary, err := h.reconciliationService.GetDailySummary(c.Request.Context(), caller, summaryID)
	if err != nil {
		respondWithError(c, err, "get daily summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailySummaryResponse(summary))
}

// getDailySummaryByDate godoc
// @Summary Get the daily summary of a branch and date
// @Tags daily-summaries
// @Produce  json
// @Param   date path string true "Date, YYYY-MM-DD"
// @Param   branchID query int false "Branch (administrators); defaults to the caller's branch"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Summary not found"
// @Security BearerAuth
// @Router /daily-summaries/by-date/{date} [get]
func (h *dailySummaryHandler) getDailySummaryByDate(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	branchID, ok := optionalBranchQuery(c)
	if !ok {
		return
	}

	summary, err := h.reconciliationService.GetDailySummaryByDate(c.Request.Context(), caller, branchID, c.Param("date"))
	if err != nil {
		respondWithError(c, err, "get daily summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailySummaryResponse(summary))
}

// updateDailySummary godoc
// @Summary Re-reconcile a daily summary
// @Description Merges the supplied entered figures, recomputes derived fields from the source ledgers and records one history entry per changed field. Derived fields in the body are ignored.
// @Tags daily-summaries
// @Accept  json
// @Produce  json
// @Param   summaryID path int true "Summary ID"
// @Param   summary body dto.UpdateDailySummaryRequest true "Fields to change"
// @Success 200 {object} dto.UpdateDailySummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Branch not accessible"
// @Failure 404 {object} map[string]string "Summary not found"
// @Failure 503 {object} map[string]string "Storage unavailable, retryable"
// @Security BearerAuth
// @Router /daily-summaries/{summaryID} [put]
func (h *dailySummaryHandler) updateDailySummary(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	summaryID, ok := summaryIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateDailySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "UpdateDailySummary", err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("summary_id", summaryID))
	logger.Info("Received request to update daily summary")

	summary, changes, err := h.reconciliationService.UpdateDailySummary(c.Request.Context(), caller, summaryID, req)
	if err != nil {
		respondWithError(c, err, "update daily summary")
		return
	}

	logger.Info("Daily summary updated", slog.Int("changed_fields", len(changes)))
	c.JSON(http.StatusOK, dto.UpdateDailySummaryResponse{
		Summary: dto.ToDailySummaryResponse(summary),
		Changes: dto.ToChangeHistoryEntryResponses(changes),
	})
}

// deleteDailySummary godoc
// @Summary Delete a daily summary
// @Description Administrators only. The change history of the summary is kept.
// @Tags daily-summaries
// @Param   summaryID path int true "Summary ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Administrators only"
// @Failure 404 {object} map[string]string "Summary not found"
// @Security BearerAuth
// @Router /daily-summaries/{summaryID} [delete]
func (h *dailySummaryHandler) deleteDailySummary(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	summaryID, ok := summaryIDParam(c)
	if !ok {
		return
	}

	if err := h.reconciliationService.DeleteDailySummary(c.Request.Context(), caller, summaryID); err != nil {
		respondWithError(c, err, "delete daily summary")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Daily summary deleted", slog.Int64("summary_id", summaryID))
	c.Status(http.StatusNoContent)
}

// listSummaryHistory godoc
// @Summary List the change history of a summary
// @Tags daily-summaries
// @Produce  json
// @Param   summaryID path int true "Summary ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListHistoryResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 404 {object} map[string]string "Summary not found"
// @Security BearerAuth
// @Router /daily-summaries/{summaryID}/history [get]
func (h *dailySummaryHandler) listSummaryHistory(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	summaryID, ok := summaryIDParam(c)
	if !ok {
		return
	}
	var params dto.ListHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "ListSummaryHistory query", err)
		return
	}

	resp, err := h.reconciliationService.ListSummaryHistory(c.Request.Context(), caller, summaryID, params)
	if err != nil {
		respondWithError(c, err, "list summary history")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// purgeSummaryHistory godoc
// @Summary Purge the change history of a summary
// @Description Administrators only.
// @Tags daily-summaries
// @Produce  json
// @Param   summaryID path int true "Summary ID"
// @Success 200 {object} dto.PurgeHistoryResponse
// @Failure 403 {object} map[string]string "Administrators only"
// @Security BearerAuth
// @Router /daily-summaries/{summaryID}/history [delete]
func (h *dailySummaryHandler) purgeSummaryHistory(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	summaryID, ok := summaryIDParam(c)
	if !ok {
		return
	}

	purged, err := h.reconciliationService.PurgeSummaryHistory(c.Request.Context(), caller, summaryID)
	if err != nil {
		respondWithError(c, err, "purge summary history")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Summary history purged", slog.Int64("summary_id", summaryID), slog.Int64("purged", purged))
	c.JSON(http.StatusOK, dto.PurgeHistoryResponse{SummaryID: summaryID, Purged: purged})
}

// previewAggregates godoc
// @Summary Preview the derived totals of a branch and day
// @Description Runs the aggregation over the source ledgers without storing anything.
// @Tags aggregates
// @Produce  json
// @Param   date path string true "Date, YYYY-MM-DD"
// @Param   branchID query int false "Branch (administrators); defaults to the caller's branch"
// @Success 200 {object} dto.AggregatesResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 403 {object} map[string]string "Branch not accessible"
// @Security BearerAuth
// @Router /aggregates/{date} [get]
func (h *dailySummaryHandler) previewAggregates(c *gin.Context) {
	caller, ok := callerFromRequest(c)
	if !ok {
		return
	}
	branchID, ok := optionalBranchQuery(c)
	if !ok {
		return
	}

	agg, err := h.reconciliationService.PreviewAggregates(c.Request.Context(), caller, branchID, c.Param("date"))
	if err != nil {
		respondWithError(c, err, "preview aggregates")
		return
	}
	c.JSON(http.StatusOK, dto.ToAggregatesResponse(agg))
}
