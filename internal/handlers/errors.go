package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/middleware"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// respondWithError maps service errors onto HTTP statuses. action names the failed
// operation in logs and in the 5xx message.
func respondWithError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Field: vErr.Field})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized caller", slog.String("action", action))
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error("Storage failure", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "Failed to " + action + ", please retry", Retryable: true})
	default:
		logger.Error("Unexpected failure", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to " + action})
	}
}

// callerFromRequest returns the caller resolved by AuthMiddleware, answering 401 when absent.
func callerFromRequest(c *gin.Context) (domain.CallerContext, bool) {
	caller, ok := middleware.GetCallerFromContext(c.Request.Context())
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return domain.CallerContext{}, false
	}
	return caller, true
}

func summaryIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("summaryID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid summary ID: " + raw, Field: "summaryID"})
		return 0, false
	}
	return id, true
}

// optionalBranchQuery reads ?branchID=. Absent means "the caller's branch".
func optionalBranchQuery(c *gin.Context) (*int64, bool) {
	raw, present := c.GetQuery("branchID")
	if !present || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid branch ID: " + raw, Field: "branchID"})
		return nil, false
	}
	return &id, true
}

func bindError(c *gin.Context, what string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format: " + err.Error()})
}
