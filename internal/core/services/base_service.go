package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/retailbooks/daily_ledger_app/internal/apperrors"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	portsrepo "github.com/retailbooks/daily_ledger_app/internal/core/ports/repositories"
	"github.com/retailbooks/daily_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// BaseService provides common functionality for all services
type BaseService struct {
	BranchReader portsrepo.BranchReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireCaller rejects calls without a resolved identity.
func (s *BaseService) RequireCaller(caller domain.CallerContext) error {
	if caller.UserID == "" || !caller.Role.IsValid() {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// RequireAdmin checks the caller holds the administrator capability for action.
func (s *BaseService) RequireAdmin(ctx context.Context, caller domain.CallerContext, action string) error {
	if err := s.RequireCaller(caller); err != nil {
		return err
	}
	if !caller.IsAdmin() {
		s.LogDebug(ctx, "Administrator capability required",
			slog.String("action", action),
			slog.String("user_id", caller.UserID),
			slog.String("role", string(caller.Role)))
		return fmt.Errorf("%s requires the %s role: %w", action, domain.RoleAdmin, apperrors.ErrForbidden)
	}
	return nil
}

// AuthorizeBranch checks the caller may touch data of branchID.
func (s *BaseService) AuthorizeBranch(ctx context.Context, caller domain.CallerContext, branchID int64) error {
	if err := s.RequireCaller(caller); err != nil {
		return err
	}
	if !caller.CanAccessBranch(branchID) {
		s.LogDebug(ctx, "Caller denied access to branch",
			slog.String("user_id", caller.UserID),
			slog.Int64("caller_branch_id", caller.BranchID),
			slog.Int64("branch_id", branchID))
		return fmt.Errorf("branch %d is outside the caller's scope: %w", branchID, apperrors.ErrForbidden)
	}
	return nil
}

// ResolveBranch picks the branch an operation acts on. Employees default to their own
// branch; naming any other branch is forbidden. The branch must exist.
func (s *BaseService) ResolveBranch(ctx context.Context, caller domain.CallerContext, requested *int64) (int64, error) {
	if err := s.RequireCaller(caller); err != nil {
		return 0, err
	}
	branchID := caller.BranchID
	if requested != nil {
		branchID = *requested
	}
	if branchID <= 0 {
		return 0, apperrors.NewFieldValidationError("branchID", "is required")
	}
	if err := s.AuthorizeBranch(ctx, caller, branchID); err != nil {
		return 0, err
	}
	if s.BranchReader == nil {
		return branchID, nil
	}
	exists, err := s.BranchReader.BranchExists(ctx, branchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up branch", slog.Int64("branch_id", branchID))
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("branch %d: %w", branchID, apperrors.ErrNotFound)
	}
	return branchID, nil
}

func parseDateField(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.NewFieldValidationError(field, "is required")
	}
	date, err := domain.ParseCalendarDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewFieldValidationError(field, "must be a YYYY-MM-DD date")
	}
	return date, nil
}

// normalizeAmount rounds amount to the stored scale and checks it is in range and
// positive, or non-negative when allowZero is set.
func normalizeAmount(field string, amount decimal.Decimal, allowZero bool) (decimal.Decimal, error) {
	rounded := domain.RoundAmount(amount)
	if !domain.AmountInRange(rounded) {
		return decimal.Zero, apperrors.NewFieldValidationError(field, "is out of range")
	}
	if allowZero && rounded.IsNegative() {
		return decimal.Zero, apperrors.NewFieldValidationError(field, "must not be negative")
	}
	if !allowZero && !rounded.IsPositive() {
		return decimal.Zero, apperrors.NewFieldValidationError(field, "must be greater than zero")
	}
	return rounded, nil
}

// checkAmountRange rejects a summary whose amounts the store cannot hold.
func checkAmountRange(summary domain.DailySummary) error {
	if field := summary.OutOfRangeField(); field != "" {
		return apperrors.NewFieldValidationError(field, "is out of range")
	}
	return nil
}
