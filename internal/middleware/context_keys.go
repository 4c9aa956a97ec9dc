package middleware

import (
	"context"

	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
)

// callerKey is the key used to store the resolved caller in the request context.
const callerKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying caller.
func WithCaller(ctx context.Context, caller domain.CallerContext) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// GetCallerFromContext retrieves the caller resolved by AuthMiddleware.
// It returns the caller and a boolean indicating if it was found.
func GetCallerFromContext(ctx context.Context) (domain.CallerContext, bool) {
	caller, ok := ctx.Value(callerKey).(domain.CallerContext)
	if !ok || caller.UserID == "" {
		return domain.CallerContext{}, false
	}
	return caller, true
}
