package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_StorageClassification(t *testing.T) {
	cause := errors.New("connection reset")

	serverErr := NewAppError(500, "failed to insert daily summary", cause)
	assert.ErrorIs(t, serverErr, ErrStorage)
	assert.ErrorIs(t, serverErr, cause)
	assert.Equal(t, "failed to insert daily summary: connection reset", serverErr.Error())

	badRequest := NewAppError(400, "invalid nextToken", cause)
	assert.NotErrorIs(t, badRequest, ErrStorage)

	wrapped := fmt.Errorf("reconcile: %w", serverErr)
	assert.ErrorIs(t, wrapped, ErrStorage)
}

func TestValidationError(t *testing.T) {
	err := NewFieldValidationError("date", "is required")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation error: date is required", err.Error())

	var vErr *ValidationError
	assert.True(t, errors.As(fmt.Errorf("create: %w", err), &vErr))
	assert.Equal(t, "date", vErr.Field)

	plain := NewValidationError("amount must be positive")
	assert.Equal(t, "validation error: amount must be positive", plain.Error())
}

func TestErrDuplicateAliasesConflict(t *testing.T) {
	assert.ErrorIs(t, fmt.Errorf("insert: %w", ErrDuplicate), ErrConflict)
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("daily summary for branch 1 on 2024-03-01")
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrStorage)
	assert.Equal(t, "daily summary for branch 1 on 2024-03-01: resource already exists", err.Error())
}
