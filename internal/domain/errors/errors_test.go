package errors

import (
	"net/http"
	"testing"

	"makan/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrRecipeNotFound.WrapMessage("recipe 42")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "RECIPE_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrRecipeNotFound))
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title is required")

	assert.Equal(t, "title is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	dbErr := NewDatabaseExecuteError(cause, "failed to save recipe")

	assert.True(t, errors.Is(dbErr, cause))
	assert.Equal(t, http.StatusInternalServerError, dbErr.HTTPCode())
	assert.Contains(t, dbErr.Error(), "connection reset")
}
