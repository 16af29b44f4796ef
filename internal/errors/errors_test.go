//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrNoWorkspace, ErrNotFound)
	assert.NotEqual(t, ErrCancelled, ErrValidation)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid name",
		Location: "/proj/src",
		Field:    "name",
		Context:  map[string]string{"Kind": "backend"},
		Hint:     "Use kebab-case",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /proj/src")
	assert.Contains(t, output, "Field: name")
	assert.Contains(t, output, "Kind: backend")
	assert.Contains(t, output, "invalid name")
	assert.Contains(t, output, "Hint: Use kebab-case")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid value", "config.yaml", "language", "Use javascript or typescript")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "invalid value", detail.Message)
	assert.Equal(t, "config.yaml", detail.Location)
	assert.Equal(t, "language", detail.Field)
	assert.Equal(t, "Use javascript or typescript", detail.Hint)
}

func TestNewNoWorkspaceError(t *testing.T) {
	err := NewNoWorkspaceError("/tmp/somewhere")

	assert.True(t, errors.Is(err, ErrNoWorkspace))
	assert.Contains(t, err.Error(), "No workspace is open.")
	assert.Contains(t, err.Error(), "/tmp/somewhere")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "config check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "config check failed")
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(ErrCancelled))
	assert.True(t, IsCancelled(fmt.Errorf("prompt: %w", ErrCancelled)))
	assert.False(t, IsCancelled(ErrValidation))
	assert.False(t, IsCancelled(nil))
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", NewValidationError("bad", "", "", ""), ExitValidationError},
		{"permission", NewPermissionError("denied", "/x", ""), ExitPermissionDenied},
		{"not found", NewNotFoundError("missing", "/x", ""), ExitNotFound},
		{"no workspace", NewNoWorkspaceError("/x"), ExitNotFound},
		{"explicit exit error", &ExitError{Code: 3, Err: errors.New("x")}, 3},
		{"wrapped exit error", fmt.Errorf("outer: %w", &ExitError{Code: ExitValidationError, Err: errors.New("x")}), ExitValidationError},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}
