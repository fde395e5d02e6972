package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "license"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrLicenseNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrComplianceAlertNotFound)))
		assert.False(t, IsNotFound(ErrPermissionDenied))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message names the offending value", func(t *testing.T) {
		err := NewConflictError("compliance status", "code", "OPEN", "duplicate code")
		assert.Equal(t, "compliance status conflict: duplicate code (code=OPEN)", err.Error())
	})

	t.Run("Error message without value", func(t *testing.T) {
		assert.Equal(t, "license conflict: user seat limit reached", ErrUserSeatLimitReached.Error())
	})

	t.Run("errors.Is matches on entity and message", func(t *testing.T) {
		wrapped := fmt.Errorf("assign: %w", ErrUserSeatLimitReached)
		assert.True(t, errors.Is(wrapped, ErrUserSeatLimitReached))
		assert.False(t, errors.Is(wrapped, ErrLocationSeatLimitReached))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrStatusesAlreadyDefined))
		assert.False(t, IsConflict(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "comment", Message: "must not be empty"}
		assert.Equal(t, "validation error: comment - must not be empty", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("severity", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestUnavailableError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := NewUnavailableError("assign user seat", cause)

	assert.Equal(t, "store unavailable during assign user seat: connection reset by peer", err.Error())
	assert.True(t, IsUnavailable(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsNotFound(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"unauthenticated", ErrNoSession, http.StatusUnauthorized},
		{"forbidden", ErrNotTeamMember, http.StatusForbidden},
		{"not found", fmt.Errorf("lookup: %w", ErrTeamNotFound), http.StatusNotFound},
		{"validation", NewValidationError("comment", "required"), http.StatusBadRequest},
		{"conflict", ErrUserSeatLimitReached, http.StatusConflict},
		{"unavailable", NewUnavailableError("op", errors.New("timeout")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("token expired")
		assert.Equal(t, "token expired", err.Error())
		assert.True(t, IsAuthentication(err))
		assert.False(t, IsAuthorization(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.True(t, IsAuthorization(err))
		assert.False(t, IsAuthentication(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("missing")))
	})
}
