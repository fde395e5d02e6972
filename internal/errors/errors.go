package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a uniqueness or capacity violation.
// Field and Value name the offending input when there is one.
type ConflictError struct {
	Entity  string
	Field   string
	Value   string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s conflict: %s (%s=%s)", e.Entity, e.Message, e.Field, e.Value)
	}
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Message)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UnavailableError wraps a failure of the directory store (timeouts, lost connections).
// It is surfaced as-is; nothing retries it internally.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound             = &NotFoundError{Entity: "team"}
	ErrLocationNotFound         = &NotFoundError{Entity: "location"}
	ErrLicenseNotFound          = &NotFoundError{Entity: "license"}
	ErrPurchasedLicenseNotFound = &NotFoundError{Entity: "purchased license"}
	ErrComplianceStatusNotFound = &NotFoundError{Entity: "compliance status"}
	ErrComplianceAlertNotFound  = &NotFoundError{Entity: "compliance alert"}
)

// Conflict Errors
var (
	ErrUserSeatLimitReached     = &ConflictError{Entity: "license", Field: "max_users", Message: "user seat limit reached"}
	ErrLocationSeatLimitReached = &ConflictError{Entity: "license", Field: "max_locations", Message: "location seat limit reached"}
	ErrStatusesAlreadyDefined   = &ConflictError{Entity: "compliance status", Message: "team already has statuses defined"}
)

// Authentication and Authorization Errors
var (
	ErrNoSession            = &AuthenticationError{Message: "authentication required"}
	ErrPrincipalInactive    = &AuthenticationError{Message: "user account is not active"}
	ErrTeamUnavailable      = &AuthenticationError{Message: "team is not available"}
	ErrNotTeamMember        = &AuthorizationError{Message: "user is not a member of this team"}
	ErrPermissionDenied     = &AuthorizationError{Message: "permission denied"}
	ErrSeatOwnerNotMember   = &AuthorizationError{Message: "user is not a member of the license team"}
	ErrSeatLocationNotOwned = &AuthorizationError{Message: "location does not belong to the license team"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsUnavailable checks if an error is an UnavailableError
func IsUnavailable(err error) bool {
	var unavailableErr *UnavailableError
	return errors.As(err, &unavailableErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// HTTPStatus maps an error kind onto the status code handlers respond with
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	case IsNotFound(err):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	case IsConflict(err):
		return http.StatusConflict
	case IsUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a ConflictError naming the offending field and value
func NewConflictError(entity, field, value, message string) error {
	return &ConflictError{Entity: entity, Field: field, Value: value, Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewUnavailableError wraps a store failure that happened during op
func NewUnavailableError(op string, err error) error {
	return &UnavailableError{Op: op, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
