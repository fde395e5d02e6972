package handlers

import (
	"errors"
	"net/http"

	"governance-portal-backend/internal/auth"
	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/logger"
	"governance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Field string `json:"field,omitempty" example:"code"`
	Code  string `json:"code,omitempty" example:"IN_PROGRESS"`
}

// respondError writes err with the status its kind maps to. Store and internal
// failures are logged and reported without their cause.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	response := ErrorResponse{Error: err.Error()}

	var validationErr *apperrors.ValidationError
	var conflictErr *apperrors.ConflictError
	switch {
	case errors.As(err, &validationErr):
		response.Field = validationErr.Field
	case errors.As(err, &conflictErr):
		response.Field = conflictErr.Field
		response.Code = conflictErr.Value
	}

	switch status {
	case http.StatusServiceUnavailable:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Directory store unavailable")
		response = ErrorResponse{Error: "service temporarily unavailable"}
	case http.StatusInternalServerError:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Unhandled error")
		response = ErrorResponse{Error: "internal server error"}
	}

	c.JSON(status, response)
}

// authorize runs the access check for the team in the :slug path parameter.
// On failure the response is written and ok is false.
func authorize(c *gin.Context, guard service.AuthorizationGuardInterface, resource models.Resource, action models.Action) (*models.TeamMember, bool) {
	principal, _ := auth.GetPrincipal(c)
	member, err := guard.Check(c.Request.Context(), principal, c.Param("slug"), resource, action)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return member, true
}

// uuidParam parses the named path parameter. On failure a 400 is written.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperrors.NewValidationError(name, "invalid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body. On failure a 400 is written.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apperrors.NewValidationError("body", err.Error()))
		return false
	}
	return true
}
