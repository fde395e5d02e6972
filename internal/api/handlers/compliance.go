package handlers

import (
	"net/http"

	"governance-portal-backend/internal/auth"
	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComplianceHandler handles team statuses and compliance alert endpoints
type ComplianceHandler struct {
	guard    service.AuthorizationGuardInterface
	workflow service.StatusWorkflowEngineInterface
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(guard service.AuthorizationGuardInterface, workflow service.StatusWorkflowEngineInterface) *ComplianceHandler {
	return &ComplianceHandler{
		guard:    guard,
		workflow: workflow,
	}
}

// DefineDefaultsRequest represents the request to create a team's initial statuses
type DefineDefaultsRequest struct {
	Statuses []service.StatusInput `json:"statuses"`
}

// TransitionRequest represents the request to move an alert to another status
type TransitionRequest struct {
	StatusID uuid.UUID        `json:"status_id"`
	Comment  string           `json:"comment"`
	Severity *models.Severity `json:"severity,omitempty"`
}

// ListStatuses handles GET /teams/:slug/compliance-statuses
// @Summary List team statuses
// @Description List the compliance statuses of a team in display order
// @Tags compliance
// @Produce json
// @Param slug path string true "Team slug"
// @Success 200 {array} models.TeamComplianceStatus "Statuses"
// @Failure 403 {object} ErrorResponse "Not allowed to read statuses"
// @Security BearerAuth
// @Router /teams/{slug}/compliance-statuses [get]
func (h *ComplianceHandler) ListStatuses(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceComplianceStatus, models.ActionRead)
	if !ok {
		return
	}

	statuses, err := h.workflow.ListStatuses(c.Request.Context(), member.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// CreateStatus handles POST /teams/:slug/compliance-statuses
// @Summary Create a team status
// @Description Add a status to the team. Without an order it is placed last.
// @Tags compliance
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param status body service.StatusInput true "Status data"
// @Success 201 {object} models.TeamComplianceStatus "Created status"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 409 {object} ErrorResponse "Status code already exists in the team"
// @Security BearerAuth
// @Router /teams/{slug}/compliance-statuses [post]
func (h *ComplianceHandler) CreateStatus(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceComplianceStatus, models.ActionCreate)
	if !ok {
		return
	}
	var req service.StatusInput
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.workflow.CreateStatus(c.Request.Context(), member.TeamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

// DefineDefaults handles POST /teams/:slug/compliance-statuses/defaults
// @Summary Define initial statuses
// @Description Create the team's first set of statuses in one step. Fails if the team already has statuses.
// @Tags compliance
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param statuses body DefineDefaultsRequest true "Ordered statuses"
// @Success 201 {array} models.TeamComplianceStatus "Created statuses"
// @Failure 400 {object} ErrorResponse "Invalid statuses"
// @Failure 409 {object} ErrorResponse "Team already has statuses"
// @Security BearerAuth
// @Router /teams/{slug}/compliance-statuses/defaults [post]
func (h *ComplianceHandler) DefineDefaults(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceComplianceStatus, models.ActionCreate)
	if !ok {
		return
	}
	var req DefineDefaultsRequest
	if !bindJSON(c, &req) {
		return
	}

	statuses, err := h.workflow.DefineDefaults(c.Request.Context(), member.TeamID, req.Statuses)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, statuses)
}

// SetDefault handles PUT /teams/:slug/compliance-statuses/:id/default
// @Summary Set the default status
// @Description Make the status the team's default, clearing the previous one
// @Tags compliance
// @Produce json
// @Param slug path string true "Team slug"
// @Param id path string true "Status ID (UUID)"
// @Success 200 {object} models.TeamComplianceStatus "New default status"
// @Failure 404 {object} ErrorResponse "Status not found in the team"
// @Security BearerAuth
// @Router /teams/{slug}/compliance-statuses/{id}/default [put]
func (h *ComplianceHandler) SetDefault(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceComplianceStatus, models.ActionUpdate)
	if !ok {
		return
	}
	statusID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	status, err := h.workflow.SetDefault(c.Request.Context(), member.TeamID, statusID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// CreateAlert handles POST /teams/:slug/compliance-alerts
// @Summary Create a compliance alert
// @Description Create an alert in the team's default status
// @Tags compliance
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param alert body service.CreateAlertRequest true "Alert data"
// @Success 201 {object} models.ComplianceAlert "Created alert"
// @Failure 400 {object} ErrorResponse "Invalid alert"
// @Security BearerAuth
// @Router /teams/{slug}/compliance-alerts [post]
func (h *ComplianceHandler) CreateAlert(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceComplianceAlert, models.ActionCreate)
	if !ok {
		return
	}
	var req service.CreateAlertRequest
	if !bindJSON(c, &req) {
		return
	}

	alert, err := h.workflow.CreateAlert(c.Request.Context(), member.TeamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// teamAlert resolves the :id alert and hides alerts of other teams
func (h *ComplianceHandler) teamAlert(c *gin.Context, member *models.TeamMember) (*models.ComplianceAlert, bool) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return nil, false
	}
	alert, err := h.workflow.GetAlert(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if alert.TeamID != member.TeamID {
		respondError(c, apperrors.ErrComplianceAlertNotFound)
		return nil, false
	}
	return alert, true
}

// GetAlert handles GET /teams/:slug/compliance-alerts/:id
// @Summary Get a compliance alert
// @Description Get an alert with its status and full comment history
// @Tags compliance
// @Produce json
// @Param slug path string true "Team slug"
// @Param id path string true "Alert ID (UUID)"
// @Success 200 {object} models.ComplianceAlert "Alert"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Security BearerAuth
// @Router /teams/{slug}/compliance-alerts/{id} [get]
func (h *ComplianceHandler) GetAlert(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceComplianceAlert, models.ActionRead)
	if !ok {
		return
	}
	alert, ok := h.teamAlert(c, member)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, alert)
}

// TransitionAlert handles POST /teams/:slug/compliance-alerts/:id/transitions
// @Summary Change an alert's status
// @Description Move the alert to another status of the team and append a history entry
// @Tags compliance
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param id path string true "Alert ID (UUID)"
// @Param transition body TransitionRequest true "Target status and comment"
// @Success 200 {object} models.ComplianceAlert "Updated alert"
// @Failure 400 {object} ErrorResponse "Comment missing or invalid severity"
// @Failure 404 {object} ErrorResponse "Alert or status not found"
// @Security BearerAuth
// @Router /teams/{slug}/compliance-alerts/{id}/transitions [post]
func (h *ComplianceHandler) TransitionAlert(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceComplianceAlert, models.ActionUpdate)
	if !ok {
		return
	}
	alert, ok := h.teamAlert(c, member)
	if !ok {
		return
	}
	var req TransitionRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.StatusID == uuid.Nil {
		respondError(c, apperrors.NewValidationError("status_id", "status_id is required"))
		return
	}

	principal, _ := auth.GetPrincipal(c)
	updated, err := h.workflow.Transition(c.Request.Context(), alert.ID, req.StatusID, req.Comment, req.Severity, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
