package handlers

import (
	"net/http"

	"governance-portal-backend/internal/auth"
	"governance-portal-backend/internal/database/models"
	"governance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler exposes the tenant policy and the caller's permissions for a team
type TenantHandler struct {
	guard    service.AuthorizationGuardInterface
	policies service.TenantPolicyResolverInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(guard service.AuthorizationGuardInterface, policies service.TenantPolicyResolverInterface) *TenantHandler {
	return &TenantHandler{
		guard:    guard,
		policies: policies,
	}
}

// GetPolicy handles GET /teams/:slug/policy
// @Summary Get tenant policy
// @Description Get the tenant type, enabled features and vocabulary of a team
// @Tags tenants
// @Produce json
// @Param slug path string true "Team slug"
// @Success 200 {object} service.TenantPolicy "Resolved tenant policy"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not allowed to read the team"
// @Failure 503 {object} ErrorResponse "Directory store unavailable"
// @Security BearerAuth
// @Router /teams/{slug}/policy [get]
func (h *TenantHandler) GetPolicy(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceTeam, models.ActionRead)
	if !ok {
		return
	}

	policy, err := h.policies.Resolve(c.Request.Context(), member.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

// GetPermissions handles GET /teams/:slug/permissions
// @Summary Get my permissions
// @Description Get the full resource by action matrix the caller's role grants in a team
// @Tags tenants
// @Produce json
// @Param slug path string true "Team slug"
// @Success 200 {object} service.PermissionsResponse "Permission matrix"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not a member of the team"
// @Security BearerAuth
// @Router /teams/{slug}/permissions [get]
func (h *TenantHandler) GetPermissions(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)
	permissions, err := h.guard.Permissions(c.Request.Context(), principal, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}
