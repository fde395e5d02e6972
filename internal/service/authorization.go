package service

import (
	"context"
	"fmt"

	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/logger"
	"governance-portal-backend/internal/metrics"
	"governance-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// AuthorizationGuard decides whether a principal may act on a resource within a team.
// A single instance is shared by every handler.
type AuthorizationGuard struct {
	store   repository.Store
	metrics *metrics.Metrics
}

// NewAuthorizationGuard creates a new guard
func NewAuthorizationGuard(store repository.Store, m *metrics.Metrics) *AuthorizationGuard {
	return &AuthorizationGuard{store: store, metrics: m}
}

// PermissionsResponse is the permission matrix of the acting member
type PermissionsResponse struct {
	TeamID      uuid.UUID          `json:"team_id"`
	TeamSlug    string             `json:"team_slug"`
	RoleID      uuid.UUID          `json:"role_id"`
	RoleName    string             `json:"role_name"`
	Permissions models.Permissions `json:"permissions"`
}

// Check returns the acting team member when its role grants action on resource
func (g *AuthorizationGuard) Check(ctx context.Context, principal *Principal, teamSlug string, resource models.Resource, action models.Action) (*models.TeamMember, error) {
	member, err := g.check(ctx, principal, teamSlug, resource, action)
	g.metrics.AuthzDecision(string(resource), string(action), decisionOutcome(err))
	if err != nil && !apperrors.IsUnavailable(err) {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"team":     teamSlug,
			"resource": resource,
			"action":   action,
		}).Debugf("Access denied: %v", err)
	}
	return member, err
}

func (g *AuthorizationGuard) check(ctx context.Context, principal *Principal, teamSlug string, resource models.Resource, action models.Action) (*models.TeamMember, error) {
	member, err := g.resolveMember(ctx, principal, teamSlug)
	if err != nil {
		return nil, err
	}

	if !resource.IsValid() {
		return nil, apperrors.NewValidationError("resource", fmt.Sprintf("unknown resource %q", resource))
	}
	if !action.IsValid() {
		return nil, apperrors.NewValidationError("action", fmt.Sprintf("unknown action %q", action))
	}

	if !member.Role.Permissions.Allows(resource, action) {
		return nil, apperrors.ErrPermissionDenied
	}
	return member, nil
}

// Permissions returns the full resource by action matrix granted to the acting member.
// Resources the role has no grant on are listed with an empty action set.
// A membership whose role belongs to another team is denied.
func (g *AuthorizationGuard) Permissions(ctx context.Context, principal *Principal, teamSlug string) (*PermissionsResponse, error) {
	member, err := g.resolveMember(ctx, principal, teamSlug)
	if err != nil {
		return nil, err
	}

	matrix := models.Permissions{}
	for _, resource := range models.AllResources() {
		matrix[resource] = []models.Action{}
	}
	response := &PermissionsResponse{
		TeamID:      member.TeamID,
		TeamSlug:    teamSlug,
		RoleID:      member.RoleID,
		RoleName:    member.Role.Name,
		Permissions: matrix,
	}
	for _, resource := range models.AllResources() {
		for _, action := range models.AllActions() {
			if member.Role.Permissions.Allows(resource, action) {
				matrix[resource] = append(matrix[resource], action)
			}
		}
	}
	return response, nil
}

// resolveMember authenticates the principal against the directory and finds its membership
func (g *AuthorizationGuard) resolveMember(ctx context.Context, principal *Principal, teamSlug string) (*models.TeamMember, error) {
	if principal == nil || principal.UserID == uuid.Nil {
		return nil, apperrors.ErrNoSession
	}

	user, err := g.store.Teams().GetUserByID(ctx, principal.UserID)
	if err != nil {
		return nil, storeError("load principal", err, apperrors.ErrNoSession)
	}
	if !user.IsActive {
		return nil, apperrors.ErrPrincipalInactive
	}

	team, err := g.store.Teams().GetBySlug(ctx, teamSlug)
	if err != nil {
		return nil, storeError("load team", err, apperrors.ErrTeamUnavailable)
	}

	member, err := g.store.Teams().GetMember(ctx, team.ID, user.ID)
	if err != nil {
		return nil, storeError("load team member", err, apperrors.ErrNotTeamMember)
	}
	// Roles are scoped to their team; a membership pointing elsewhere grants nothing
	if member.Role == nil || member.Role.TeamID != member.TeamID {
		return nil, apperrors.ErrPermissionDenied
	}
	return member, nil
}

func decisionOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAllowed
	case apperrors.IsAuthentication(err):
		return metrics.OutcomeUnauthenticated
	case apperrors.IsAuthorization(err):
		return metrics.OutcomeDenied
	case apperrors.IsValidation(err):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
