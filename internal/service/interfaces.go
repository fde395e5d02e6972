package service

import (
	"context"
	"time"

	"governance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantPolicyResolverInterface defines the interface for tenant policy resolution
type TenantPolicyResolverInterface interface {
	Resolve(ctx context.Context, teamID uuid.UUID) (*TenantPolicy, error)
}

// AuthorizationGuardInterface defines the interface for team-scoped access decisions
type AuthorizationGuardInterface interface {
	Check(ctx context.Context, principal *Principal, teamSlug string, resource models.Resource, action models.Action) (*models.TeamMember, error)
	Permissions(ctx context.Context, principal *Principal, teamSlug string) (*PermissionsResponse, error)
}

// EntitlementManagerInterface defines the interface for license purchase and seat allocation
type EntitlementManagerInterface interface {
	CreateLicense(ctx context.Context, issuerTeamID uuid.UUID, req *CreateLicenseRequest) (*models.License, error)
	Purchase(ctx context.Context, teamID uuid.UUID, licenseIDs []uuid.UUID) ([]models.PurchasedLicense, error)
	Renew(ctx context.Context, purchasedLicenseID uuid.UUID) (*models.PurchasedLicense, error)
	GetPurchasedLicense(ctx context.Context, purchasedLicenseID uuid.UUID) (*PurchasedLicenseResponse, error)
	ListTeamLicenses(ctx context.Context, teamID uuid.UUID) ([]PurchasedLicenseResponse, error)
	AssignToUser(ctx context.Context, purchasedLicenseID, userID uuid.UUID, expiresAt *time.Time) (*models.UserLicense, error)
	AssignToLocation(ctx context.Context, purchasedLicenseID, locationID uuid.UUID, expiresAt *time.Time) (*models.LocationLicense, error)
	RevokeUser(ctx context.Context, purchasedLicenseID, userID uuid.UUID) error
	RevokeLocation(ctx context.Context, purchasedLicenseID, locationID uuid.UUID) error
	IsEntitled(ctx context.Context, teamID uuid.UUID, featureKey string) bool
}

// StatusWorkflowEngineInterface defines the interface for team statuses and governed record transitions
type StatusWorkflowEngineInterface interface {
	DefineDefaults(ctx context.Context, teamID uuid.UUID, statuses []StatusInput) ([]models.TeamComplianceStatus, error)
	CreateStatus(ctx context.Context, teamID uuid.UUID, status *StatusInput) (*models.TeamComplianceStatus, error)
	ListStatuses(ctx context.Context, teamID uuid.UUID) ([]models.TeamComplianceStatus, error)
	SetDefault(ctx context.Context, teamID, statusID uuid.UUID) (*models.TeamComplianceStatus, error)
	CreateAlert(ctx context.Context, teamID uuid.UUID, req *CreateAlertRequest) (*models.ComplianceAlert, error)
	GetAlert(ctx context.Context, alertID uuid.UUID) (*models.ComplianceAlert, error)
	Transition(ctx context.Context, recordID, newStatusID uuid.UUID, comment string, severity *models.Severity, actor *Principal) (*models.ComplianceAlert, error)
}
