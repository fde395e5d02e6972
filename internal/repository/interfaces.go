package repository

import (
	"context"
	"time"

	"governance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamRepositoryInterface defines the directory lookups for teams, users, members and locations
type TeamRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetBySlug(ctx context.Context, slug string) (*models.Team, error)
	LockByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetMember(ctx context.Context, teamID, userID uuid.UUID) (*models.TeamMember, error)
	GetLocationByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
}

// LicenseRepositoryInterface defines the interface for license catalog, purchase and seat operations
type LicenseRepositoryInterface interface {
	CreateLicense(ctx context.Context, license *models.License) error
	GetLicenseByID(ctx context.Context, id uuid.UUID) (*models.License, error)
	CreatePurchase(ctx context.Context, purchase *models.PurchasedLicense) error
	GetPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchasedLicense, error)
	LockPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchasedLicense, error)
	UpdatePurchase(ctx context.Context, purchase *models.PurchasedLicense) error
	ListPurchasesByTeam(ctx context.Context, teamID uuid.UUID) ([]models.PurchasedLicense, error)
	CountActiveUserSeats(ctx context.Context, purchaseID uuid.UUID, now time.Time) (int64, error)
	CountActiveLocationSeats(ctx context.Context, purchaseID uuid.UUID, now time.Time) (int64, error)
	CreateUserSeat(ctx context.Context, seat *models.UserLicense) error
	CreateLocationSeat(ctx context.Context, seat *models.LocationLicense) error
	DeleteUserSeats(ctx context.Context, purchaseID, userID uuid.UUID) (int64, error)
	DeactivateLocationSeats(ctx context.Context, purchaseID, locationID uuid.UUID) (int64, error)
}

// ComplianceRepositoryInterface defines the interface for team statuses and governed records
type ComplianceRepositoryInterface interface {
	ListStatuses(ctx context.Context, teamID uuid.UUID) ([]models.TeamComplianceStatus, error)
	CountStatuses(ctx context.Context, teamID uuid.UUID) (int64, error)
	MaxStatusOrder(ctx context.Context, teamID uuid.UUID) (int, error)
	GetStatusByID(ctx context.Context, id uuid.UUID) (*models.TeamComplianceStatus, error)
	GetStatusByCode(ctx context.Context, teamID uuid.UUID, code string) (*models.TeamComplianceStatus, error)
	GetDefaultStatus(ctx context.Context, teamID uuid.UUID) (*models.TeamComplianceStatus, error)
	CreateStatus(ctx context.Context, status *models.TeamComplianceStatus) error
	ClearDefaultStatus(ctx context.Context, teamID uuid.UUID) error
	MarkDefaultStatus(ctx context.Context, statusID uuid.UUID) error
	CreateAlert(ctx context.Context, alert *models.ComplianceAlert) error
	GetAlertByID(ctx context.Context, id uuid.UUID) (*models.ComplianceAlert, error)
	LockAlertByID(ctx context.Context, id uuid.UUID) (*models.ComplianceAlert, error)
	UpdateAlert(ctx context.Context, alert *models.ComplianceAlert) error
}

// Store is the directory store handed to the governance core. Transaction runs fn
// against a store bound to one database transaction; returning an error rolls back
// every write fn made.
type Store interface {
	Teams() TeamRepositoryInterface
	Licenses() LicenseRepositoryInterface
	Compliance() ComplianceRepositoryInterface
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
