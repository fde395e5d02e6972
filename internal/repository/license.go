package repository

import (
	"context"
	"time"

	"governance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LicenseRepository handles database operations for licenses, purchases and seats
type LicenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository creates a new license repository
func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{db: db}
}

// CreateLicense creates a catalog entry
func (r *LicenseRepository) CreateLicense(ctx context.Context, license *models.License) error {
	return r.db.WithContext(ctx).Create(license).Error
}

// GetLicenseByID retrieves a catalog entry by ID
func (r *LicenseRepository) GetLicenseByID(ctx context.Context, id uuid.UUID) (*models.License, error) {
	var license models.License
	err := r.db.WithContext(ctx).First(&license, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &license, nil
}

// CreatePurchase creates a purchased license
func (r *LicenseRepository) CreatePurchase(ctx context.Context, purchase *models.PurchasedLicense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(purchase).Error
}

// GetPurchaseByID retrieves a purchased license with its catalog entry
func (r *LicenseRepository) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchasedLicense, error) {
	var purchase models.PurchasedLicense
	err := r.db.WithContext(ctx).Preload("License").First(&purchase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// LockPurchaseByID reads a purchased license with FOR UPDATE and then loads its catalog entry.
// Seat assignments hold this lock across count-then-insert.
func (r *LicenseRepository) LockPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchasedLicense, error) {
	var purchase models.PurchasedLicense
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&purchase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	license, err := r.GetLicenseByID(ctx, purchase.LicenseID)
	if err != nil {
		return nil, err
	}
	purchase.License = license
	return &purchase, nil
}

// UpdatePurchase persists the expiry and activity of a purchased license
func (r *LicenseRepository) UpdatePurchase(ctx context.Context, purchase *models.PurchasedLicense) error {
	return r.db.WithContext(ctx).
		Model(purchase).
		Omit(clause.Associations).
		Select("expires_at", "is_active", "updated_at").
		Updates(purchase).Error
}

// ListPurchasesByTeam retrieves every purchase of a team, oldest first
func (r *LicenseRepository) ListPurchasesByTeam(ctx context.Context, teamID uuid.UUID) ([]models.PurchasedLicense, error) {
	var purchases []models.PurchasedLicense
	err := r.db.WithContext(ctx).
		Preload("License").
		Where("team_id = ?", teamID).
		Order("purchased_at ASC").
		Find(&purchases).Error
	return purchases, err
}

// CountActiveUserSeats counts user seats that have not expired at now
func (r *LicenseRepository) CountActiveUserSeats(ctx context.Context, purchaseID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserLicense{}).
		Where("purchased_license_id = ? AND (expires_at IS NULL OR expires_at > ?)", purchaseID, now).
		Count(&count).Error
	return count, err
}

// CountActiveLocationSeats counts location seats that are active and have not expired at now
func (r *LicenseRepository) CountActiveLocationSeats(ctx context.Context, purchaseID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LocationLicense{}).
		Where("purchased_license_id = ? AND is_active = ? AND (expires_at IS NULL OR expires_at > ?)", purchaseID, true, now).
		Count(&count).Error
	return count, err
}

// CreateUserSeat creates a user seat
func (r *LicenseRepository) CreateUserSeat(ctx context.Context, seat *models.UserLicense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(seat).Error
}

// CreateLocationSeat creates a location seat
func (r *LicenseRepository) CreateLocationSeat(ctx context.Context, seat *models.LocationLicense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(seat).Error
}

// DeleteUserSeats removes every seat of a user on a purchase and returns how many were removed
func (r *LicenseRepository) DeleteUserSeats(ctx context.Context, purchaseID, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("purchased_license_id = ? AND user_id = ?", purchaseID, userID).
		Delete(&models.UserLicense{})
	return res.RowsAffected, res.Error
}

// DeactivateLocationSeats flags every active seat of a location on a purchase as inactive
func (r *LicenseRepository) DeactivateLocationSeats(ctx context.Context, purchaseID, locationID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.LocationLicense{}).
		Where("purchased_license_id = ? AND location_id = ? AND is_active = ?", purchaseID, locationID, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
