package repository

import (
	"context"

	"governance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComplianceRepository handles database operations for team statuses and compliance alerts
type ComplianceRepository struct {
	db *gorm.DB
}

// NewComplianceRepository creates a new compliance repository
func NewComplianceRepository(db *gorm.DB) *ComplianceRepository {
	return &ComplianceRepository{db: db}
}

// ListStatuses retrieves the statuses of a team in display order
func (r *ComplianceRepository) ListStatuses(ctx context.Context, teamID uuid.UUID) ([]models.TeamComplianceStatus, error) {
	var statuses []models.TeamComplianceStatus
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("sort_order ASC").
		Order("code ASC").
		Find(&statuses).Error
	return statuses, err
}

// CountStatuses returns how many statuses a team has
func (r *ComplianceRepository) CountStatuses(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TeamComplianceStatus{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// MaxStatusOrder returns the highest sort order used by a team, or -1 when it has no statuses
func (r *ComplianceRepository) MaxStatusOrder(ctx context.Context, teamID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&models.TeamComplianceStatus{}).
		Where("team_id = ?", teamID).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// GetStatusByID retrieves a status by ID
func (r *ComplianceRepository) GetStatusByID(ctx context.Context, id uuid.UUID) (*models.TeamComplianceStatus, error) {
	var status models.TeamComplianceStatus
	err := r.db.WithContext(ctx).First(&status, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetStatusByCode retrieves a status by its normalized code within a team
func (r *ComplianceRepository) GetStatusByCode(ctx context.Context, teamID uuid.UUID, code string) (*models.TeamComplianceStatus, error) {
	var status models.TeamComplianceStatus
	err := r.db.WithContext(ctx).First(&status, "team_id = ? AND code = ?", teamID, code).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetDefaultStatus retrieves the default status of a team
func (r *ComplianceRepository) GetDefaultStatus(ctx context.Context, teamID uuid.UUID) (*models.TeamComplianceStatus, error) {
	var status models.TeamComplianceStatus
	err := r.db.WithContext(ctx).First(&status, "team_id = ? AND is_default = ?", teamID, true).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// CreateStatus creates a status
func (r *ComplianceRepository) CreateStatus(ctx context.Context, status *models.TeamComplianceStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// ClearDefaultStatus unsets the default flag on every status of a team
func (r *ComplianceRepository) ClearDefaultStatus(ctx context.Context, teamID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.TeamComplianceStatus{}).
		Where("team_id = ? AND is_default = ?", teamID, true).
		Update("is_default", false).Error
}

// MarkDefaultStatus sets the default flag on one status
func (r *ComplianceRepository) MarkDefaultStatus(ctx context.Context, statusID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.TeamComplianceStatus{}).
		Where("id = ?", statusID).
		Update("is_default", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateAlert creates a compliance alert
func (r *ComplianceRepository) CreateAlert(ctx context.Context, alert *models.ComplianceAlert) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(alert).Error
}

// GetAlertByID retrieves a compliance alert with its current status
func (r *ComplianceRepository) GetAlertByID(ctx context.Context, id uuid.UUID) (*models.ComplianceAlert, error) {
	var alert models.ComplianceAlert
	err := r.db.WithContext(ctx).Preload("Status").First(&alert, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// LockAlertByID reads the latest committed alert with FOR UPDATE so that transitions
// on one alert append to its history one at a time
func (r *ComplianceRepository) LockAlertByID(ctx context.Context, id uuid.UUID) (*models.ComplianceAlert, error) {
	var alert models.ComplianceAlert
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&alert, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// UpdateAlert persists the status, severity and comment history of an alert
func (r *ComplianceRepository) UpdateAlert(ctx context.Context, alert *models.ComplianceAlert) error {
	return r.db.WithContext(ctx).
		Model(alert).
		Omit(clause.Associations).
		Select("status_id", "severity", "comments", "updated_at").
		Updates(alert).Error
}
