package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/logger"
	"governance-portal-backend/internal/metrics"
	"governance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusWorkflowEngine manages a team's custom statuses and the lifecycle of governed records
type StatusWorkflowEngine struct {
	store     repository.Store
	validator *validator.Validate
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewStatusWorkflowEngine creates a new workflow engine
func NewStatusWorkflowEngine(store repository.Store, validator *validator.Validate, m *metrics.Metrics) *StatusWorkflowEngine {
	return &StatusWorkflowEngine{
		store:     store,
		validator: validator,
		metrics:   m,
		now:       time.Now,
	}
}

// StatusInput describes one status to create
type StatusInput struct {
	Code      string `json:"code" validate:"required,max=100"`
	Name      string `json:"name" validate:"max=200"`
	Order     *int   `json:"order,omitempty" validate:"omitempty,gte=0"`
	IsDefault bool   `json:"is_default"`
}

// CreateAlertRequest represents the request to create a governed compliance alert
type CreateAlertRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description"`
	LocationID  *uuid.UUID       `json:"location_id,omitempty"`
	Severity    *models.Severity `json:"severity,omitempty"`
}

// NormalizeStatusCode trims, upper-cases and joins whitespace runs with underscores
func NormalizeStatusCode(code string) string {
	return strings.Join(strings.Fields(strings.ToUpper(code)), "_")
}

func (s *StatusWorkflowEngine) newStatus(teamID uuid.UUID, in *StatusInput, code string, order int) *models.TeamComplianceStatus {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = strings.TrimSpace(in.Code)
	}
	if in.Order != nil {
		order = *in.Order
	}
	return &models.TeamComplianceStatus{
		TeamID:    teamID,
		Code:      code,
		Name:      name,
		Order:     order,
		IsDefault: in.IsDefault,
	}
}

func (s *StatusWorkflowEngine) validateInput(in *StatusInput) (string, error) {
	if err := s.validator.Struct(in); err != nil {
		return "", validationError(err)
	}
	code := NormalizeStatusCode(in.Code)
	if code == "" {
		return "", apperrors.NewValidationError("code", "status code is required")
	}
	return code, nil
}

// DefineDefaults creates a team's initial status set in one step. It fails without
// writing anything when the team already has statuses. A set without a default
// leaves the team without one.
func (s *StatusWorkflowEngine) DefineDefaults(ctx context.Context, teamID uuid.UUID, statuses []StatusInput) ([]models.TeamComplianceStatus, error) {
	var created []models.TeamComplianceStatus

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Teams().LockByID(ctx, teamID); err != nil {
			return storeError("define default statuses", err, apperrors.ErrTeamNotFound)
		}

		if len(statuses) == 0 {
			return apperrors.NewValidationError("statuses", "at least one status is required")
		}

		codes := make([]string, len(statuses))
		seen := make(map[string]bool, len(statuses))
		defaults := 0
		for i := range statuses {
			code, err := s.validateInput(&statuses[i])
			if err != nil {
				return err
			}
			if statuses[i].IsDefault {
				defaults++
			}
			codes[i] = code
		}
		if defaults > 1 {
			return apperrors.NewValidationError("is_default", "only one status can be the default")
		}
		for _, code := range codes {
			if seen[code] {
				return apperrors.NewConflictError("compliance status", "code", code, "duplicate status code")
			}
			seen[code] = true
		}

		existing, err := tx.Compliance().CountStatuses(ctx, teamID)
		if err != nil {
			return storeError("define default statuses", err, nil)
		}
		if existing > 0 {
			return apperrors.ErrStatusesAlreadyDefined
		}

		created = make([]models.TeamComplianceStatus, 0, len(statuses))
		for i := range statuses {
			status := s.newStatus(teamID, &statuses[i], codes[i], i)
			if err := tx.Compliance().CreateStatus(ctx, status); err != nil {
				return storeError("define default statuses", err, nil)
			}
			created = append(created, *status)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("define default statuses", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":  teamID,
		"statuses": len(created),
	}).Info("Default statuses defined")
	return created, nil
}

// CreateStatus adds one status to a team. A new default replaces the previous one.
// The team row is locked so concurrent creates of the same team apply one at a time.
func (s *StatusWorkflowEngine) CreateStatus(ctx context.Context, teamID uuid.UUID, in *StatusInput) (*models.TeamComplianceStatus, error) {
	code, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}

	var status *models.TeamComplianceStatus
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Teams().LockByID(ctx, teamID); err != nil {
			return storeError("create status", err, apperrors.ErrTeamNotFound)
		}

		_, err := tx.Compliance().GetStatusByCode(ctx, teamID, code)
		switch {
		case err == nil:
			return apperrors.NewConflictError("compliance status", "code", code, "status code already exists")
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return storeError("create status", err, nil)
		}

		maxOrder, err := tx.Compliance().MaxStatusOrder(ctx, teamID)
		if err != nil {
			return storeError("create status", err, nil)
		}

		if in.IsDefault {
			if err := tx.Compliance().ClearDefaultStatus(ctx, teamID); err != nil {
				return storeError("create status", err, nil)
			}
		}

		status = s.newStatus(teamID, in, code, maxOrder+1)
		if err := tx.Compliance().CreateStatus(ctx, status); err != nil {
			return storeError("create status", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create status", err, nil)
	}
	return status, nil
}

// ListStatuses returns a team's statuses in display order
func (s *StatusWorkflowEngine) ListStatuses(ctx context.Context, teamID uuid.UUID) ([]models.TeamComplianceStatus, error) {
	if _, err := s.store.Teams().GetByID(ctx, teamID); err != nil {
		return nil, storeError("list statuses", err, apperrors.ErrTeamNotFound)
	}
	statuses, err := s.store.Compliance().ListStatuses(ctx, teamID)
	if err != nil {
		return nil, storeError("list statuses", err, nil)
	}
	return statuses, nil
}

// SetDefault makes statusID the only default status of the team
func (s *StatusWorkflowEngine) SetDefault(ctx context.Context, teamID, statusID uuid.UUID) (*models.TeamComplianceStatus, error) {
	var status *models.TeamComplianceStatus
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Teams().LockByID(ctx, teamID); err != nil {
			return storeError("set default status", err, apperrors.ErrTeamNotFound)
		}

		found, err := tx.Compliance().GetStatusByID(ctx, statusID)
		if err != nil {
			return storeError("set default status", err, apperrors.ErrComplianceStatusNotFound)
		}
		if found.TeamID != teamID {
			return apperrors.ErrComplianceStatusNotFound
		}

		if err := tx.Compliance().ClearDefaultStatus(ctx, teamID); err != nil {
			return storeError("set default status", err, nil)
		}
		if err := tx.Compliance().MarkDefaultStatus(ctx, statusID); err != nil {
			return storeError("set default status", err, apperrors.ErrComplianceStatusNotFound)
		}
		found.IsDefault = true
		status = found
		return nil
	})
	if err != nil {
		return nil, storeError("set default status", err, nil)
	}
	return status, nil
}

// CreateAlert creates a governed record in the team's default status, or without a
// status when the team has no default
func (s *StatusWorkflowEngine) CreateAlert(ctx context.Context, teamID uuid.UUID, req *CreateAlertRequest) (*models.ComplianceAlert, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Severity != nil && !req.Severity.IsValid() {
		return nil, apperrors.NewValidationError("severity", fmt.Sprintf("invalid severity %q", *req.Severity))
	}

	if _, err := s.store.Teams().GetByID(ctx, teamID); err != nil {
		return nil, storeError("create alert", err, apperrors.ErrTeamNotFound)
	}

	if req.LocationID != nil {
		location, err := s.store.Teams().GetLocationByID(ctx, *req.LocationID)
		if err != nil {
			return nil, storeError("create alert", err, apperrors.ErrLocationNotFound)
		}
		if location.TeamID != teamID {
			return nil, apperrors.ErrLocationNotFound
		}
	}

	alert := &models.ComplianceAlert{
		TeamID:      teamID,
		LocationID:  req.LocationID,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Comments:    models.CommentHistory{},
	}

	status, err := s.store.Compliance().GetDefaultStatus(ctx, teamID)
	switch {
	case err == nil:
		alert.StatusID = &status.ID
		alert.Status = status
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storeError("create alert", err, nil)
	}

	if err := s.store.Compliance().CreateAlert(ctx, alert); err != nil {
		return nil, storeError("create alert", err, nil)
	}
	return alert, nil
}

// GetAlert returns a governed record with its current status
func (s *StatusWorkflowEngine) GetAlert(ctx context.Context, alertID uuid.UUID) (*models.ComplianceAlert, error) {
	alert, err := s.store.Compliance().GetAlertByID(ctx, alertID)
	if err != nil {
		return nil, storeError("get alert", err, apperrors.ErrComplianceAlertNotFound)
	}
	return alert, nil
}

// Transition moves a governed record to newStatusID and appends one audit entry to its history.
// The record row is locked and re-read first, so concurrent transitions never lose an entry.
func (s *StatusWorkflowEngine) Transition(ctx context.Context, recordID, newStatusID uuid.UUID, comment string, severity *models.Severity, actor *Principal) (*models.ComplianceAlert, error) {
	alert, err := s.transition(ctx, recordID, newStatusID, comment, severity, actor)
	s.metrics.StatusTransition(transitionOutcome(err))
	return alert, err
}

func (s *StatusWorkflowEngine) transition(ctx context.Context, recordID, newStatusID uuid.UUID, comment string, severity *models.Severity, actor *Principal) (*models.ComplianceAlert, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, apperrors.NewValidationError("comment", "comment is required")
	}
	if severity != nil && !severity.IsValid() {
		return nil, apperrors.NewValidationError("severity", fmt.Sprintf("invalid severity %q", *severity))
	}
	if actor == nil {
		return nil, apperrors.ErrNoSession
	}

	var updated *models.ComplianceAlert
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		alert, err := tx.Compliance().LockAlertByID(ctx, recordID)
		if err != nil {
			return storeError("transition alert", err, apperrors.ErrComplianceAlertNotFound)
		}

		status, err := tx.Compliance().GetStatusByID(ctx, newStatusID)
		if err != nil {
			return storeError("transition alert", err, apperrors.ErrComplianceStatusNotFound)
		}
		if status.TeamID != alert.TeamID {
			return apperrors.ErrComplianceStatusNotFound
		}

		entry := models.CommentEntry{
			Text:       comment,
			Timestamp:  s.now().UTC().Format(time.RFC3339Nano),
			User:       actor.Name(),
			StatusFrom: alert.StatusRef(),
			StatusTo:   status.ID.String(),
		}
		history := make(models.CommentHistory, 0, len(alert.Comments)+1)
		history = append(history, alert.Comments...)
		alert.Comments = append(history, entry)
		alert.StatusID = &status.ID
		if severity != nil {
			alert.Severity = severity
		}

		if err := tx.Compliance().UpdateAlert(ctx, alert); err != nil {
			return storeError("transition alert", err, nil)
		}
		alert.Status = status
		updated = alert
		return nil
	})
	if err != nil {
		return nil, storeError("transition alert", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"alert_id":  recordID,
		"status_id": newStatusID,
	}).Info("Compliance alert transitioned")
	return updated, nil
}

func transitionOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case apperrors.IsValidation(err):
		return metrics.OutcomeInvalid
	case apperrors.IsNotFound(err), apperrors.IsAuthentication(err):
		return metrics.OutcomeDenied
	default:
		return metrics.OutcomeError
	}
}
