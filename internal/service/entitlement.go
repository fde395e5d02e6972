package service

import (
	"context"
	"time"

	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/logger"
	"governance-portal-backend/internal/metrics"
	"governance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EntitlementManager handles license purchases, seat allocation and feature entitlement
type EntitlementManager struct {
	store     repository.Store
	validator *validator.Validate
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewEntitlementManager creates a new entitlement manager
func NewEntitlementManager(store repository.Store, validator *validator.Validate, m *metrics.Metrics) *EntitlementManager {
	return &EntitlementManager{
		store:     store,
		validator: validator,
		metrics:   m,
		now:       time.Now,
	}
}

// CreateLicenseRequest represents the request to add a license to the issuer's catalog
type CreateLicenseRequest struct {
	Name          string               `json:"name" validate:"required,max=200"`
	Price         float64              `json:"price" validate:"gte=0"`
	RenewalPeriod models.RenewalPeriod `json:"renewal_period" validate:"omitempty,oneof=MONTHLY QUARTERLY YEARLY LIFETIME"`
	MaxUsers      *int                 `json:"max_users,omitempty" validate:"omitempty,gte=1"`
	MaxLocations  *int                 `json:"max_locations,omitempty" validate:"omitempty,gte=1"`
	Status        models.LicenseStatus `json:"status" validate:"omitempty,oneof=PENDING ACTIVE EXPIRED SUSPENDED"`
	Features      []string             `json:"features" validate:"dive,required,max=100"`
}

// PurchasedLicenseResponse is a purchase together with its seat usage at read time
type PurchasedLicenseResponse struct {
	models.PurchasedLicense
	IsCurrent           bool  `json:"is_current"`
	ActiveUserSeats     int64 `json:"active_user_seats"`
	ActiveLocationSeats int64 `json:"active_location_seats"`
}

// expiryFor returns the end of one renewal period starting at from, or nil when the period never ends
func expiryFor(period models.RenewalPeriod, from time.Time) *time.Time {
	var expires time.Time
	switch period {
	case models.RenewalPeriodMonthly:
		expires = from.AddDate(0, 1, 0)
	case models.RenewalPeriodQuarterly:
		expires = from.AddDate(0, 3, 0)
	case models.RenewalPeriodYearly:
		expires = from.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &expires
}

// CreateLicense adds a license to the catalog of the issuing team
func (s *EntitlementManager) CreateLicense(ctx context.Context, issuerTeamID uuid.UUID, req *CreateLicenseRequest) (*models.License, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.store.Teams().GetByID(ctx, issuerTeamID); err != nil {
		return nil, storeError("create license", err, apperrors.ErrTeamNotFound)
	}

	license := &models.License{
		IssuerTeamID:  issuerTeamID,
		Name:          req.Name,
		Price:         req.Price,
		RenewalPeriod: req.RenewalPeriod,
		MaxUsers:      req.MaxUsers,
		MaxLocations:  req.MaxLocations,
		Status:        req.Status,
		Features:      models.FeatureList(req.Features),
	}
	if license.RenewalPeriod == "" {
		license.RenewalPeriod = models.RenewalPeriodYearly
	}
	if license.Status == "" {
		license.Status = models.LicenseStatusPending
	}
	if license.Features == nil {
		license.Features = models.FeatureList{}
	}

	if err := s.store.Licenses().CreateLicense(ctx, license); err != nil {
		return nil, storeError("create license", err, nil)
	}
	return license, nil
}

// Purchase records one purchased license per id for the team, all or nothing.
// Repeated ids produce repeated purchases.
func (s *EntitlementManager) Purchase(ctx context.Context, teamID uuid.UUID, licenseIDs []uuid.UUID) ([]models.PurchasedLicense, error) {
	if len(licenseIDs) == 0 {
		return nil, apperrors.NewValidationError("license_ids", "at least one license is required")
	}

	now := s.now().UTC()
	purchases := make([]models.PurchasedLicense, 0, len(licenseIDs))

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Teams().GetByID(ctx, teamID); err != nil {
			return storeError("purchase licenses", err, apperrors.ErrTeamNotFound)
		}

		for _, licenseID := range licenseIDs {
			license, err := tx.Licenses().GetLicenseByID(ctx, licenseID)
			if err != nil {
				return storeError("purchase licenses", err, apperrors.ErrLicenseNotFound)
			}

			purchase := &models.PurchasedLicense{
				TeamID:      teamID,
				LicenseID:   licenseID,
				PurchasedAt: now,
				ExpiresAt:   expiryFor(license.RenewalPeriod, now),
				IsActive:    true,
			}
			if err := tx.Licenses().CreatePurchase(ctx, purchase); err != nil {
				return storeError("purchase licenses", err, nil)
			}
			purchase.License = license
			purchases = append(purchases, *purchase)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("purchase licenses", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":  teamID,
		"licenses": len(purchases),
	}).Info("Licenses purchased")
	return purchases, nil
}

// Renew extends a purchase by one renewal period from the later of now and its current expiry.
// Purchases of lifetime licenses are returned unchanged.
func (s *EntitlementManager) Renew(ctx context.Context, purchasedLicenseID uuid.UUID) (*models.PurchasedLicense, error) {
	var renewed *models.PurchasedLicense

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		purchase, err := tx.Licenses().LockPurchaseByID(ctx, purchasedLicenseID)
		if err != nil {
			return storeError("renew license", err, apperrors.ErrPurchasedLicenseNotFound)
		}
		renewed = purchase

		if purchase.License == nil {
			return nil
		}
		from := s.now().UTC()
		if purchase.ExpiresAt != nil && purchase.ExpiresAt.After(from) {
			from = *purchase.ExpiresAt
		}
		expires := expiryFor(purchase.License.RenewalPeriod, from)
		if expires == nil {
			return nil
		}

		purchase.ExpiresAt = expires
		purchase.IsActive = true
		if err := tx.Licenses().UpdatePurchase(ctx, purchase); err != nil {
			return storeError("renew license", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("renew license", err, nil)
	}
	return renewed, nil
}

// GetPurchasedLicense returns a purchase with its active seat counts
func (s *EntitlementManager) GetPurchasedLicense(ctx context.Context, purchasedLicenseID uuid.UUID) (*PurchasedLicenseResponse, error) {
	purchase, err := s.store.Licenses().GetPurchaseByID(ctx, purchasedLicenseID)
	if err != nil {
		return nil, storeError("get purchased license", err, apperrors.ErrPurchasedLicenseNotFound)
	}
	return s.withSeatCounts(ctx, purchase, s.now())
}

// ListTeamLicenses returns every purchase of a team with its active seat counts
func (s *EntitlementManager) ListTeamLicenses(ctx context.Context, teamID uuid.UUID) ([]PurchasedLicenseResponse, error) {
	if _, err := s.store.Teams().GetByID(ctx, teamID); err != nil {
		return nil, storeError("list team licenses", err, apperrors.ErrTeamNotFound)
	}

	purchases, err := s.store.Licenses().ListPurchasesByTeam(ctx, teamID)
	if err != nil {
		return nil, storeError("list team licenses", err, nil)
	}

	now := s.now()
	responses := make([]PurchasedLicenseResponse, 0, len(purchases))
	for i := range purchases {
		response, err := s.withSeatCounts(ctx, &purchases[i], now)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func (s *EntitlementManager) withSeatCounts(ctx context.Context, purchase *models.PurchasedLicense, now time.Time) (*PurchasedLicenseResponse, error) {
	users, err := s.store.Licenses().CountActiveUserSeats(ctx, purchase.ID, now)
	if err != nil {
		return nil, storeError("count user seats", err, nil)
	}
	locations, err := s.store.Licenses().CountActiveLocationSeats(ctx, purchase.ID, now)
	if err != nil {
		return nil, storeError("count location seats", err, nil)
	}
	return &PurchasedLicenseResponse{
		PurchasedLicense:    *purchase,
		IsCurrent:           purchase.IsCurrentAt(now),
		ActiveUserSeats:     users,
		ActiveLocationSeats: locations,
	}, nil
}

// AssignToUser grants a seat of the purchase to a member of the purchasing team.
// The purchase row stays locked from the seat count to the insert, so concurrent
// assignments never exceed the license's user cap.
func (s *EntitlementManager) AssignToUser(ctx context.Context, purchasedLicenseID, userID uuid.UUID, expiresAt *time.Time) (*models.UserLicense, error) {
	seat, err := s.assignToUser(ctx, purchasedLicenseID, userID, expiresAt)
	s.metrics.SeatAssignment("user", seatOutcome(err))
	return seat, err
}

func (s *EntitlementManager) assignToUser(ctx context.Context, purchasedLicenseID, userID uuid.UUID, expiresAt *time.Time) (*models.UserLicense, error) {
	now := s.now()
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, apperrors.NewValidationError("expires_at", "seat expiry must be in the future")
	}

	var seat *models.UserLicense
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		purchase, err := tx.Licenses().LockPurchaseByID(ctx, purchasedLicenseID)
		if err != nil {
			return storeError("assign user seat", err, apperrors.ErrPurchasedLicenseNotFound)
		}

		if _, err := tx.Teams().GetMember(ctx, purchase.TeamID, userID); err != nil {
			return storeError("assign user seat", err, apperrors.ErrSeatOwnerNotMember)
		}

		if purchase.License != nil && purchase.License.MaxUsers != nil {
			active, err := tx.Licenses().CountActiveUserSeats(ctx, purchase.ID, now)
			if err != nil {
				return storeError("assign user seat", err, nil)
			}
			if active >= int64(*purchase.License.MaxUsers) {
				return apperrors.ErrUserSeatLimitReached
			}
		}

		seat = &models.UserLicense{
			PurchasedLicenseID: purchase.ID,
			UserID:             userID,
			AssignedAt:         now.UTC(),
			ExpiresAt:          expiresAt,
		}
		if err := tx.Licenses().CreateUserSeat(ctx, seat); err != nil {
			return storeError("assign user seat", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("assign user seat", err, nil)
	}
	return seat, nil
}

// AssignToLocation grants a seat of the purchase to a location owned by the purchasing team
func (s *EntitlementManager) AssignToLocation(ctx context.Context, purchasedLicenseID, locationID uuid.UUID, expiresAt *time.Time) (*models.LocationLicense, error) {
	seat, err := s.assignToLocation(ctx, purchasedLicenseID, locationID, expiresAt)
	s.metrics.SeatAssignment("location", seatOutcome(err))
	return seat, err
}

func (s *EntitlementManager) assignToLocation(ctx context.Context, purchasedLicenseID, locationID uuid.UUID, expiresAt *time.Time) (*models.LocationLicense, error) {
	now := s.now()
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, apperrors.NewValidationError("expires_at", "seat expiry must be in the future")
	}

	var seat *models.LocationLicense
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		purchase, err := tx.Licenses().LockPurchaseByID(ctx, purchasedLicenseID)
		if err != nil {
			return storeError("assign location seat", err, apperrors.ErrPurchasedLicenseNotFound)
		}

		location, err := tx.Teams().GetLocationByID(ctx, locationID)
		if err != nil {
			return storeError("assign location seat", err, apperrors.ErrSeatLocationNotOwned)
		}
		if location.TeamID != purchase.TeamID {
			return apperrors.ErrSeatLocationNotOwned
		}

		if purchase.License != nil && purchase.License.MaxLocations != nil {
			active, err := tx.Licenses().CountActiveLocationSeats(ctx, purchase.ID, now)
			if err != nil {
				return storeError("assign location seat", err, nil)
			}
			if active >= int64(*purchase.License.MaxLocations) {
				return apperrors.ErrLocationSeatLimitReached
			}
		}

		seat = &models.LocationLicense{
			PurchasedLicenseID: purchase.ID,
			LocationID:         locationID,
			AssignedAt:         now.UTC(),
			ExpiresAt:          expiresAt,
			IsActive:           true,
		}
		if err := tx.Licenses().CreateLocationSeat(ctx, seat); err != nil {
			return storeError("assign location seat", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("assign location seat", err, nil)
	}
	return seat, nil
}

// RevokeUser deletes every seat the user holds on the purchase. Nothing to revoke is not an error.
func (s *EntitlementManager) RevokeUser(ctx context.Context, purchasedLicenseID, userID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Licenses().LockPurchaseByID(ctx, purchasedLicenseID); err != nil {
			return storeError("revoke user seat", err, apperrors.ErrPurchasedLicenseNotFound)
		}
		removed, err := tx.Licenses().DeleteUserSeats(ctx, purchasedLicenseID, userID)
		if err != nil {
			return storeError("revoke user seat", err, nil)
		}
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"purchased_license_id": purchasedLicenseID,
			"user_id":              userID,
			"removed":              removed,
		}).Info("User seat revoked")
		return nil
	})
	return storeError("revoke user seat", err, nil)
}

// RevokeLocation deactivates every active seat the location holds on the purchase.
// Nothing to revoke is not an error.
func (s *EntitlementManager) RevokeLocation(ctx context.Context, purchasedLicenseID, locationID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Licenses().LockPurchaseByID(ctx, purchasedLicenseID); err != nil {
			return storeError("revoke location seat", err, apperrors.ErrPurchasedLicenseNotFound)
		}
		deactivated, err := tx.Licenses().DeactivateLocationSeats(ctx, purchasedLicenseID, locationID)
		if err != nil {
			return storeError("revoke location seat", err, nil)
		}
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"purchased_license_id": purchasedLicenseID,
			"location_id":          locationID,
			"deactivated":          deactivated,
		}).Info("Location seat revoked")
		return nil
	})
	return storeError("revoke location seat", err, nil)
}

// IsEntitled reports whether any active, unexpired purchase of the team unlocks featureKey.
// Store failures are logged and reported as not entitled.
func (s *EntitlementManager) IsEntitled(ctx context.Context, teamID uuid.UUID, featureKey string) bool {
	purchases, err := s.store.Licenses().ListPurchasesByTeam(ctx, teamID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("team_id", teamID).Warn("Entitlement check failed")
		return false
	}

	now := s.now()
	for i := range purchases {
		purchase := &purchases[i]
		if purchase.IsCurrentAt(now) && purchase.License != nil && purchase.License.Features.Contains(featureKey) {
			return true
		}
	}
	return false
}

func seatOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case apperrors.IsConflict(err):
		return metrics.OutcomeConflict
	case apperrors.IsValidation(err):
		return metrics.OutcomeInvalid
	case apperrors.IsAuthorization(err), apperrors.IsNotFound(err):
		return metrics.OutcomeDenied
	default:
		return metrics.OutcomeError
	}
}
