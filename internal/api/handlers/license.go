package handlers

import (
	"net/http"
	"strings"
	"time"

	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LicenseHandler handles license catalog, purchase and seat endpoints of a team
type LicenseHandler struct {
	guard        service.AuthorizationGuardInterface
	entitlements service.EntitlementManagerInterface
}

// NewLicenseHandler creates a new license handler
func NewLicenseHandler(guard service.AuthorizationGuardInterface, entitlements service.EntitlementManagerInterface) *LicenseHandler {
	return &LicenseHandler{
		guard:        guard,
		entitlements: entitlements,
	}
}

// PurchaseRequest represents the request to purchase licenses
type PurchaseRequest struct {
	LicenseIDs []uuid.UUID `json:"license_ids"`
}

// UserSeatRequest represents the request to assign a user seat
type UserSeatRequest struct {
	UserID    uuid.UUID  `json:"user_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// LocationSeatRequest represents the request to assign a location seat
type LocationSeatRequest struct {
	LocationID uuid.UUID  `json:"location_id"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// EntitlementResponse reports whether a team is entitled to a feature
type EntitlementResponse struct {
	Feature  string `json:"feature"`
	Entitled bool   `json:"entitled"`
}

// teamPurchase resolves the :id purchase and hides purchases of other teams
func (h *LicenseHandler) teamPurchase(c *gin.Context, member *models.TeamMember) (*service.PurchasedLicenseResponse, bool) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return nil, false
	}
	purchase, err := h.entitlements.GetPurchasedLicense(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if purchase.TeamID != member.TeamID {
		respondError(c, apperrors.ErrPurchasedLicenseNotFound)
		return nil, false
	}
	return purchase, true
}

// CreateLicense handles POST /teams/:slug/license-catalog
// @Summary Create a catalog license
// @Description Add a license to the catalog of the issuing team
// @Tags licenses
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param license body service.CreateLicenseRequest true "License data"
// @Success 201 {object} models.License "Created license"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not allowed to create licenses"
// @Security BearerAuth
// @Router /teams/{slug}/license-catalog [post]
func (h *LicenseHandler) CreateLicense(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionCreate)
	if !ok {
		return
	}
	var req service.CreateLicenseRequest
	if !bindJSON(c, &req) {
		return
	}

	license, err := h.entitlements.CreateLicense(c.Request.Context(), member.TeamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, license)
}

// ListTeamLicenses handles GET /teams/:slug/licenses
// @Summary List purchased licenses
// @Description List every license the team purchased with its seat usage
// @Tags licenses
// @Produce json
// @Param slug path string true "Team slug"
// @Success 200 {array} service.PurchasedLicenseResponse "Purchased licenses"
// @Failure 403 {object} ErrorResponse "Not allowed to read licenses"
// @Security BearerAuth
// @Router /teams/{slug}/licenses [get]
func (h *LicenseHandler) ListTeamLicenses(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionRead)
	if !ok {
		return
	}

	licenses, err := h.entitlements.ListTeamLicenses(c.Request.Context(), member.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, licenses)
}

// Purchase handles POST /teams/:slug/licenses
// @Summary Purchase licenses
// @Description Purchase one license per id, all or nothing. Repeated ids purchase again.
// @Tags licenses
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param purchase body PurchaseRequest true "License ids"
// @Success 201 {array} models.PurchasedLicense "Created purchases"
// @Failure 400 {object} ErrorResponse "No license ids given"
// @Failure 404 {object} ErrorResponse "License not found"
// @Security BearerAuth
// @Router /teams/{slug}/licenses [post]
func (h *LicenseHandler) Purchase(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionCreate)
	if !ok {
		return
	}
	var req PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	purchases, err := h.entitlements.Purchase(c.Request.Context(), member.TeamID, req.LicenseIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, purchases)
}

// Renew handles POST /teams/:slug/licenses/:id/renew
// @Summary Renew a purchased license
// @Description Extend a purchase by one renewal period
// @Tags licenses
// @Produce json
// @Param slug path string true "Team slug"
// @Param id path string true "Purchased license ID (UUID)"
// @Success 200 {object} models.PurchasedLicense "Renewed purchase"
// @Failure 404 {object} ErrorResponse "Purchased license not found"
// @Security BearerAuth
// @Router /teams/{slug}/licenses/{id}/renew [post]
func (h *LicenseHandler) Renew(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionUpdate)
	if !ok {
		return
	}
	purchase, ok := h.teamPurchase(c, member)
	if !ok {
		return
	}

	renewed, err := h.entitlements.Renew(c.Request.Context(), purchase.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, renewed)
}

// AssignUser handles POST /teams/:slug/licenses/:id/users
// @Summary Assign a user seat
// @Description Grant a seat of the purchased license to a team member
// @Tags licenses
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param id path string true "Purchased license ID (UUID)"
// @Param seat body UserSeatRequest true "Seat data"
// @Success 201 {object} models.UserLicense "Assigned seat"
// @Failure 403 {object} ErrorResponse "User is not a member of the team"
// @Failure 409 {object} ErrorResponse "User seat limit reached"
// @Security BearerAuth
// @Router /teams/{slug}/licenses/{id}/users [post]
func (h *LicenseHandler) AssignUser(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionUpdate)
	if !ok {
		return
	}
	purchase, ok := h.teamPurchase(c, member)
	if !ok {
		return
	}
	var req UserSeatRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.UserID == uuid.Nil {
		respondError(c, apperrors.NewValidationError("user_id", "user_id is required"))
		return
	}

	seat, err := h.entitlements.AssignToUser(c.Request.Context(), purchase.ID, req.UserID, req.ExpiresAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, seat)
}

// RevokeUser handles DELETE /teams/:slug/licenses/:id/users/:userId
// @Summary Revoke a user seat
// @Description Remove every seat the user holds on the purchased license
// @Tags licenses
// @Param slug path string true "Team slug"
// @Param id path string true "Purchased license ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Seat revoked"
// @Failure 404 {object} ErrorResponse "Purchased license not found"
// @Security BearerAuth
// @Router /teams/{slug}/licenses/{id}/users/{userId} [delete]
func (h *LicenseHandler) RevokeUser(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionUpdate)
	if !ok {
		return
	}
	purchase, ok := h.teamPurchase(c, member)
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.entitlements.RevokeUser(c.Request.Context(), purchase.ID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignLocation handles POST /teams/:slug/licenses/:id/locations
// @Summary Assign a location seat
// @Description Grant a seat of the purchased license to a location of the team
// @Tags licenses
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param id path string true "Purchased license ID (UUID)"
// @Param seat body LocationSeatRequest true "Seat data"
// @Success 201 {object} models.LocationLicense "Assigned seat"
// @Failure 403 {object} ErrorResponse "Location does not belong to the team"
// @Failure 409 {object} ErrorResponse "Location seat limit reached"
// @Security BearerAuth
// @Router /teams/{slug}/licenses/{id}/locations [post]
func (h *LicenseHandler) AssignLocation(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionUpdate)
	if !ok {
		return
	}
	purchase, ok := h.teamPurchase(c, member)
	if !ok {
		return
	}
	var req LocationSeatRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.LocationID == uuid.Nil {
		respondError(c, apperrors.NewValidationError("location_id", "location_id is required"))
		return
	}

	seat, err := h.entitlements.AssignToLocation(c.Request.Context(), purchase.ID, req.LocationID, req.ExpiresAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, seat)
}

// RevokeLocation handles DELETE /teams/:slug/licenses/:id/locations/:locationId
// @Summary Revoke a location seat
// @Description Deactivate every seat the location holds on the purchased license
// @Tags licenses
// @Param slug path string true "Team slug"
// @Param id path string true "Purchased license ID (UUID)"
// @Param locationId path string true "Location ID (UUID)"
// @Success 204 "Seat revoked"
// @Failure 404 {object} ErrorResponse "Purchased license not found"
// @Security BearerAuth
// @Router /teams/{slug}/licenses/{id}/locations/{locationId} [delete]
func (h *LicenseHandler) RevokeLocation(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionUpdate)
	if !ok {
		return
	}
	purchase, ok := h.teamPurchase(c, member)
	if !ok {
		return
	}
	locationID, ok := uuidParam(c, "locationId")
	if !ok {
		return
	}

	if err := h.entitlements.RevokeLocation(c.Request.Context(), purchase.ID, locationID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckEntitlement handles GET /teams/:slug/entitlements/:feature
// @Summary Check a feature entitlement
// @Description Report whether an active purchase of the team unlocks the feature
// @Tags licenses
// @Produce json
// @Param slug path string true "Team slug"
// @Param feature path string true "Feature key"
// @Success 200 {object} EntitlementResponse "Entitlement"
// @Security BearerAuth
// @Router /teams/{slug}/entitlements/{feature} [get]
func (h *LicenseHandler) CheckEntitlement(c *gin.Context) {
	member, ok := authorize(c, h.guard, models.ResourceLicense, models.ActionRead)
	if !ok {
		return
	}
	feature := strings.TrimSpace(c.Param("feature"))

	c.JSON(http.StatusOK, EntitlementResponse{
		Feature:  feature,
		Entitled: h.entitlements.IsEntitled(c.Request.Context(), member.TeamID, feature),
	})
}
