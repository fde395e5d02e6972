package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// FeatureList is the set of feature keys a license unlocks
type FeatureList []string

// Contains reports whether key is one of the features
func (f FeatureList) Contains(key string) bool {
	for _, feature := range f {
		if feature == key {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for the jsonb column
func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	return jsonValue([]string(f))
}

// Scan implements sql.Scanner for the jsonb column
func (f *FeatureList) Scan(value interface{}) error {
	decoded := []string{}
	if err := scanJSON(value, &decoded); err != nil {
		return err
	}
	*f = decoded
	return nil
}

// License is a catalog entry owned by the issuing team
type License struct {
	BaseModel
	IssuerTeamID  uuid.UUID     `json:"issuer_team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string        `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Price         float64       `json:"price" gorm:"not null;default:0" validate:"gte=0"`
	RenewalPeriod RenewalPeriod `json:"renewal_period" gorm:"type:varchar(20);not null;default:'YEARLY'"`
	MaxUsers      *int          `json:"max_users,omitempty"`
	MaxLocations  *int          `json:"max_locations,omitempty"`
	Status        LicenseStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Features      FeatureList   `json:"features" gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName returns the table name for License
func (License) TableName() string {
	return "licenses"
}

// PurchasedLicense is a license bought by exactly one team
type PurchasedLicense struct {
	BaseModel
	TeamID      uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index"`
	LicenseID   uuid.UUID  `json:"license_id" gorm:"type:uuid;not null;index"`
	PurchasedAt time.Time  `json:"purchased_at" gorm:"not null"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsActive    bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Team    *Team    `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	License *License `json:"license,omitempty" gorm:"foreignKey:LicenseID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for PurchasedLicense
func (PurchasedLicense) TableName() string {
	return "purchased_licenses"
}

// IsCurrentAt reports whether the purchase is active and unexpired at now
func (p *PurchasedLicense) IsCurrentAt(now time.Time) bool {
	return p.IsActive && notExpired(p.ExpiresAt, now)
}

// UserLicense is a seat of a purchased license held by a user.
// There is no active flag; revocation deletes the row.
type UserLicense struct {
	BaseModel
	PurchasedLicenseID uuid.UUID  `json:"purchased_license_id" gorm:"type:uuid;not null;index:idx_user_licenses_purchase_user"`
	UserID             uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_user_licenses_purchase_user"`
	AssignedAt         time.Time  `json:"assigned_at" gorm:"not null"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`

	PurchasedLicense *PurchasedLicense `json:"-" gorm:"foreignKey:PurchasedLicenseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserLicense
func (UserLicense) TableName() string {
	return "user_licenses"
}

// IsActiveAt reports whether the seat still counts against the cap at now
func (s *UserLicense) IsActiveAt(now time.Time) bool {
	return notExpired(s.ExpiresAt, now)
}

// LocationLicense is a seat of a purchased license held by a location
type LocationLicense struct {
	BaseModel
	PurchasedLicenseID uuid.UUID  `json:"purchased_license_id" gorm:"type:uuid;not null;index:idx_location_licenses_purchase_location"`
	LocationID         uuid.UUID  `json:"location_id" gorm:"type:uuid;not null;index:idx_location_licenses_purchase_location"`
	AssignedAt         time.Time  `json:"assigned_at" gorm:"not null"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	IsActive           bool       `json:"is_active" gorm:"not null;default:true"`

	PurchasedLicense *PurchasedLicense `json:"-" gorm:"foreignKey:PurchasedLicenseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LocationLicense
func (LocationLicense) TableName() string {
	return "location_licenses"
}

// IsActiveAt reports whether the seat still counts against the cap at now
func (s *LocationLicense) IsActiveAt(now time.Time) bool {
	return s.IsActive && notExpired(s.ExpiresAt, now)
}

func notExpired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt == nil || expiresAt.After(now)
}
