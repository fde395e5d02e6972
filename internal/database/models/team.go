package models

import (
	"github.com/google/uuid"
)

// TenantType is the Farm / PPE / Default classification of a team
type TenantType struct {
	BaseModel
	Name TenantTypeName `json:"name" gorm:"type:varchar(20);uniqueIndex;not null" validate:"required"`
}

// TableName returns the table name for TenantType
func (TenantType) TableName() string {
	return "tenant_types"
}

// Team is the tenancy boundary; it owns roles, locations, licenses and statuses
type Team struct {
	BaseModel
	// Slug is written on create only and never updated afterwards
	Slug         string    `json:"slug" gorm:"<-:create;uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Name         string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	TenantTypeID uuid.UUID `json:"tenant_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	UseVendors   bool      `json:"use_vendors" gorm:"not null;default:false"`

	// Relationships
	TenantType *TenantType `json:"tenant_type,omitempty" gorm:"foreignKey:TenantTypeID;constraint:OnDelete:RESTRICT"`
	Locations  []Location  `json:"locations,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// Location is a site owned by a team (a facility for PPE tenants, a farm for Farm tenants)
type Location struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name   string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
