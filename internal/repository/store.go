package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a single shared *gorm.DB
type GormStore struct {
	db         *gorm.DB
	teams      *TeamRepository
	licenses   *LicenseRepository
	compliance *ComplianceRepository
}

// NewStore creates a store whose repositories all use db
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:         db,
		teams:      NewTeamRepository(db),
		licenses:   NewLicenseRepository(db),
		compliance: NewComplianceRepository(db),
	}
}

// Teams returns the team repository
func (s *GormStore) Teams() TeamRepositoryInterface {
	return s.teams
}

// Licenses returns the license repository
func (s *GormStore) Licenses() LicenseRepositoryInterface {
	return s.licenses
}

// Compliance returns the compliance repository
func (s *GormStore) Compliance() ComplianceRepositoryInterface {
	return s.compliance
}

// Transaction runs fn inside a database transaction. Nested calls use savepoints.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
