package models

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

// NullStatus is written as statusFrom when a record had no status before a transition
const NullStatus = "null"

// TeamComplianceStatus is one entry of a team's custom workflow vocabulary.
// At most one status per team has IsDefault set, backed by a partial unique index.
type TeamComplianceStatus struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_compliance_statuses_team_code;uniqueIndex:idx_compliance_statuses_team_default,where:is_default = true"`
	Code      string    `json:"code" gorm:"not null;size:100;uniqueIndex:idx_compliance_statuses_team_code"`
	Name      string    `json:"name" gorm:"not null;size:200"`
	Order     int       `json:"order" gorm:"column:sort_order;not null;default:0"`
	IsDefault bool      `json:"is_default" gorm:"not null;default:false"`
}

// TableName returns the table name for TeamComplianceStatus
func (TeamComplianceStatus) TableName() string {
	return "team_compliance_statuses"
}

// CommentEntry is one immutable audit entry of a governed record.
// The field names are part of the persisted contract.
type CommentEntry struct {
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"`
	User       string `json:"user"`
	StatusFrom string `json:"statusFrom"`
	StatusTo   string `json:"statusTo"`
}

// CommentHistory is the append-only, ordered audit trail of a governed record
type CommentHistory []CommentEntry

// Value implements driver.Valuer for the jsonb column
func (h CommentHistory) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	return jsonValue([]CommentEntry(h))
}

// Scan implements sql.Scanner for the jsonb column
func (h *CommentHistory) Scan(value interface{}) error {
	decoded := []CommentEntry{}
	if err := scanJSON(value, &decoded); err != nil {
		return err
	}
	*h = decoded
	return nil
}

// ComplianceAlert is a governed record whose lifecycle follows the team's statuses
type ComplianceAlert struct {
	BaseModel
	TeamID      uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index"`
	LocationID  *uuid.UUID     `json:"location_id,omitempty" gorm:"type:uuid;index"`
	Title       string         `json:"title" gorm:"not null;size:200"`
	Description string         `json:"description" gorm:"type:text"`
	StatusID    *uuid.UUID     `json:"status_id,omitempty" gorm:"type:uuid;index"`
	Severity    *Severity      `json:"severity,omitempty" gorm:"type:varchar(20)"`
	Comments    CommentHistory `json:"comments" gorm:"type:jsonb;not null;default:'[]'"`

	Status *TeamComplianceStatus `json:"status,omitempty" gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for ComplianceAlert
func (ComplianceAlert) TableName() string {
	return "compliance_alerts"
}

// StatusRef returns the current status id as written into the audit trail
func (a *ComplianceAlert) StatusRef() string {
	if a.StatusID == nil {
		return NullStatus
	}
	return a.StatusID.String()
}
