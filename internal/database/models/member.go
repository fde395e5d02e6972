package models

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

// Permissions maps a resource onto the set of actions a role may perform on it
type Permissions map[Resource][]Action

// Allows reports whether action is granted on resource
func (p Permissions) Allows(resource Resource, action Action) bool {
	for _, granted := range p[resource] {
		if granted == action {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for the jsonb column
func (p Permissions) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	return jsonValue(map[Resource][]Action(p))
}

// Scan implements sql.Scanner for the jsonb column
func (p *Permissions) Scan(value interface{}) error {
	decoded := map[Resource][]Action{}
	if err := scanJSON(value, &decoded); err != nil {
		return err
	}
	*p = decoded
	return nil
}

// User is an authenticated principal of the portal
type User struct {
	BaseModel
	Email       string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	DisplayName string `json:"display_name" gorm:"size:200" validate:"max=200"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// TeamRole carries the per-team permission matrix
type TeamRole struct {
	BaseModel
	TeamID      uuid.UUID   `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_roles_team_name" validate:"required"`
	Name        string      `json:"name" gorm:"not null;size:100;uniqueIndex:idx_team_roles_team_name" validate:"required,max=100"`
	Permissions Permissions `json:"permissions" gorm:"type:jsonb;not null;default:'{}'"`
}

// TableName returns the table name for TeamRole
func (TeamRole) TableName() string {
	return "team_roles"
}

// TeamMember binds a user to a team with a role; (user_id, team_id) is unique
type TeamMember struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_user_team" validate:"required"`
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_user_team;index" validate:"required"`
	RoleID uuid.UUID `json:"role_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	User *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Team *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Role *TeamRole `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
