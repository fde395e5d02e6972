package testutils

import (
	"fmt"
	"time"

	"governance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// TenantTypeFactory provides methods to create test TenantType data
type TenantTypeFactory struct{}

// NewTenantTypeFactory creates a new TenantTypeFactory
func NewTenantTypeFactory() *TenantTypeFactory {
	return &TenantTypeFactory{}
}

// Create creates a test TenantType with the given name
func (f *TenantTypeFactory) Create(name models.TenantTypeName) *models.TenantType {
	return &models.TenantType{BaseModel: newBase(), Name: name}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique slug
func (f *TeamFactory) Create() *models.Team {
	base := newBase()
	return &models.Team{
		BaseModel: base,
		Slug:      "team-" + base.ID.String()[:8],
		Name:      "Test Team",
	}
}

// WithTenantType creates a test Team of the given tenant type
func (f *TeamFactory) WithTenantType(tenantTypeID uuid.UUID) *models.Team {
	team := f.Create()
	team.TenantTypeID = tenantTypeID
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test User with a unique email
func (f *UserFactory) Create() *models.User {
	base := newBase()
	short := base.ID.String()[:8]
	return &models.User{
		BaseModel:   base,
		Email:       fmt.Sprintf("user-%s@test.com", short),
		DisplayName: "User " + short,
		IsActive:    true,
	}
}

// Inactive creates a deactivated test User
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// RoleFactory provides methods to create test TeamRole data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a role for the team with the given permissions
func (f *RoleFactory) Create(teamID uuid.UUID, name string, permissions models.Permissions) *models.TeamRole {
	return &models.TeamRole{
		BaseModel:   newBase(),
		TeamID:      teamID,
		Name:        name,
		Permissions: permissions,
	}
}

// Owner creates a role granted every action on every resource
func (f *RoleFactory) Owner(teamID uuid.UUID) *models.TeamRole {
	permissions := models.Permissions{}
	for _, resource := range models.AllResources() {
		permissions[resource] = models.AllActions()
	}
	return f.Create(teamID, "Owner", permissions)
}

// Viewer creates a role granted read on every resource
func (f *RoleFactory) Viewer(teamID uuid.UUID) *models.TeamRole {
	permissions := models.Permissions{}
	for _, resource := range models.AllResources() {
		permissions[resource] = []models.Action{models.ActionRead}
	}
	return f.Create(teamID, "Viewer", permissions)
}

// MemberFactory provides methods to create test TeamMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create binds a user to a team with a role
func (f *MemberFactory) Create(teamID, userID, roleID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		BaseModel: newBase(),
		TeamID:    teamID,
		UserID:    userID,
		RoleID:    roleID,
	}
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a location owned by the team
func (f *LocationFactory) Create(teamID uuid.UUID) *models.Location {
	base := newBase()
	return &models.Location{
		BaseModel: base,
		TeamID:    teamID,
		Name:      "Location " + base.ID.String()[:8],
	}
}

// LicenseFactory provides methods to create test License data
type LicenseFactory struct{}

// NewLicenseFactory creates a new LicenseFactory
func NewLicenseFactory() *LicenseFactory {
	return &LicenseFactory{}
}

// Create creates an active yearly license without seat caps
func (f *LicenseFactory) Create(issuerTeamID uuid.UUID) *models.License {
	return &models.License{
		BaseModel:     newBase(),
		IssuerTeamID:  issuerTeamID,
		Name:          "Compliance Suite",
		Price:         99,
		RenewalPeriod: models.RenewalPeriodYearly,
		Status:        models.LicenseStatusActive,
		Features:      models.FeatureList{"compliance"},
	}
}

// WithSeats creates a license capped at maxUsers user seats and maxLocations location seats.
// A zero cap leaves that kind of seat unlimited.
func (f *LicenseFactory) WithSeats(issuerTeamID uuid.UUID, maxUsers, maxLocations int) *models.License {
	license := f.Create(issuerTeamID)
	if maxUsers > 0 {
		license.MaxUsers = &maxUsers
	}
	if maxLocations > 0 {
		license.MaxLocations = &maxLocations
	}
	return license
}

// PurchaseFactory provides methods to create test PurchasedLicense data
type PurchaseFactory struct{}

// NewPurchaseFactory creates a new PurchaseFactory
func NewPurchaseFactory() *PurchaseFactory {
	return &PurchaseFactory{}
}

// Create creates an active purchase of license by team that expires in a year
func (f *PurchaseFactory) Create(teamID, licenseID uuid.UUID) *models.PurchasedLicense {
	now := time.Now().UTC()
	expires := now.AddDate(1, 0, 0)
	return &models.PurchasedLicense{
		BaseModel:   newBase(),
		TeamID:      teamID,
		LicenseID:   licenseID,
		PurchasedAt: now,
		ExpiresAt:   &expires,
		IsActive:    true,
	}
}

// StatusFactory provides methods to create test TeamComplianceStatus data
type StatusFactory struct{}

// NewStatusFactory creates a new StatusFactory
func NewStatusFactory() *StatusFactory {
	return &StatusFactory{}
}

// Create creates a status of the team
func (f *StatusFactory) Create(teamID uuid.UUID, code string, order int, isDefault bool) *models.TeamComplianceStatus {
	return &models.TeamComplianceStatus{
		BaseModel: newBase(),
		TeamID:    teamID,
		Code:      code,
		Name:      code,
		Order:     order,
		IsDefault: isDefault,
	}
}

// AlertFactory provides methods to create test ComplianceAlert data
type AlertFactory struct{}

// NewAlertFactory creates a new AlertFactory
func NewAlertFactory() *AlertFactory {
	return &AlertFactory{}
}

// Create creates an alert of the team with an empty history
func (f *AlertFactory) Create(teamID uuid.UUID, statusID *uuid.UUID) *models.ComplianceAlert {
	return &models.ComplianceAlert{
		BaseModel:   newBase(),
		TeamID:      teamID,
		Title:       "Fire extinguisher inspection overdue",
		Description: "Quarterly inspection was not recorded",
		StatusID:    statusID,
		Comments:    models.CommentHistory{},
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	TenantType *TenantTypeFactory
	Team       *TeamFactory
	User       *UserFactory
	Role       *RoleFactory
	Member     *MemberFactory
	Location   *LocationFactory
	License    *LicenseFactory
	Purchase   *PurchaseFactory
	Status     *StatusFactory
	Alert      *AlertFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		TenantType: NewTenantTypeFactory(),
		Team:       NewTeamFactory(),
		User:       NewUserFactory(),
		Role:       NewRoleFactory(),
		Member:     NewMemberFactory(),
		Location:   NewLocationFactory(),
		License:    NewLicenseFactory(),
		Purchase:   NewPurchaseFactory(),
		Status:     NewStatusFactory(),
		Alert:      NewAlertFactory(),
	}
}

// TeamFixture is a team with its tenant type, an owner and a viewer
type TeamFixture struct {
	TenantType *models.TenantType
	Team       *models.Team
	OwnerRole  *models.TeamRole
	ViewerRole *models.TeamRole
	Owner      *models.User
	Viewer     *models.User
	Members    []*models.TeamMember
}

// Records returns every record of the fixture in insertion order
func (f *TeamFixture) Records() []interface{} {
	records := []interface{}{f.TenantType, f.Team, f.OwnerRole, f.ViewerRole, f.Owner, f.Viewer}
	for _, member := range f.Members {
		records = append(records, member)
	}
	return records
}

// CreateTeamFixture builds a team of the given tenant type with an owner and a viewer member
func (fs *FactorySet) CreateTeamFixture(tenant models.TenantTypeName) *TeamFixture {
	tenantType := fs.TenantType.Create(tenant)
	team := fs.Team.WithTenantType(tenantType.ID)
	ownerRole := fs.Role.Owner(team.ID)
	viewerRole := fs.Role.Viewer(team.ID)
	owner := fs.User.Create()
	viewer := fs.User.Create()

	return &TeamFixture{
		TenantType: tenantType,
		Team:       team,
		OwnerRole:  ownerRole,
		ViewerRole: viewerRole,
		Owner:      owner,
		Viewer:     viewer,
		Members: []*models.TeamMember{
			fs.Member.Create(team.ID, owner.ID, ownerRole.ID),
			fs.Member.Create(team.ID, viewer.ID, viewerRole.ID),
		},
	}
}

// AddMember creates a new user and makes it a member of the fixture team with role
func (fs *FactorySet) AddMember(fixture *TeamFixture, role *models.TeamRole) (*models.User, *models.TeamMember) {
	user := fs.User.Create()
	member := fs.Member.Create(fixture.Team.ID, user.ID, role.ID)
	fixture.Members = append(fixture.Members, member)
	return user, member
}
