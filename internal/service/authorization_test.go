package service_test

import (
	"context"
	"errors"
	"testing"

	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/metrics"
	"governance-portal-backend/internal/service"
	"governance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// AuthorizationGuardTestSuite defines the test suite for AuthorizationGuard
type AuthorizationGuardTestSuite struct {
	suite.Suite
	store     *testutils.MemStore
	factories *testutils.FactorySet
	fixture   *testutils.TeamFixture
	registry  *prometheus.Registry
	guard     *service.AuthorizationGuard
	ctx       context.Context
}

// SetupTest sets up the test suite
func (suite *AuthorizationGuardTestSuite) SetupTest() {
	suite.store = testutils.NewMemStore()
	suite.factories = testutils.NewFactorySet()
	suite.fixture = suite.factories.CreateTeamFixture(models.TenantTypePPE)
	suite.store.Seed(suite.fixture.Records()...)
	suite.registry = prometheus.NewRegistry()
	suite.guard = service.NewAuthorizationGuard(suite.store, metrics.New(suite.registry))
	suite.ctx = context.Background()
}

func principalOf(user *models.User) *service.Principal {
	return &service.Principal{UserID: user.ID, Email: user.Email, DisplayName: user.DisplayName}
}

func (suite *AuthorizationGuardTestSuite) addMemberWith(name string, permissions models.Permissions) *models.User {
	role := suite.factories.Role.Create(suite.fixture.Team.ID, name, permissions)
	user, member := suite.factories.AddMember(suite.fixture, role)
	suite.store.Seed(role, user, member)
	return user
}

// TestCheckFullMatrix checks every resource and action against several role fixtures
func (suite *AuthorizationGuardTestSuite) TestCheckFullMatrix() {
	roles := map[string]models.Permissions{
		"Owner":  suite.fixture.OwnerRole.Permissions,
		"Viewer": suite.fixture.ViewerRole.Permissions,
		"Licensing": {
			models.ResourceLicense:         {models.ActionCreate, models.ActionRead, models.ActionUpdate},
			models.ResourceComplianceAlert: {models.ActionUpdate},
		},
		"Inspector": {
			models.ResourceComplianceStatus: {models.ActionRead},
			models.ResourceComplianceAlert:  {models.ActionCreate, models.ActionRead, models.ActionUpdate, models.ActionDelete},
			models.ResourceLocation:         {models.ActionRead},
		},
		"Nothing": {},
	}

	for name, permissions := range roles {
		user := suite.addMemberWith(name+"-role", permissions)
		principal := principalOf(user)

		for _, resource := range models.AllResources() {
			for _, action := range models.AllActions() {
				member, err := suite.guard.Check(suite.ctx, principal, suite.fixture.Team.Slug, resource, action)

				if permissions.Allows(resource, action) {
					suite.Require().NoError(err, "%s should allow %s:%s", name, resource, action)
					suite.Equal(suite.fixture.Team.ID, member.TeamID)
					suite.Equal(user.ID, member.UserID)
				} else {
					suite.Nil(member)
					suite.ErrorIs(err, apperrors.ErrPermissionDenied, "%s should deny %s:%s", name, resource, action)
				}
			}
		}
	}
}

func (suite *AuthorizationGuardTestSuite) TestCheckReturnsMemberWithRole() {
	member, err := suite.guard.Check(suite.ctx, principalOf(suite.fixture.Owner), suite.fixture.Team.Slug, models.ResourceTeam, models.ActionRead)

	suite.Require().NoError(err)
	suite.Equal(suite.fixture.OwnerRole.ID, member.RoleID)
	suite.Require().NotNil(member.Role)
	suite.Equal("Owner", member.Role.Name)
}

func (suite *AuthorizationGuardTestSuite) TestCheckWithoutSession() {
	_, err := suite.guard.Check(suite.ctx, nil, suite.fixture.Team.Slug, models.ResourceTeam, models.ActionRead)

	suite.True(apperrors.IsAuthentication(err))
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

func (suite *AuthorizationGuardTestSuite) TestCheckUnknownUser() {
	principal := &service.Principal{UserID: uuid.New(), Email: "ghost@test.com"}

	_, err := suite.guard.Check(suite.ctx, principal, suite.fixture.Team.Slug, models.ResourceTeam, models.ActionRead)

	suite.True(apperrors.IsAuthentication(err))
}

func (suite *AuthorizationGuardTestSuite) TestCheckInactiveUser() {
	user := suite.factories.User.Inactive()
	member := suite.factories.Member.Create(suite.fixture.Team.ID, user.ID, suite.fixture.OwnerRole.ID)
	suite.store.Seed(user, member)

	_, err := suite.guard.Check(suite.ctx, principalOf(user), suite.fixture.Team.Slug, models.ResourceTeam, models.ActionRead)

	suite.ErrorIs(err, apperrors.ErrPrincipalInactive)
}

func (suite *AuthorizationGuardTestSuite) TestCheckUnknownTeamIsUnauthenticated() {
	_, err := suite.guard.Check(suite.ctx, principalOf(suite.fixture.Owner), "no-such-team", models.ResourceTeam, models.ActionRead)

	suite.True(apperrors.IsAuthentication(err))
	suite.ErrorIs(err, apperrors.ErrTeamUnavailable)
}

func (suite *AuthorizationGuardTestSuite) TestCheckNonMemberIsForbidden() {
	outsider := suite.factories.User.Create()
	suite.store.Seed(outsider)

	_, err := suite.guard.Check(suite.ctx, principalOf(outsider), suite.fixture.Team.Slug, models.ResourceTeam, models.ActionRead)

	suite.True(apperrors.IsAuthorization(err))
	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
}

func (suite *AuthorizationGuardTestSuite) TestCheckMemberOfAnotherTeamIsForbidden() {
	other := suite.factories.CreateTeamFixture(models.TenantTypeFarm)
	suite.store.Seed(other.Records()...)

	_, err := suite.guard.Check(suite.ctx, principalOf(other.Owner), suite.fixture.Team.Slug, models.ResourceTeam, models.ActionRead)

	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
}

func (suite *AuthorizationGuardTestSuite) TestRoleOfAnotherTeamGrantsNothing() {
	other := suite.factories.CreateTeamFixture(models.TenantTypeFarm)
	suite.store.Seed(other.Records()...)
	user, member := suite.factories.AddMember(suite.fixture, other.OwnerRole)
	suite.store.Seed(user, member)
	principal := principalOf(user)

	for _, action := range models.AllActions() {
		_, err := suite.guard.Check(suite.ctx, principal, suite.fixture.Team.Slug, models.ResourceLicense, action)
		suite.ErrorIs(err, apperrors.ErrPermissionDenied, "action %s", action)
	}

	_, err := suite.guard.Permissions(suite.ctx, principal, suite.fixture.Team.Slug)
	suite.ErrorIs(err, apperrors.ErrPermissionDenied)

	// The same role still works inside its own team
	_, err = suite.guard.Check(suite.ctx, principalOf(other.Owner), other.Team.Slug, models.ResourceLicense, models.ActionDelete)
	suite.NoError(err)
}

func (suite *AuthorizationGuardTestSuite) TestCheckUnknownResourceOrAction() {
	principal := principalOf(suite.fixture.Owner)

	_, err := suite.guard.Check(suite.ctx, principal, suite.fixture.Team.Slug, models.Resource("BILLING"), models.ActionRead)
	suite.True(apperrors.IsValidation(err))

	_, err = suite.guard.Check(suite.ctx, principal, suite.fixture.Team.Slug, models.ResourceTeam, models.Action("approve"))
	suite.True(apperrors.IsValidation(err))
}

func (suite *AuthorizationGuardTestSuite) TestCheckStoreUnavailable() {
	suite.store.FailWith(errors.New("connection reset"))

	_, err := suite.guard.Check(suite.ctx, principalOf(suite.fixture.Owner), suite.fixture.Team.Slug, models.ResourceTeam, models.ActionRead)

	suite.True(apperrors.IsUnavailable(err))
}

func (suite *AuthorizationGuardTestSuite) TestCheckIsRepeatable() {
	principal := principalOf(suite.fixture.Viewer)
	for i := 0; i < 3; i++ {
		_, err := suite.guard.Check(suite.ctx, principal, suite.fixture.Team.Slug, models.ResourceLicense, models.ActionRead)
		suite.NoError(err)
	}
	_, err := suite.guard.Check(suite.ctx, principal, suite.fixture.Team.Slug, models.ResourceLicense, models.ActionDelete)
	suite.ErrorIs(err, apperrors.ErrPermissionDenied)

	suite.Equal(3.0, counterValue(suite.T(), suite.registry, "governance_authz_decisions_total",
		map[string]string{"resource": "LICENSE", "action": "read", "outcome": "allowed"}))
	suite.Equal(1.0, counterValue(suite.T(), suite.registry, "governance_authz_decisions_total",
		map[string]string{"resource": "LICENSE", "action": "delete", "outcome": "denied"}))
}

func (suite *AuthorizationGuardTestSuite) TestPermissionsMatrix() {
	user := suite.addMemberWith("Licensing", models.Permissions{
		models.ResourceLicense: {models.ActionRead, models.ActionCreate},
	})

	response, err := suite.guard.Permissions(suite.ctx, principalOf(user), suite.fixture.Team.Slug)

	suite.Require().NoError(err)
	suite.Equal(suite.fixture.Team.ID, response.TeamID)
	suite.Equal("Licensing", response.RoleName)
	suite.Len(response.Permissions, len(models.AllResources()))
	suite.Equal([]models.Action{models.ActionCreate, models.ActionRead}, response.Permissions[models.ResourceLicense])
	suite.Empty(response.Permissions[models.ResourceTeam])
}

func (suite *AuthorizationGuardTestSuite) TestPermissionsRequiresMembership() {
	outsider := suite.factories.User.Create()
	suite.store.Seed(outsider)

	_, err := suite.guard.Permissions(suite.ctx, principalOf(outsider), suite.fixture.Team.Slug)
	suite.ErrorIs(err, apperrors.ErrNotTeamMember)

	_, err = suite.guard.Permissions(suite.ctx, nil, suite.fixture.Team.Slug)
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

func TestAuthorizationGuardTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizationGuardTestSuite))
}
