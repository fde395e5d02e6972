//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"

	"governance-portal-backend/internal/database/models"
	"governance-portal-backend/internal/repository"
	"governance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.TeamRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) seedFixture() *testutils.TeamFixture {
	fixture := suite.factories.CreateTeamFixture(models.TenantTypeFarm)
	suite.baseTestSuite.Insert(suite.T(), fixture.Records()...)
	return fixture
}

func (suite *TeamRepositoryTestSuite) TestGetByIDLoadsTenantType() {
	fixture := suite.seedFixture()

	team, err := suite.repo.GetByID(suite.ctx, fixture.Team.ID)

	suite.Require().NoError(err)
	suite.Equal(fixture.Team.Slug, team.Slug)
	suite.Require().NotNil(team.TenantType)
	suite.Equal(models.TenantTypeFarm, team.TenantType.Name)
}

func (suite *TeamRepositoryTestSuite) TestGetBySlug() {
	fixture := suite.seedFixture()

	team, err := suite.repo.GetBySlug(suite.ctx, fixture.Team.Slug)
	suite.Require().NoError(err)
	suite.Equal(fixture.Team.ID, team.ID)

	_, err = suite.repo.GetBySlug(suite.ctx, "no-such-team")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestGetMemberLoadsRoleAndUser() {
	fixture := suite.seedFixture()

	member, err := suite.repo.GetMember(suite.ctx, fixture.Team.ID, fixture.Owner.ID)

	suite.Require().NoError(err)
	suite.Require().NotNil(member.Role)
	suite.Require().NotNil(member.User)
	suite.Equal(fixture.OwnerRole.ID, member.Role.ID)
	suite.True(member.Role.Permissions.Allows(models.ResourceLicense, models.ActionDelete))
	suite.Equal(fixture.Owner.Email, member.User.Email)
}

func (suite *TeamRepositoryTestSuite) TestGetMemberOfAnotherTeam() {
	fixture := suite.seedFixture()

	_, err := suite.repo.GetMember(suite.ctx, uuid.New(), fixture.Owner.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestMembershipIsUniquePerTeam() {
	fixture := suite.seedFixture()

	duplicate := suite.factories.Member.Create(fixture.Team.ID, fixture.Owner.ID, fixture.ViewerRole.ID)
	err := suite.baseTestSuite.DB.Create(duplicate).Error

	suite.Error(err)
}

func (suite *TeamRepositoryTestSuite) TestLockByIDInsideTransaction() {
	fixture := suite.seedFixture()

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		team, err := repository.NewTeamRepository(tx).LockByID(suite.ctx, fixture.Team.ID)
		if err != nil {
			return err
		}
		suite.Equal(fixture.Team.ID, team.ID)
		return nil
	})

	suite.NoError(err)
}

func (suite *TeamRepositoryTestSuite) TestGetLocationByID() {
	fixture := suite.seedFixture()
	location := suite.factories.Location.Create(fixture.Team.ID)
	suite.baseTestSuite.Insert(suite.T(), location)

	found, err := suite.repo.GetLocationByID(suite.ctx, location.ID)

	suite.Require().NoError(err)
	suite.Equal(fixture.Team.ID, found.TeamID)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
