//go:build integration
// +build integration

package repository_test

import (
	"context"
	"errors"
	"testing"

	"governance-portal-backend/internal/database/models"
	"governance-portal-backend/internal/repository"
	"governance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ComplianceRepositoryTestSuite tests the ComplianceRepository and store transactions
type ComplianceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.ComplianceRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	fixture *testutils.TeamFixture
}

// SetupSuite runs before all tests in the suite
func (suite *ComplianceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewComplianceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ComplianceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds one PPE team
func (suite *ComplianceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.fixture = suite.factories.CreateTeamFixture(models.TenantTypePPE)
	suite.baseTestSuite.Insert(suite.T(), suite.fixture.Records()...)
}

// TearDownTest runs after each test
func (suite *ComplianceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ComplianceRepositoryTestSuite) TestListStatusesInOrder() {
	teamID := suite.fixture.Team.ID
	suite.baseTestSuite.Insert(suite.T(),
		suite.factories.Status.Create(teamID, "CLOSED", 2, false),
		suite.factories.Status.Create(teamID, "REPORTED", 0, true),
		suite.factories.Status.Create(teamID, "UNDER_REVIEW", 1, false),
	)

	statuses, err := suite.repo.ListStatuses(suite.ctx, teamID)

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 3)
	suite.Equal("REPORTED", statuses[0].Code)
	suite.Equal("UNDER_REVIEW", statuses[1].Code)
	suite.Equal("CLOSED", statuses[2].Code)

	count, err := suite.repo.CountStatuses(suite.ctx, teamID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)
}

func (suite *ComplianceRepositoryTestSuite) TestMaxStatusOrder() {
	teamID := suite.fixture.Team.ID

	max, err := suite.repo.MaxStatusOrder(suite.ctx, teamID)
	suite.Require().NoError(err)
	suite.Equal(-1, max)

	suite.baseTestSuite.Insert(suite.T(),
		suite.factories.Status.Create(teamID, "OPEN", 0, true),
		suite.factories.Status.Create(teamID, "RESOLVED", 4, false),
	)

	max, err = suite.repo.MaxStatusOrder(suite.ctx, teamID)
	suite.Require().NoError(err)
	suite.Equal(4, max)
}

func (suite *ComplianceRepositoryTestSuite) TestStatusCodeIsUniquePerTeam() {
	teamID := suite.fixture.Team.ID
	suite.baseTestSuite.Insert(suite.T(), suite.factories.Status.Create(teamID, "OPEN", 0, false))

	err := suite.repo.CreateStatus(suite.ctx, suite.factories.Status.Create(teamID, "OPEN", 1, false))

	suite.Error(err)
}

func (suite *ComplianceRepositoryTestSuite) TestOnlyOneDefaultPerTeam() {
	teamID := suite.fixture.Team.ID
	suite.baseTestSuite.Insert(suite.T(), suite.factories.Status.Create(teamID, "OPEN", 0, true))

	err := suite.repo.CreateStatus(suite.ctx, suite.factories.Status.Create(teamID, "TRIAGE", 1, true))
	suite.Error(err)

	// Non-default statuses are not constrained
	suite.NoError(suite.repo.CreateStatus(suite.ctx, suite.factories.Status.Create(teamID, "DONE", 2, false)))
	suite.NoError(suite.repo.CreateStatus(suite.ctx, suite.factories.Status.Create(teamID, "ARCHIVED", 3, false)))
}

func (suite *ComplianceRepositoryTestSuite) TestMoveDefault() {
	teamID := suite.fixture.Team.ID
	open := suite.factories.Status.Create(teamID, "OPEN", 0, true)
	triage := suite.factories.Status.Create(teamID, "TRIAGE", 1, false)
	suite.baseTestSuite.Insert(suite.T(), open, triage)

	suite.Require().NoError(suite.repo.ClearDefaultStatus(suite.ctx, teamID))
	suite.Require().NoError(suite.repo.MarkDefaultStatus(suite.ctx, triage.ID))

	current, err := suite.repo.GetDefaultStatus(suite.ctx, teamID)
	suite.Require().NoError(err)
	suite.Equal(triage.ID, current.ID)
}

func (suite *ComplianceRepositoryTestSuite) TestGetDefaultStatusMissing() {
	_, err := suite.repo.GetDefaultStatus(suite.ctx, suite.fixture.Team.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ComplianceRepositoryTestSuite) TestGetStatusByCode() {
	teamID := suite.fixture.Team.ID
	suite.baseTestSuite.Insert(suite.T(), suite.factories.Status.Create(teamID, "CLOSED", 0, false))

	status, err := suite.repo.GetStatusByCode(suite.ctx, teamID, "CLOSED")
	suite.Require().NoError(err)
	suite.Equal(teamID, status.TeamID)

	_, err = suite.repo.GetStatusByCode(suite.ctx, uuid.New(), "CLOSED")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ComplianceRepositoryTestSuite) TestAlertHistoryRoundTrip() {
	teamID := suite.fixture.Team.ID
	reported := suite.factories.Status.Create(teamID, "REPORTED", 0, true)
	review := suite.factories.Status.Create(teamID, "UNDER_REVIEW", 1, false)
	suite.baseTestSuite.Insert(suite.T(), reported, review)

	alert := suite.factories.Alert.Create(teamID, &reported.ID)
	suite.Require().NoError(suite.repo.CreateAlert(suite.ctx, alert))

	locked, err := suite.repo.LockAlertByID(suite.ctx, alert.ID)
	suite.Require().NoError(err)
	suite.Empty(locked.Comments)

	severity := models.SeverityHigh
	locked.StatusID = &review.ID
	locked.Severity = &severity
	locked.Comments = append(locked.Comments, models.CommentEntry{
		Text:       "Inspector assigned",
		Timestamp:  "2026-03-01T09:30:00.123Z",
		User:       "Ina Inspector",
		StatusFrom: reported.ID.String(),
		StatusTo:   review.ID.String(),
	})
	suite.Require().NoError(suite.repo.UpdateAlert(suite.ctx, locked))

	stored, err := suite.repo.GetAlertByID(suite.ctx, alert.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.Status)
	suite.Equal("UNDER_REVIEW", stored.Status.Code)
	suite.Require().NotNil(stored.Severity)
	suite.Equal(models.SeverityHigh, *stored.Severity)
	suite.Require().Len(stored.Comments, 1)
	suite.Equal("2026-03-01T09:30:00.123Z", stored.Comments[0].Timestamp)
	suite.Equal(reported.ID.String(), stored.Comments[0].StatusFrom)
	suite.Equal("Inspector assigned", stored.Comments[0].Text)
}

func (suite *ComplianceRepositoryTestSuite) TestTransactionRollsBack() {
	store := repository.NewStore(suite.baseTestSuite.DB)
	teamID := suite.fixture.Team.ID
	boom := errors.New("boom")

	err := store.Transaction(suite.ctx, func(tx repository.Store) error {
		if err := tx.Compliance().CreateStatus(suite.ctx, suite.factories.Status.Create(teamID, "OPEN", 0, true)); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	count, err := suite.repo.CountStatuses(suite.ctx, teamID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *ComplianceRepositoryTestSuite) TestTransactionCommits() {
	store := repository.NewStore(suite.baseTestSuite.DB)
	teamID := suite.fixture.Team.ID

	err := store.Transaction(suite.ctx, func(tx repository.Store) error {
		if _, err := tx.Teams().LockByID(suite.ctx, teamID); err != nil {
			return err
		}
		return tx.Compliance().CreateStatus(suite.ctx, suite.factories.Status.Create(teamID, "OPEN", 0, true))
	})
	suite.Require().NoError(err)

	count, err := suite.repo.CountStatuses(suite.ctx, teamID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

// TestComplianceRepositoryTestSuite runs the test suite
func TestComplianceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComplianceRepositoryTestSuite))
}
