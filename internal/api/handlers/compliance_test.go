package handlers_test

import (
	"net/http"
	"testing"

	"governance-portal-backend/internal/api/handlers"
	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/mocks"
	"governance-portal-backend/internal/service"
	"governance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ComplianceHandlerTestSuite defines the test suite for ComplianceHandler
type ComplianceHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockGuard    *mocks.MockAuthorizationGuardInterface
	mockWorkflow *mocks.MockStatusWorkflowEngineInterface
	handler      *handlers.ComplianceHandler
	httpSuite    *testutils.HTTPTestSuite
	teamID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ComplianceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGuard = mocks.NewMockAuthorizationGuardInterface(suite.ctrl)
	suite.mockWorkflow = mocks.NewMockStatusWorkflowEngineInterface(suite.ctrl)
	suite.handler = handlers.NewComplianceHandler(suite.mockGuard, suite.mockWorkflow)
	suite.teamID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	teams := suite.httpSuite.Router.Group("/api/v1/teams/:slug", withPrincipal(testPrincipal))
	{
		teams.GET("/compliance-statuses", suite.handler.ListStatuses)
		teams.POST("/compliance-statuses", suite.handler.CreateStatus)
		teams.POST("/compliance-statuses/defaults", suite.handler.DefineDefaults)
		teams.PUT("/compliance-statuses/:id/default", suite.handler.SetDefault)
		teams.POST("/compliance-alerts", suite.handler.CreateAlert)
		teams.GET("/compliance-alerts/:id", suite.handler.GetAlert)
		teams.POST("/compliance-alerts/:id/transitions", suite.handler.TransitionAlert)
	}
}

// TearDownTest cleans up after each test
func (suite *ComplianceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComplianceHandlerTestSuite) allow(resource models.Resource, action models.Action) {
	suite.mockGuard.EXPECT().
		Check(gomock.Any(), testPrincipal, "acme", resource, action).
		Return(memberOf(suite.teamID), nil)
}

func (suite *ComplianceHandlerTestSuite) ownAlert() *models.ComplianceAlert {
	alert := &models.ComplianceAlert{TeamID: suite.teamID, Title: "Missing helmet"}
	alert.ID = uuid.New()
	suite.mockWorkflow.EXPECT().GetAlert(gomock.Any(), alert.ID).Return(alert, nil)
	return alert
}

func (suite *ComplianceHandlerTestSuite) TestListStatuses() {
	suite.allow(models.ResourceComplianceStatus, models.ActionRead)
	suite.mockWorkflow.EXPECT().ListStatuses(gomock.Any(), suite.teamID).Return([]models.TeamComplianceStatus{
		{TeamID: suite.teamID, Code: "OPEN", Order: 0, IsDefault: true},
		{TeamID: suite.teamID, Code: "CLOSED", Order: 1},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/acme/compliance-statuses", nil)

	var statuses []models.TeamComplianceStatus
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &statuses)
	suite.Require().Len(statuses, 2)
	suite.Equal("OPEN", statuses[0].Code)
	suite.True(statuses[0].IsDefault)
}

func (suite *ComplianceHandlerTestSuite) TestListStatusesForbidden() {
	suite.mockGuard.EXPECT().
		Check(gomock.Any(), testPrincipal, "acme", models.ResourceComplianceStatus, models.ActionRead).
		Return(nil, apperrors.ErrPermissionDenied)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/acme/compliance-statuses", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "permission denied")
}

func (suite *ComplianceHandlerTestSuite) TestCreateStatus() {
	suite.allow(models.ResourceComplianceStatus, models.ActionCreate)
	suite.mockWorkflow.EXPECT().
		CreateStatus(gomock.Any(), suite.teamID, &service.StatusInput{Code: "in review", Name: "In review"}).
		Return(&models.TeamComplianceStatus{TeamID: suite.teamID, Code: "IN_REVIEW", Name: "In review", Order: 3}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/acme/compliance-statuses", map[string]interface{}{
		"code": "in review",
		"name": "In review",
	})

	var status models.TeamComplianceStatus
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &status)
	suite.Equal("IN_REVIEW", status.Code)
	suite.Equal(3, status.Order)
}

func (suite *ComplianceHandlerTestSuite) TestCreateStatusCodeConflict() {
	suite.allow(models.ResourceComplianceStatus, models.ActionCreate)
	suite.mockWorkflow.EXPECT().
		CreateStatus(gomock.Any(), suite.teamID, gomock.Any()).
		Return(nil, apperrors.NewConflictError("compliance status", "code", "CLOSED", "status code already exists"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/acme/compliance-statuses", map[string]interface{}{
		"code": "closed",
	})

	body := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "status code already exists")
	suite.Equal("code", body["field"])
	suite.Equal("CLOSED", body["code"])
}

func (suite *ComplianceHandlerTestSuite) TestDefineDefaults() {
	suite.allow(models.ResourceComplianceStatus, models.ActionCreate)
	suite.mockWorkflow.EXPECT().
		DefineDefaults(gomock.Any(), suite.teamID, []service.StatusInput{
			{Code: "OPEN", IsDefault: true},
			{Code: "CLOSED"},
		}).
		Return([]models.TeamComplianceStatus{
			{TeamID: suite.teamID, Code: "OPEN", IsDefault: true},
			{TeamID: suite.teamID, Code: "CLOSED", Order: 1},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/acme/compliance-statuses/defaults", map[string]interface{}{
		"statuses": []map[string]interface{}{
			{"code": "OPEN", "is_default": true},
			{"code": "CLOSED"},
		},
	})

	var statuses []models.TeamComplianceStatus
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &statuses)
	suite.Len(statuses, 2)
}

func (suite *ComplianceHandlerTestSuite) TestDefineDefaultsTwice() {
	suite.allow(models.ResourceComplianceStatus, models.ActionCreate)
	suite.mockWorkflow.EXPECT().
		DefineDefaults(gomock.Any(), suite.teamID, gomock.Any()).
		Return(nil, apperrors.ErrStatusesAlreadyDefined)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/acme/compliance-statuses/defaults", map[string]interface{}{
		"statuses": []map[string]interface{}{{"code": "OPEN"}},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already has statuses")
}

func (suite *ComplianceHandlerTestSuite) TestSetDefault() {
	suite.allow(models.ResourceComplianceStatus, models.ActionUpdate)
	statusID := uuid.New()
	suite.mockWorkflow.EXPECT().
		SetDefault(gomock.Any(), suite.teamID, statusID).
		Return(&models.TeamComplianceStatus{TeamID: suite.teamID, Code: "CLOSED", IsDefault: true}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/acme/compliance-statuses/"+statusID.String()+"/default", nil)

	var status models.TeamComplianceStatus
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &status)
	suite.True(status.IsDefault)
}

func (suite *ComplianceHandlerTestSuite) TestSetDefaultUnknownStatus() {
	suite.allow(models.ResourceComplianceStatus, models.ActionUpdate)
	suite.mockWorkflow.EXPECT().
		SetDefault(gomock.Any(), suite.teamID, gomock.Any()).
		Return(nil, apperrors.ErrComplianceStatusNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/acme/compliance-statuses/"+uuid.NewString()+"/default", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "compliance status not found")
}

func (suite *ComplianceHandlerTestSuite) TestCreateAlert() {
	suite.allow(models.ResourceComplianceAlert, models.ActionCreate)
	statusID := uuid.New()
	suite.mockWorkflow.EXPECT().
		CreateAlert(gomock.Any(), suite.teamID, gomock.Any()).
		DoAndReturn(func(_ interface{}, teamID uuid.UUID, req *service.CreateAlertRequest) (*models.ComplianceAlert, error) {
			suite.Equal("Missing helmet", req.Title)
			suite.Require().NotNil(req.Severity)
			suite.Equal(models.SeverityHigh, *req.Severity)
			return &models.ComplianceAlert{TeamID: teamID, Title: req.Title, StatusID: &statusID, Severity: req.Severity}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/acme/compliance-alerts", map[string]interface{}{
		"title":    "Missing helmet",
		"severity": "HIGH",
	})

	var alert models.ComplianceAlert
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &alert)
	suite.Equal(&statusID, alert.StatusID)
}

func (suite *ComplianceHandlerTestSuite) TestGetAlert() {
	suite.allow(models.ResourceComplianceAlert, models.ActionRead)
	alert := suite.ownAlert()

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/acme/compliance-alerts/"+alert.ID.String(), nil)

	var response models.ComplianceAlert
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(alert.ID, response.ID)
}

func (suite *ComplianceHandlerTestSuite) TestAlertOfAnotherTeamIsNotFound() {
	suite.allow(models.ResourceComplianceAlert, models.ActionRead)
	foreign := &models.ComplianceAlert{TeamID: uuid.New()}
	foreign.ID = uuid.New()
	suite.mockWorkflow.EXPECT().GetAlert(gomock.Any(), foreign.ID).Return(foreign, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/acme/compliance-alerts/"+foreign.ID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "compliance alert not found")
}

func (suite *ComplianceHandlerTestSuite) TestTransitionAlert() {
	suite.allow(models.ResourceComplianceAlert, models.ActionUpdate)
	alert := suite.ownAlert()
	statusID := uuid.New()
	severity := models.SeverityCritical
	suite.mockWorkflow.EXPECT().
		Transition(gomock.Any(), alert.ID, statusID, "escalated after site visit", &severity, testPrincipal).
		DoAndReturn(func(_ interface{}, recordID, newStatusID uuid.UUID, comment string, sev *models.Severity, actor *service.Principal) (*models.ComplianceAlert, error) {
			updated := *alert
			updated.StatusID = &newStatusID
			updated.Severity = sev
			updated.Comments = models.CommentHistory{{
				Text:       comment,
				StatusFrom: models.NullStatus,
				StatusTo:   newStatusID.String(),
				User:       actor.Name(),
			}}
			return &updated, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/acme/compliance-alerts/"+alert.ID.String()+"/transitions", map[string]interface{}{
		"status_id": statusID.String(),
		"comment":   "escalated after site visit",
		"severity":  "CRITICAL",
	})

	var updated models.ComplianceAlert
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	suite.Equal(&statusID, updated.StatusID)
	suite.Require().Len(updated.Comments, 1)
	suite.Equal("Ina Inspector", updated.Comments[0].User)
}

func (suite *ComplianceHandlerTestSuite) TestTransitionAlertCommentRequired() {
	suite.allow(models.ResourceComplianceAlert, models.ActionUpdate)
	alert := suite.ownAlert()
	suite.mockWorkflow.EXPECT().
		Transition(gomock.Any(), alert.ID, gomock.Any(), "", gomock.Nil(), testPrincipal).
		Return(nil, apperrors.NewValidationError("comment", "comment is required"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/acme/compliance-alerts/"+alert.ID.String()+"/transitions", map[string]interface{}{
		"status_id": uuid.NewString(),
	})

	body := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "comment is required")
	suite.Equal("comment", body["field"])
}

func (suite *ComplianceHandlerTestSuite) TestTransitionAlertRequiresStatus() {
	suite.allow(models.ResourceComplianceAlert, models.ActionUpdate)
	alert := suite.ownAlert()

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/acme/compliance-alerts/"+alert.ID.String()+"/transitions", map[string]interface{}{
		"comment": "closing",
	})

	body := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "status_id is required")
	suite.Equal("status_id", body["field"])
}

func TestComplianceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComplianceHandlerTestSuite))
}
