package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"governance-portal-backend/internal/auth"
	"governance-portal-backend/internal/database/models"
	"governance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var testPrincipal = &service.Principal{
	UserID:      uuid.MustParse("7b1f3c2e-5d4a-4f6b-9c8d-1e2f3a4b5c6d"),
	Email:       "inspector@example.com",
	DisplayName: "Ina Inspector",
}

// withPrincipal stands in for the bearer token middleware
func withPrincipal(principal *service.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal != nil {
			auth.SetPrincipal(c, principal)
		}
		c.Next()
	}
}

func memberOf(teamID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		TeamID: teamID,
		UserID: testPrincipal.UserID,
		RoleID: uuid.New(),
	}
}

func rawRequest(router http.Handler, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}
