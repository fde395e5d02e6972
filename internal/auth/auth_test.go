package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"governance-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	tokens, err := NewTokenService("test-signing-key", "governance-portal-backend", time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestNewTokenService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewTokenService("  ", "issuer", time.Hour)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("default ttl", func(t *testing.T) {
		tokens, err := NewTokenService("secret", "issuer", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, tokens.ttl)
	})
}

func TestJWTOperations(t *testing.T) {
	tokens := newTestTokenService(t)
	userID := uuid.New()

	token, err := tokens.GenerateJWT(userID, "jane.doe@example.com", "Jane Doe")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "jane.doe@example.com", claims.Email)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "governance-portal-backend", claims.Issuer)

	principal := claims.Principal()
	require.NotNil(t, principal)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, "Jane Doe", principal.Name())
}

func TestValidateJWTRejects(t *testing.T) {
	tokens := newTestTokenService(t)
	userID := uuid.New()

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.ValidateJWT("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewTokenService("other-key", "governance-portal-backend", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateJWT(userID, "a@example.com", "")
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		other, err := NewTokenService("test-signing-key", "someone-else", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateJWT(userID, "a@example.com", "")
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := newTestTokenService(t)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := expired.GenerateJWT(userID, "a@example.com", "")
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("subject is not a user id", func(t *testing.T) {
		claims := &AuthClaims{
			Email: "a@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "governance-portal-backend",
				Subject:   "12345",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String(), Issuer: "governance-portal-backend"}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := newTestTokenService(t)
	middleware := NewAuthMiddleware(tokens)
	userID := uuid.New()

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id": principal.UserID.String(),
			"email":   principal.Email,
			"request": logger.RequestID(c.Request.Context()),
		})
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := tokens.GenerateJWT(userID, "jane.doe@example.com", "Jane Doe")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "jane.doe@example.com", body["email"])
	})

	testCases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"invalid token", "Bearer not-a-token"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestGetPrincipalWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	principal, ok := GetPrincipal(c)

	assert.False(t, ok)
	assert.Nil(t, principal)
}

func TestValidateTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := newTestTokenService(t)
	handler := NewAuthHandler(tokens)
	router := gin.New()
	router.POST("/api/auth/validate", handler.ValidateToken)

	token, err := tokens.GenerateJWT(uuid.New(), "jane.doe@example.com", "Jane Doe")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response AuthValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Valid)
	assert.Equal(t, "jane.doe@example.com", response.Claims.Email)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer tampered")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
