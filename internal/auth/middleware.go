package auth

import (
	"net/http"
	"strings"

	"governance-portal-backend/internal/logger"
	"governance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// TokenValidator verifies bearer tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates the bearer token and stores the principal in the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		claims, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		principal := claims.Principal()
		c.Set(principalKey, principal)
		c.Request = c.Request.WithContext(logger.WithUser(c.Request.Context(), principal.UserID.String()))
		c.Next()
	}
}

// GetPrincipal returns the authenticated caller stored by RequireAuth
func GetPrincipal(c *gin.Context) (*service.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*service.Principal)
	return principal, ok && principal != nil
}

// SetPrincipal stores principal in the context the way RequireAuth does
func SetPrincipal(c *gin.Context, principal *service.Principal) {
	c.Set(principalKey, principal)
}

func bearerToken(header string) (string, bool) {
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
