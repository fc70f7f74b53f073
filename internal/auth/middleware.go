package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides session token middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireViewer admits any valid session (viewer or admin)
func (m *AuthMiddleware) RequireViewer() gin.HandlerFunc {
	return m.require(RoleViewer)
}

// RequireAdmin admits admin sessions only
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(RoleAdmin)
}

func (m *AuthMiddleware) require(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if !RoleAllows(claims.Role, role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), "role", claims.Role))
		c.Next()
	}
}
