package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cuponera/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxAccountIDKey = "account_id"
	ctxRoleKey      = "account_role"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAccountIDKey, claims.AccountID)
		c.Set(ctxRoleKey, jwt.Role(claims.Role))
		c.Set("jwt_claims", map[string]any{
			"account_id": claims.AccountID.String(),
			"role":       claims.Role,
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth().
func (m *AuthMiddleware) RequireRole(role jwt.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if current != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := accountID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (jwt.Role, bool) {
	accountRole, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := accountRole.(jwt.Role)
	return role, ok
}
