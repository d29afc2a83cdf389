package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"salones-api/internal/domain/user"
	"salones-api/internal/pkg/jwt"
	"salones-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxUsuarioIDKey = "usuario_id"
	ctxRoleKey      = "usuario_role"
)

var roleHierarchy = map[user.Role]int{
	user.RoleCliente:  1,
	user.RoleEmpleado: 2,
	user.RoleAdmin:    3,
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
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

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		role, err := user.NewRole(claims.Role)
		if err != nil {
			slog.Warn("Token carries unknown role", "role", claims.Role)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUsuarioIDKey, claims.UsuarioID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"usuario_id": fmt.Sprintf("%d", claims.UsuarioID),
			"role":       string(role),
		})
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			// Should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
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

func GetUsuarioID(c *gin.Context) (int64, bool) {
	usuarioID, exists := c.Get(ctxUsuarioIDKey)
	if !exists {
		return 0, false
	}

	id, ok := usuarioID.(int64)
	return id, ok
}

func GetRole(c *gin.Context) (user.Role, bool) {
	usuarioRole, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := usuarioRole.(user.Role)
	return role, ok
}

// GetActor assembles the authenticated caller from context values set by RequireAuth.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := GetUsuarioID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := GetRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{UsuarioID: id, Role: role}, true
}
