package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/auth"
	"github.com/zahraaAed/Douluxme-Backend/models"
)

const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "role"
)

// Authenticate extracts the signed credential from the "token" cookie, or
// from a Bearer header for clients that cannot use cookies, and attaches
// the asserted identity to the request context.
func Authenticate(c *gin.Context) {
	tokenString, err := c.Cookie("token")
	if err != nil || tokenString == "" {
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return
	}

	userID, role, err := auth.VerifyToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}

	c.Set(ContextUserIDKey, userID)
	c.Set(ContextRoleKey, role)
	c.Next()
}

// Authorize rejects with 403 when the attached role is not in the allowed
// set. It assumes Authenticate already ran.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok || !RoleAllowed(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

// RoleAllowed reports whether actual is in the allowed set.
func RoleAllowed(allowed []models.Role, actual models.Role) bool {
	for _, r := range allowed {
		if r == actual {
			return true
		}
	}
	return false
}

func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func CurrentRole(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ContextRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}
