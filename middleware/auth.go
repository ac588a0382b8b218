package middleware

import (
	"net/http"
	"strings"

	"foodapp-api/access"
	"foodapp-api/auth"
	"foodapp-api/models"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthRequired validates the bearer token and injects the caller identity into context
func AuthRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		id, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Auth required"})
			return
		}
		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// Identity extracts the caller identity set by AuthRequired
func Identity(c *gin.Context) (access.Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return access.Identity{}, false
	}
	id, ok := val.(access.Identity)
	return id, ok
}

// MustIdentity is Identity for handlers mounted behind AuthRequired
func MustIdentity(c *gin.Context) access.Identity {
	id, _ := Identity(c)
	return id
}
