//go:build unit

package api_test

import (
	"net/http"

	"vas-broker/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for AuthMiddleware: any bearer token authenticates as id with role.
func fakeAuth(id uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", id)
		c.Set("user_role", role)
		c.Next()
	}
}
