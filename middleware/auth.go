package middleware

import (
	"net/http"
	"strings"

	"slotbook/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ActorIDKey    = "actorID"
	ActorRolesKey = "actorRoles"
)

// JWTAuthMiddleware resolves the authenticated actor (id + role set) from the
// bearer token and stores it in the request context. Token issuance belongs
// to the external identity provider; this only validates.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		actorID, roles, err := utils.ExtractActorFromToken(tokenString)
		if err != nil || actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set(ActorIDKey, actorID)
		c.Set(ActorRolesKey, roles)
		c.Next()
	}
}

// ActorID returns the authenticated actor's id from the gin context.
func ActorID(c *gin.Context) string {
	return c.GetString(ActorIDKey)
}
