package jwt

import (
	"strings"

	"NeuroLink/pkg/back"
	"NeuroLink/pkg/util/myjwt"
	"NeuroLink/pkg/xerr"

	"github.com/gin-gonic/gin"
)

// Auth resolves the authenticated display name and role from a bearer token.
// Token issuance itself lives outside this service.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			back.Error(c, xerr.Unauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := myjwt.ParseToken(tokenString)
		if err != nil {
			back.Error(c, xerr.Unauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("name", claims.Name)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group to one role; Auth must run first.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			back.Error(c, xerr.Forbidden, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
