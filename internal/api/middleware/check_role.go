package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/pkg/response"
)

// CheckRoles passes if the user holds at least one of the required roles.
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := c.GetStringSlice("roles")

		hasPermission := false
		for _, required := range requiredRoles {
			for _, userRole := range roles {
				if required == userRole {
					hasPermission = true
					break
				}
			}
			if hasPermission {
				break
			}
		}

		if !hasPermission {
			response.Fail(c, response.Forbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
