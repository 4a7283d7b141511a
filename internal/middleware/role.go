package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the client has the required role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get client info from context (set by OAuth2Auth middleware)
		clientID, exists := c.Get("clientID")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "Client not authenticated"))
			return
		}

		// Get role from JWT claims
		userRole := c.GetString("userRole")
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Client role not found in token"))
			return
		}

		if userRole != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Insufficient permissions",
				map[string]interface{}{
					"required_role": requiredRole,
					"client_role":   userRole,
					"client_id":     clientID,
				}))
			return
		}

		c.Next()
	}
}
