package middlewares

import (
	"fmt"
	"net/http"

	"github.com/Jabbcode/restaurante-app/utils"
	"github.com/gin-gonic/gin"
)

// RequireAdmin protege rutas que solo puede usar el rol admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if userRole != "admin" {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
