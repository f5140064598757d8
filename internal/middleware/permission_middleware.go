package middleware

import (
	"net/http"
	"strings"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequirePermissions gates a route on the principal holding every listed
// permission key. There is no OR form; a route needing alternatives gets
// registered twice instead.
func RequirePermissions(required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFromContext(c)
		if p == nil {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Authentication is required", nil)
			c.Abort()
			return
		}

		if missing := p.Missing(required...); len(missing) > 0 {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"Missing permissions: "+strings.Join(missing, ", "), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
