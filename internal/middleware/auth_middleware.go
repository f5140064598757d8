package middleware

import (
	"net/http"
	"strings"

	"go-hrms/internal/principal"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Authenticate resolves the bearer token into a Principal and stores it in
// the gin context. Roles and permissions come from the database, not the
// token, so grant changes apply on the very next request.
func Authenticate(resolver principal.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		p, err := resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set(principalKey, p)
		c.Set("user_id", p.UserID)
		c.Set("org_id", p.OrgID)
		if p.HasEmployee() {
			c.Set("employee_id", *p.EmployeeID)
		}

		c.Request = c.Request.WithContext(contextutil.WithUserID(c.Request.Context(), p.UserID))
		c.Next()
	}
}

// PrincipalFromContext returns the Principal set by Authenticate, or nil.
func PrincipalFromContext(c *gin.Context) *principal.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*principal.Principal)
	return p
}

// SetPrincipal places a Principal in the context. Exposed for handler tests.
func SetPrincipal(c *gin.Context, p *principal.Principal) {
	c.Set(principalKey, p)
	c.Set("user_id", p.UserID)
	c.Set("org_id", p.OrgID)
	if p.HasEmployee() {
		c.Set("employee_id", *p.EmployeeID)
	}
}
