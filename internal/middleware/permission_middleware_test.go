package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/principal"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequirePermissions_Allows(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)
	SetPrincipal(c, &principal.Principal{
		UserID:      "user-1",
		OrgID:       "org-1",
		Permissions: []string{"employee.read", "leave.read", "leave.apply"},
	})

	RequirePermissions("employee.read")(c)
	assert.False(t, c.IsAborted())
}

func TestRequirePermissions_RejectsMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)
	SetPrincipal(c, &principal.Principal{
		UserID:      "user-1",
		OrgID:       "org-1",
		Permissions: []string{"leave.read"},
	})

	RequirePermissions("employee.read", "employee.write")(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "employee.read")
	assert.Contains(t, w.Body.String(), "employee.write")
}

func TestRequirePermissions_RejectsUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

	RequirePermissions("employee.read")(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
