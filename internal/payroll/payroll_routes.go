package payroll

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/principal"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver principal.Resolver) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.Authenticate(resolver))
	{
		payroll.GET("/cycles", middleware.RequirePermissions("employee.read"), h.GetCycles)
	}
}
