package audit

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/principal"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver principal.Resolver) {
	logs := r.Group("/audit")
	logs.Use(middleware.Authenticate(resolver))
	{
		logs.GET("/logs", middleware.RequirePermissions("employee.read"), h.GetLogs)
	}
}
