package attendance

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/principal"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver principal.Resolver) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.Authenticate(resolver))
	{
		attendance.POST("/clock-in", h.ClockIn)
		attendance.POST("/clock-out", h.ClockOut)
		attendance.GET("/sessions", middleware.RequirePermissions("employee.read"), h.GetSessions)
	}
}
