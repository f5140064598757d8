package employee

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/principal"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver principal.Resolver, rdb *redis.Client) {
	employees := r.Group("/employees")
	employees.Use(middleware.Authenticate(resolver))
	{
		employees.GET("", middleware.RequirePermissions("employee.read"), h.GetAll)
		employees.POST("", middleware.RequirePermissions("employee.write"), middleware.Idempotency(rdb), h.Create)
		employees.GET("/:id/reportees", middleware.RequirePermissions("employee.read"), h.GetReportees)
	}
}
