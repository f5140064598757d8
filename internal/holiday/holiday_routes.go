package holiday

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/principal"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver principal.Resolver) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.Authenticate(resolver))
	{
		holidays.GET("", middleware.RequirePermissions("employee.read"), h.GetAll)
	}
}
