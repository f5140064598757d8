package leave

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/principal"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver principal.Resolver, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.Authenticate(resolver))
	{
		leaves.POST("/requests", middleware.RequirePermissions("leave.apply"), middleware.Idempotency(rdb), h.Apply)
		leaves.GET("/requests", middleware.RequirePermissions("leave.read"), h.GetRequests)
		leaves.POST("/requests/:id/decision", middleware.RequirePermissions("leave.approve"), h.Decide)
		leaves.GET("/balances/me", middleware.RequirePermissions("leave.read"), h.GetMyBalances)
	}
}
