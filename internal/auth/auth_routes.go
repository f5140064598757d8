package auth

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/principal"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver principal.Resolver) {
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), h.Login)
		group.POST("/refresh", h.Refresh)
		group.GET("/me", middleware.Authenticate(resolver), h.Me)
	}
}
