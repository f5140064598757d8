package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHealthRoutes wires the liveness and readiness endpoints. The
// root endpoint never touches a dependency so load balancers can probe it
// even during a database outage.
func RegisterHealthRoutes(router *gin.Engine, sqlDB *sql.DB) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Healthy"})
	})

	router.GET("/healthz", func(c *gin.Context) {
		if sqlDB == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "skipped"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := sqlDB.PingContext(ctx); err != nil {
			zap.L().Warn("health ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "reachable"})
	})
}
