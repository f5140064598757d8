package app

import (
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp loads settings, opens the shared connections and registers every
// module's routes on the router. It returns the settings and the audit
// writer so the caller can pass them to the server lifecycle.
func BuildApp(router *gin.Engine) (*config.Settings, *Registry, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := connection.ConnectGORMWithRetry(settings, 5)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(settings.RedisAddr, 5)
	if err != nil {
		zap.L().Warn("redis unavailable, idempotency and caching degraded", zap.Error(err))
		rdb = nil
	}

	corsConfig := cors.DefaultConfig()
	if len(settings.CORSAllowOrigins) == 1 && settings.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = settings.CORSAllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Idempotency-Key")
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID())

	registry := registerModules(router, settings, gormDB, sqlDB, rdb)

	bootstrap.RegisterHealthRoutes(router, sqlDB)

	return settings, registry, nil
}
