package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-scaler/internal/api/handlers"
	"recipe-scaler/internal/api/handlers/health"
	pricingHandler "recipe-scaler/internal/api/handlers/pricing"
	recipeHandler "recipe-scaler/internal/api/handlers/recipe"
	unitsHandler "recipe-scaler/internal/api/handlers/units"
	"recipe-scaler/internal/api/middleware"
	"recipe-scaler/internal/core/cache"
	recipeService "recipe-scaler/internal/core/recipe"
	"recipe-scaler/internal/core/scaler"
	"recipe-scaler/internal/core/units"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"
)

// SetupRouter builds the gin engine. store may be nil; ctx ends background work
// started by the middleware.
func SetupRouter(ctx context.Context, cfg *config.Config, store cache.Store) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	table := units.Default()
	recipeSvc := recipeService.NewService(scaler.New(table), store)

	healthH := health.NewHandler(cfg, store)
	router.GET("/health", healthH.HealthCheck)
	router.GET("/ready", healthH.ReadinessCheck)
	router.GET("/live", healthH.LivenessCheck)

	api := router.Group("/api/v1")
	api.Use(middleware.Deduplication(cfg.DedupWindow, ctx.Done()))
	{
		recipeH := recipeHandler.NewHandler(recipeSvc, cfg)
		api.POST("/recipe/parse", recipeH.HandleParse)

		unitsH := unitsHandler.NewHandler(table, cfg)
		unitsGroup := api.Group("/units")
		{
			unitsGroup.GET("", unitsH.HandleList)
			unitsGroup.POST("/convert", unitsH.HandleConvert)
			unitsGroup.POST("/scale", unitsH.HandleScale)
		}

		pricingH := pricingHandler.NewHandler(cfg)
		api.POST("/pricing/calculate", pricingH.HandleCalculate)
	}

	router.NoRoute(func(c *gin.Context) {
		handlers.RespondError(c, common.ErrNotFound, cfg.App.Debug)
	})

	common.LogInfo("Router setup completed",
		zap.Bool("cache_enabled", store != nil),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router
}
