package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"epass-backend/docs"
	"epass-backend/internal/epass"
	"epass-backend/internal/platform/config"
	"epass-backend/internal/platform/logger"
	"epass-backend/internal/platform/metrics"
	"epass-backend/internal/registration"
	"epass-backend/internal/visitor"
)

const MsgRunning = "Visitor backend API is running."

func newRouter(
	cfg *config.Config,
	lg zerolog.Logger,
	gatherer prometheus.Gatherer,
	m *metrics.Metrics,
	svc *visitor.Service,
	renderer *epass.Renderer,
	storage *epass.Storage,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestID(), logger.RequestLogger(lg))
	_ = r.SetTrustedProxies(nil)
	r.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, MsgRunning) })
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", metrics.Handler(gatherer))

	if cfg.Version != "" {
		docs.SwaggerInfo.Version = cfg.Version
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// logo.png and map.png
	r.Static("/public", storage.PublicDir())

	registration.NewHandler(svc, renderer, m, lg, cfg.Server.PublicBaseURL).RegisterRoutes(r)
	epass.RegisterRoutes(r, storage, m, lg)
	return r
}

// corsConfig allows the configured origins with credentials, or any origin without
// credentials when none are configured (browsers refuse credentials with a wildcard origin).
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", logger.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", logger.HeaderRequestID},
		AllowMethods:  []string{"GET", "HEAD", "POST", "OPTIONS"},
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	return c
}
