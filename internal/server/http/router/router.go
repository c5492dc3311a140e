package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/campusmart/internal/config"
	"github.com/polkiloo/campusmart/internal/metrics"
	"github.com/polkiloo/campusmart/internal/server/http/dto"
	"github.com/polkiloo/campusmart/internal/server/http/handlers"
	"github.com/polkiloo/campusmart/internal/server/http/middleware"
)

// HealthChecker reports whether backing services are reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Params collects router dependencies.
type Params struct {
	fx.In

	Facade  handlers.MarketFacade
	Logger  *slog.Logger
	Config  *config.Config
	Metrics *metrics.Metrics
	Health  HealthChecker
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger, p.Metrics))
	engine.Use(middleware.CORS(p.Config.CORSAllowedOrigins))
	engine.Use(middleware.DecompressRequest(middleware.DefaultBodyLimit))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	engine.GET("/healthz", healthz(p.Health))
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	authHandler := handlers.NewAuthHandler(p.Facade)
	verificationHandler := handlers.NewVerificationHandler(p.Facade)
	cartHandler := handlers.NewCartHandler(p.Facade)
	merchantHandler := handlers.NewMerchantHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)

	api := engine.Group("/api")
	api.GET("/merchants/:id/products", merchantHandler.Catalog)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(p.Facade))
	userAuth.POST("/phone/verification", verificationHandler.Request)
	userAuth.POST("/phone/verification/confirm", verificationHandler.Confirm)
	userAuth.GET("/cart", cartHandler.Get)
	userAuth.POST("/cart/items", cartHandler.Add)
	userAuth.PATCH("/cart/items/:id", cartHandler.Update)
	userAuth.DELETE("/cart/items/:id", cartHandler.Remove)
	userAuth.POST("/cart/handoff", cartHandler.Handoff)

	merchant := api.Group("/merchant")
	merchant.Use(middleware.AuthRequired(p.Facade))
	merchant.POST("", merchantHandler.Open)
	merchant.POST("/products", merchantHandler.AddProduct)
	merchant.GET("/products", merchantHandler.Products)
	merchant.POST("/orders", orderHandler.Record)
	merchant.GET("/orders", orderHandler.List)
	merchant.GET("/orders/:id", orderHandler.Get)
	merchant.GET("/orders/:id/history", orderHandler.History)
	merchant.PATCH("/orders/:id/status", orderHandler.Transition)

	return engine, nil
}

func healthz(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checker.HealthCheck(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
