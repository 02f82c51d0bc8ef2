package handler

import (
	"storefront-checkout-gateway/config"
	"storefront-checkout-gateway/internal/adapter/http/middleware"
	redisStore "storefront-checkout-gateway/internal/adapter/storage/redis"
	"storefront-checkout-gateway/internal/core/ports"
	"storefront-checkout-gateway/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CartClient     ports.CartClient
	Registry       *service.SessionRegistry
	CheckoutCfg    config.CheckoutConfig
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.SessionID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies Redis and, if enabled, PostgreSQL)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	checkoutHandler := NewCheckoutHandler(deps.CartClient, deps.Registry, deps.CheckoutCfg, deps.Logger)
	v1.POST("/checkout", rl("checkout"), checkoutHandler.InitiateCheckout)

	trackHandler := NewTrackHandler(deps.Registry)
	track := v1.Group("/track")
	{
		track.POST("/add-to-cart", rl("track"), trackHandler.TrackAddToCart)
		track.POST("/view", rl("track"), trackHandler.TrackView)
		track.POST("/page-view", rl("track"), trackHandler.TrackPageView)
	}

	return r
}
