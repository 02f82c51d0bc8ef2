package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-checkout-gateway/config"
	"storefront-checkout-gateway/internal/adapter/commerce"
	httpHandler "storefront-checkout-gateway/internal/adapter/http/handler"
	"storefront-checkout-gateway/internal/adapter/pixel"
	"storefront-checkout-gateway/internal/adapter/sink"
	"storefront-checkout-gateway/internal/adapter/stream"
	pgStorage "storefront-checkout-gateway/internal/adapter/storage/postgres"
	redisStorage "storefront-checkout-gateway/internal/adapter/storage/redis"
	"storefront-checkout-gateway/internal/core/ports"
	"storefront-checkout-gateway/internal/service"
	"storefront-checkout-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Storefront Checkout Gateway")

	ctx := context.Background()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	healthCheckers := []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)}

	// Optional PostgreSQL event journal
	var journal ports.EventJournal
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		journal = pgStorage.NewEventJournalRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected, event journal enabled")
	}

	// Data-layer queue backend
	var dataLayer ports.DataLayerSink
	switch cfg.Analytics.Queue {
	case "kafka":
		kq := stream.NewKafkaQueue(cfg.Analytics.KafkaBrokers, cfg.Analytics.KafkaTopic, logger.Component(log, "kafka"))
		defer kq.Close()
		dataLayer = kq
		log.Info().Strs("brokers", cfg.Analytics.KafkaBrokers).Str("topic", cfg.Analytics.KafkaTopic).Msg("Kafka data layer enabled")
	case "memory":
		dataLayer = sink.NewMemoryQueue(logger.Component(log, "memory-queue"))
		log.Warn().Msg("In-memory data layer enabled, events are not durable")
	default:
		dataLayer = redisStorage.NewDataLayerQueue(rdb, cfg.Analytics.RedisKey, logger.Component(log, "redis-queue"))
		log.Info().Str("key", cfg.Analytics.RedisKey).Msg("Redis data layer enabled")
	}

	// Pixel conversions client
	pixelSink := pixel.NewClient(cfg.Pixel, nil, logger.Component(log, "pixel"))

	// Visitor session registry: per-session tracking dedup state
	registry := service.NewSessionRegistry(dataLayer, pixelSink, journal, cfg.Session.TTL, cfg.Session.SweepInterval, log)
	defer registry.Close()

	// Storefront cart client
	cartClient := commerce.NewShopifyClient(cfg.Shopify, nil, logger.Component(log, "shopify"))

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CartClient:     cartClient,
		Registry:       registry,
		CheckoutCfg:    cfg.Checkout,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
