package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventrental/api/routes"
	"eventrental/internal/clock"
	"eventrental/internal/notifications"
	"eventrental/internal/registry"
	"eventrental/internal/scheduling"
	"eventrental/internal/shared/config"
	"eventrental/internal/shared/middleware"
	"eventrental/internal/store"
	"eventrental/internal/venues"
	"eventrental/pkg/cache"
	"eventrental/pkg/logger"
	"eventrental/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)
	appLogger = logger.NewWithWriter(os.Stdout, cfg.LogLevel)
	logger.SetDefault(appLogger)

	if cfg.IsProduction() && os.Getenv("JWT_SECRET") == "" {
		appLogger.Error("JWT_SECRET is not set, refusing to start with the default admin secret")
		os.Exit(1)
	}

	// Booking notifications
	var notifier notifications.Notifier = notifications.NoopNotifier{}
	if cfg.Kafka.Enabled {
		producerConfig := notifications.DefaultKafkaProducerConfig()
		producerConfig.Brokers = cfg.Kafka.Brokers
		producerConfig.BookingTopic = cfg.Kafka.BookingTopic

		kafkaNotifier, err := notifications.NewKafkaBookingNotifier(producerConfig)
		if err != nil {
			appLogger.Error("Failed to initialize booking notifier", slog.Any("error", err))
			appLogger.Info("Continuing without booking notifications")
		} else {
			notifier = kafkaNotifier
		}
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			appLogger.Error("Error closing booking notifier", slog.Any("error", err))
		}
	}()

	// Catalog, scheduler and registry, rebuilt from the record file
	catalog := venues.DefaultCatalog()
	scheduler := scheduling.NewScheduler(catalog, clock.NewSystem())
	reg := registry.New(catalog, scheduler, store.NewFileStore(),
		registry.WithLogger(appLogger),
		registry.WithNotifier(notifier),
	)
	loaded := reg.Reload(cfg.Store.Path)
	appLogger.InfoWithContext(context.Background(), "Events loaded from record file", map[string]interface{}{
		"path":   cfg.Store.Path,
		"events": len(loaded),
	})

	// Redis backs the calendar cache and the rate limiter
	var cacheService cache.Service
	if cfg.Redis.Enabled {
		if err := cache.Init(cache.NewConfig(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)); err != nil {
			appLogger.Error("Failed to connect to Redis, calendar cache disabled", slog.Any("error", err))
		} else {
			cacheService = cache.NewService(cache.Client())
			defer func() {
				if err := cache.Close(); err != nil {
					appLogger.Error("Error closing Redis", slog.Any("error", err))
				}
			}()
		}
	}

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && cache.IsInitialized() {
		rateLimiter = ratelimit.NewRateLimiter(cache.Client(), &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.Window,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			PublicRequests:  cfg.RateLimit.PublicRequests,
			QuoteRequests:   cfg.RateLimit.QuoteRequests,
			BookingRequests: cfg.RateLimit.BookingRequests,
			AdminRequests:   cfg.RateLimit.AdminRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.Window),
			slog.Int("booking_requests", cfg.RateLimit.BookingRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	router := setupRouter(cfg, reg, cacheService, rateLimiter)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_base", fmt.Sprintf("http://localhost:%s%s", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.Bool("redis_cache", cacheService != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
			slog.Bool("kafka_notifications", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, reg *registry.Registry, cacheService cache.Service, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(middleware.RequestLogger(appLogger), gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	appRouter := routes.NewRouter(cfg, reg, cacheService)
	appRouter.SetupRoutes(engine)

	return engine
}
