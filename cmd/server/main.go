package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"carrent/internal/config"
	handlers "carrent/internal/handlers/shared"
	"carrent/internal/middleware"
	"carrent/internal/repositories/mongodb"
	"carrent/internal/services"
	"carrent/pkg/cache"
	"carrent/pkg/database"
	"carrent/pkg/logger"
	"carrent/pkg/maps"
	"carrent/pkg/sms"
	"carrent/pkg/storage"
	"carrent/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := newLogger(cfg)

	// Connect to MongoDB and run index migrations
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	cacheService := newCacheService(cfg, appLogger)
	smsProvider := newSMSProvider(cfg, appLogger)
	storageProvider := newStorageProvider(cfg, appLogger)
	mapsProvider := newMapsProvider(cfg, appLogger)

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database, cacheService)
	carRepo := mongodb.NewCarRepository(db.Database, cacheService)
	bookingRepo := mongodb.NewBookingRepository(db.Database, cacheService)

	// Services
	policy, err := services.ParseDateRangePolicy(cfg.Rental.DateRangePolicy)
	if err != nil {
		appLogger.WithError(err).Warn("Falling back to reject date range policy")
		policy = services.DateRangeReject
	}
	pricingService := services.NewPricingService(policy)
	authService := services.NewAuthService(userRepo, cacheService, smsProvider, cfg.Security, cfg.SMS.DefaultFrom, appLogger)
	bookingService := services.NewBookingService(bookingRepo, carRepo, userRepo, pricingService, mapsProvider, appLogger)
	carService := services.NewCarService(carRepo, storageProvider, appLogger)
	userService := services.NewUserService(userRepo, appLogger)
	statsService := services.NewStatsService(carRepo, userRepo, bookingRepo, cacheService, appLogger)

	// Seed data
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seed(seedCtx, cfg.Rental, userRepo, carRepo, appLogger); err != nil {
		appLogger.WithError(err).Warn("Seeding failed")
	}
	cancel()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	carHandler := handlers.NewCarHandler(carService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(statsService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		appLogger.Fatalf("Invalid trusted proxies: %v", err)
	}

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.VisitorCounterMiddleware(statsService))

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler, cfg.Security.JWTSecret)
		routes.SetupCarRoutes(v1, carHandler, cfg.Security.JWTSecret)
		routes.SetupBookingRoutes(v1, bookingHandler, cfg.Security.JWTSecret)
		routes.SetupUserRoutes(v1, userHandler, adminHandler, cfg.Security.JWTSecret)
	}

	// Locally stored car images are served straight from disk
	if cfg.Storage.Provider == "local" {
		router.Static("/uploads", cfg.Storage.Local.BasePath)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Infof("Starting server on port %d", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
}

func newLogger(cfg *config.Config) *logger.Logger {
	format := "text"
	if config.IsProduction() {
		format = "json"
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: format,
		Output: "stdout",
		Colors: config.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return appLogger
}

// newCacheService connects to Redis; a development deployment without Redis
// falls back to the in-process cache.
func newCacheService(cfg *config.Config, appLogger *logger.Logger) services.CacheService {
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		if config.IsProduction() {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		appLogger.WithError(err).Warn("Redis unavailable, using in-memory cache")
		return services.NewMemoryCacheService()
	}
	return services.NewCacheService(redisCache)
}

func newSMSProvider(cfg *config.Config, appLogger *logger.Logger) sms.SMSProvider {
	switch cfg.SMS.Provider {
	case "twilio":
		return sms.NewTwilioProvider(cfg.SMS.Twilio.AccountSID, cfg.SMS.Twilio.AuthToken, cfg.SMS.Twilio.FromNumber)
	case "aws-sns":
		provider, err := sms.NewAWSSNSProvider(cfg.SMS.AWS.Region)
		if err != nil {
			appLogger.Fatalf("Failed to initialize SNS: %v", err)
		}
		return provider
	default:
		appLogger.Warn("SMS provider is local, codes are written to the log")
		return sms.NewLocalProvider()
	}
}

func newStorageProvider(cfg *config.Config, appLogger *logger.Logger) storage.StorageProvider {
	switch cfg.Storage.Provider {
	case "s3":
		provider, err := storage.NewAWSS3Storage(cfg.Storage.AWS.Region, cfg.Storage.AWS.Bucket, cfg.Storage.AWS.CDNDomain)
		if err != nil {
			appLogger.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		return provider
	default:
		provider, err := storage.NewLocalStorage(cfg.Storage.Local.BasePath, cfg.Storage.Local.BaseURL)
		if err != nil {
			appLogger.Fatalf("Failed to initialize local storage: %v", err)
		}
		return provider
	}
}

func newMapsProvider(cfg *config.Config, appLogger *logger.Logger) maps.MapsProvider {
	if !cfg.Maps.Enabled || cfg.Maps.GoogleMaps.APIKey == "" {
		return nil
	}
	provider, err := maps.NewGoogleMapsProvider(cfg.Maps.GoogleMaps.APIKey)
	if err != nil {
		appLogger.WithError(err).Warn("Maps client unavailable, bookings are stored without coordinates")
		return nil
	}
	return provider
}
