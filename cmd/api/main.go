package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/lemerle/medassist/cmd/mainconfig"
	"github.com/lemerle/medassist/internal/app/bootstrap"
	"github.com/lemerle/medassist/internal/appointments"
	appconfig "github.com/lemerle/medassist/internal/config"
	"github.com/lemerle/medassist/internal/contact"
	"github.com/lemerle/medassist/internal/content"
	httpmiddleware "github.com/lemerle/medassist/internal/http/middleware"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/internal/reviews"
	"github.com/lemerle/medassist/pkg/logging"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.NewWithOptions(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger.Info("starting medassist API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	catalog := locale.Default()
	if err := catalog.Validate(); err != nil {
		logger.Error("message catalog incomplete", "error", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		logger.Error("invalid BUSINESS_TIMEZONE", "timezone", cfg.BusinessTimezone, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := bootstrap.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Content pages read TEXT[] columns through lib/pq's array scanner.
	contentDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open content database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = contentDB.Close() }()

	awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	metricsHandler, siteMetrics := setupMetrics()

	var cache content.Cache
	if redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true); redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		cache = content.NewRedisCache(redisClient, "medassist:content")
	}

	chatClient, closeChat, err := bootstrap.BuildChatClient(ctx, cfg, awsCfg, logger)
	if err != nil {
		logger.Error("failed to configure chat", "error", err)
		os.Exit(1)
	}
	defer closeChat()

	limiter := httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	handler := buildHandler(cfg, deps{
		Logger:       logger,
		Catalog:      catalog,
		Metrics:      siteMetrics,
		Location:     loc,
		Appointments: appointments.NewPostgresRepository(pool),
		Contact:      contact.NewPostgresRepository(pool),
		Reviews:      reviews.NewPostgresRepository(pool),
		Content:      content.NewSQLRepository(contentDB),
		Cache:        cache,
		Chat:         chatClient,
		Email:        bootstrap.BuildEmailSender(cfg, awsCfg, logger),
		DB:           pool,
		RateLimiter:  limiter,
		MetricsPage:  metricsHandler,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
