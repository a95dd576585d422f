package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nutriplan/diet-service/config"
	_ "github.com/nutriplan/diet-service/docs"
	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/database"
	"github.com/nutriplan/diet-service/internal/handlers"
	"github.com/nutriplan/diet-service/internal/lp"
	"github.com/nutriplan/diet-service/internal/middleware"
	"github.com/nutriplan/diet-service/internal/optimizer"
	"github.com/nutriplan/diet-service/internal/telemetry"
	"github.com/nutriplan/diet-service/internal/workers"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting diet service")

	ctx := context.Background()

	cleanup, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}
	defer cleanup(ctx)

	loader, err := buildCatalogLoader(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to configure catalog source")
	}
	defer database.Close()

	foodCatalog := catalog.New(loader)
	if err := foodCatalog.Load(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load food catalog")
	}
	logger.Info().Int("foods", foodCatalog.Len()).Msg("Food catalog loaded")

	engine := optimizer.NewEngine(
		foodCatalog,
		lp.NewSimplexSolver(),
		&cfg.Optimizer,
		optimizer.NewMetricsRecorder(),
	)
	handlers.Init(foodCatalog, engine)

	refresher := workers.NewCatalogRefresher(foodCatalog, 1*time.Hour)
	go refresher.Start(ctx)

	if cfg.Logging.Level == "info" || cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	setupMiddleware(router, logger)

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.RequestsPerSecond),
		BurstSize:         cfg.RateLimit.Burst,
	}))
	{
		api.GET("/foods", handlers.ListFoods)
		api.GET("/foods/:name", handlers.GetFood)
		api.GET("/requirements", handlers.GetRequirements)
		api.POST("/optimize", handlers.Optimize)
	}

	internal := router.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	internal.Use(middleware.ServiceRateLimitMiddleware(50, 100))
	{
		internal.GET("/health", handlers.HealthCheck)
		internal.POST("/catalog/reload", handlers.ReloadCatalog)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	refresher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// buildCatalogLoader wires the configured catalog source. The Postgres
// source also brings up the shared connection pool.
func buildCatalogLoader(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (catalog.Loader, error) {
	switch cfg.Catalog.Source {
	case "csv":
		return catalog.NewCSVLoader(cfg.Catalog.Path), nil
	case "xlsx":
		loader := catalog.NewXLSXLoader(cfg.Catalog.Path)
		loader.SheetName = cfg.Catalog.Sheet
		return loader, nil
	case "postgres":
		dbURL := config.GetDatabaseURL()
		if dbURL == "" {
			return nil, fmt.Errorf("catalog source is postgres but DATABASE_URL is not set")
		}
		if err := database.Connect(
			ctx,
			dbURL,
			cfg.Database.MaxConnections,
			cfg.Database.MinConnections,
			cfg.Database.MaxConnLifetime,
			cfg.Database.MaxConnIdleTime,
		); err != nil {
			return nil, err
		}
		logger.Info().Msg("Database connected")
		return catalog.NewPostgresLoader(database.Pool()), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "diet-service").Logger()
	return &logger
}

func setupMiddleware(router *gin.Engine, logger *zerolog.Logger) {
	router.Use(middleware.RequestIDMiddleware())
	router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		logger.Info().
			Str("request_id", middleware.RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg("HTTP request")
	})
}
