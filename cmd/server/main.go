package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	explorationapp "github.com/cosmic/backend/internal/application/exploration"
	"github.com/cosmic/backend/internal/infrastructure/config"
	"github.com/cosmic/backend/internal/infrastructure/logger"
	"github.com/cosmic/backend/internal/infrastructure/persistence"
	"github.com/cosmic/backend/internal/infrastructure/telemetry"
	"github.com/cosmic/backend/internal/interfaces/http/handler"
	"github.com/cosmic/backend/internal/interfaces/http/middleware"
	"github.com/cosmic/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.ConfigForEnvironment(cfg.App.Env, cfg.Log.Level))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Cosmic Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database
	sqlLog := logger.NewSQLLogger(log, logger.SQLLoggerConfig{
		Level:         cfg.Log.Level,
		SlowThreshold: cfg.Telemetry.DBSlowQueryThresh,
	})
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, sqlLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", db.Driver()))

	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		TracerProvider:  tp.Provider(),
	}, log)
	if err := dbTracing.Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
		log.Info("Database schema migrated")
	}

	engine, limiter := buildEngine(cfg, log, db, tp.Provider())
	if limiter != nil {
		go limiter.Run(ctx)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// buildEngine assembles the middleware chain and every route. The returned
// rate limiter is nil when rate limiting is disabled; the caller owns its
// cleanup loop.
func buildEngine(cfg *config.Config, log *zap.Logger, db *persistence.Database, tp trace.TracerProvider) (*gin.Engine, *middleware.RateLimiter) {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Warn("Invalid trusted proxies, trusting none", zap.Error(err))
		_ = engine.SetTrustedProxies(nil)
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		// Tracing wraps the access log so its entries carry trace_id
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			Enabled:        cfg.Telemetry.Enabled,
			TracerProvider: tp,
		}),
		middleware.SpanEnricher(),
		logger.GinMiddleware(log),
	)

	var metrics *middleware.HTTPMetrics
	if cfg.Metrics.Enabled {
		metrics = middleware.NewHTTPMetrics("cosmic", cfg.Metrics.Path)
		if sqlDB, err := db.SQLDB(); err == nil {
			metrics.Registry().MustRegister(collectors.NewDBStatsCollector(sqlDB, cfg.Database.Driver))
		}
		engine.Use(metrics.Middleware())
	}

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	security := middleware.DefaultSecurityConfig()
	security.HSTSEnabled = cfg.App.Env == "production"

	engine.Use(
		middleware.SecureWithConfig(security),
		middleware.CORSWithConfig(cors),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	// System endpoints
	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/", systemHandler.Home)
	engine.GET("/health", systemHandler.Health)
	if metrics != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	// Exploration domain
	scope := persistence.NewGormTransactionScope(db.DB)
	scientistHandler := handler.NewScientistHandler(explorationapp.NewScientistService(scope, log))
	planetHandler := handler.NewPlanetHandler(explorationapp.NewPlanetService(scope))
	missionHandler := handler.NewMissionHandler(explorationapp.NewMissionService(scope, log))

	router.NewRouter(engine).
		Register(handler.ScientistRoutes(scientistHandler)).
		Register(handler.PlanetRoutes(planetHandler)).
		Register(handler.MissionRoutes(missionHandler)).
		Setup()

	return engine, limiter
}
