package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-listing/config"
	deliveryHttp "hotel-listing/internal/delivery/http"
	"hotel-listing/internal/delivery/http/handler"
	"hotel-listing/internal/delivery/http/middleware"
	"hotel-listing/internal/infrastructure/cache"
	"hotel-listing/internal/infrastructure/database"
	"hotel-listing/internal/infrastructure/telemetry"
	"hotel-listing/internal/repository"
	"hotel-listing/internal/service"
	"hotel-listing/internal/usecase"
	"hotel-listing/pkg/jwt"
	"hotel-listing/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config        *config.Config
	Log           *logrus.Logger
	DB            *gorm.DB
	RedisClient   *redis.Client
	Server        *http.Server
	shutdownTrace telemetry.ShutdownFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App)
	app.Log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB, gormLogLevel(cfg.App))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.WithField("driver", cfg.DB.Driver).Info("Database connected successfully")

	if cfg.DB.Migrate {
		if err := database.Migrate(db, cfg.DB); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		app.Log.Info("Database migrated successfully")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize tracing
	shutdownTrace, err := telemetry.InitTracing(context.Background(), cfg.Telemetry, app.Log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.shutdownTrace = shutdownTrace

	// Initialize all layers
	server, err := initializeServer(cfg, app.Log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func gormLogLevel(cfg config.AppConfig) logger.LogLevel {
	if cfg.IsDevelopment() {
		return logger.Info
	}
	return logger.Warn
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Initialize JWT service and token store
	jwtService := jwt.NewJWTService(cfg.JWT)
	tokenStore := cache.NewTokenStore(redisClient)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	uow := repository.NewUnitOfWork(db)
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	hotelUsecase := usecase.NewHotelUsecase(uow, log, auditService)
	countryUsecase := usecase.NewCountryUsecase(uow, log)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, tokenStore)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Hotel:     handler.NewHotelHandler(hotelUsecase, customValidator, log),
		Country:   handler.NewCountryHandler(countryUsecase, log),
		CountryV2: handler.NewCountryV2Handler(db, log),
		Auth:      handler.NewAuthHandler(authUsecase, customValidator, jwtService),
		AuditLog:  handler.NewAuditLogHandler(auditLogUsecase),
		Health:    handler.NewHealthHandler(sqlDB),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins...)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimit)

	var metricsMiddleware *middleware.MetricsMiddleware
	if cfg.Telemetry.MetricsEnabled {
		reg := telemetry.NewRegistry()
		metricsMiddleware, err = middleware.NewMetricsMiddleware(reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		handlers.Metrics = telemetry.MetricsHandler(reg)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, metricsMiddleware, rateLimitMiddleware, log)
	httpHandler := corsMiddleware.Handle(router.Setup())

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           telemetry.InstrumentHandler(httpHandler, "hotel-listing"),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down gracefully
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
		}
		if app.shutdownTrace != nil {
			if err := app.shutdownTrace(shutdownCtx); err != nil {
				app.Log.Errorf("Failed to flush traces: %v", err)
			}
		}
		return nil
	})

	err := g.Wait()
	app.Close()
	app.Log.Info("Server shutdown complete")
	return err
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
