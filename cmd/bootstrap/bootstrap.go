package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/config"
	deliveryHttp "github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/http"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/http/handler"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/http/middleware"
	domainRepo "github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/repository"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/infrastructure/cache"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/infrastructure/database"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/repository"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/service"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/usecase"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/pkg/metrics"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const metricsNamespace = "pethealth"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	SQLite      *sql.DB
	RedisClient *redis.Client
	SlotRepo    domainRepo.SlotRepository
	Metrics     *metrics.Metrics
	Server      *http.Server

	VetProfiles usecase.VetProfileUsecase
	UserProfile usecase.UserProfileUsecase
}

// New creates a new App with storage and use cases wired. Stored state is
// not read until Load is called.
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	// Initialize storage
	slotRepo, err := app.openStorage(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.SlotRepo = slotRepo

	// Initialize metrics
	app.Metrics = metrics.NewMetrics(metricsNamespace)

	// Initialize usecases
	auditService := service.NewAuditService(app.Log)
	app.VetProfiles = usecase.NewVetProfileUsecase(app.Log, slotRepo, cfg.Storage.ProfilesSlot, auditService, app.Metrics)
	app.UserProfile = usecase.NewUserProfileUsecase(app.Log, slotRepo, cfg.Storage.UserProfileSlot, auditService)

	return app, nil
}

// setupLogger configures the standard logrus logger. Logs go to stderr so
// CLI commands can print results on stdout.
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid log level %q, falling back to info", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// openStorage connects the configured backend and returns its slot repository
func (app *App) openStorage(cfg *config.Config) (domainRepo.SlotRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		app.Log.Info("Database connected successfully")
		return repository.NewPostgresSlotRepository(db), nil

	case config.StorageDriverRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Log.Info("Redis connected successfully")
		return repository.NewRedisSlotRepository(redisClient), nil

	case config.StorageDriverMemory:
		app.Log.Warn("Using in-memory storage, profiles will not survive a restart")
		return repository.NewMemorySlotRepository(), nil

	default:
		db, err := database.NewSQLiteConnection(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		app.SQLite = db
		app.Log.Infof("SQLite store opened at %s", cfg.Storage.SQLitePath)
		return repository.NewSQLiteSlotRepository(db), nil
	}
}

// Load reads both registries from storage. Duplicate vet profiles left by
// older data are removed and the count is returned.
func (app *App) Load(ctx context.Context) (int, error) {
	removed, err := app.VetProfiles.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load vet profiles: %w", err)
	}
	if err := app.UserProfile.Load(ctx); err != nil {
		return removed, fmt.Errorf("failed to load user profile: %w", err)
	}
	return removed, nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	customValidator := validator.NewValidator()

	// Initialize handlers
	vetProfileHandler := handler.NewVetProfileHandler(app.VetProfiles, customValidator)
	userProfileHandler := handler.NewUserProfileHandler(app.UserProfile, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(app.Config.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(app.Log)
	metricsMiddleware := middleware.NewMetricsMiddleware(app.Metrics)

	// Initialize router
	router := deliveryHttp.NewRouter(vetProfileHandler, userProfileHandler, corsMiddleware, loggingMiddleware, metricsMiddleware, app.Metrics)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", app.Config.App.Port),
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run loads stored state, starts the HTTP server and handles graceful shutdown
func (app *App) Run(ctx context.Context) error {
	if _, err := app.Load(ctx); err != nil {
		return err
	}

	app.Server = app.initializeServer()

	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal or a server failure
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var serveErr error
	select {
	case <-quit:
		app.Log.Info("Shutting down server...")
	case serveErr = <-errCh:
		app.Log.Errorf("Failed to start server: %v", serveErr)
	}

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
	return serveErr
}

// Close closes all connections (database, sqlite, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.SQLite != nil {
		app.SQLite.Close()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
