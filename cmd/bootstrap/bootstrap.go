package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smashlabs-backend/config"
	deliveryHttp "smashlabs-backend/internal/delivery/http"
	"smashlabs-backend/internal/delivery/http/handler"
	"smashlabs-backend/internal/delivery/http/middleware"
	"smashlabs-backend/internal/infrastructure/cache"
	"smashlabs-backend/internal/infrastructure/database"
	"smashlabs-backend/internal/repository"
	"smashlabs-backend/internal/service"
	"smashlabs-backend/internal/usecase"
	"smashlabs-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before accepting traffic
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(db)
	corporateRepo := repository.NewCorporateBookingRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	ticketRepo := repository.NewContactTicketRepository(db)

	// Initialize services
	notifier := service.NewMailer(cfg.SMTP, log)
	reportCache := service.NewReportCache(redisClient, log)

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(log, bookingRepo, notifier)
	corporateUsecase := usecase.NewCorporateBookingUsecase(log, corporateRepo, notifier)
	registrationUsecase := usecase.NewRegistrationUsecase(log, registrationRepo, notifier)
	newsletterUsecase := usecase.NewNewsletterUsecase(log, subscriberRepo)
	contactUsecase := usecase.NewContactUsecase(log, ticketRepo, notifier)
	reportUsecase := usecase.NewReportUsecase(log, bookingRepo, corporateRepo, registrationRepo, subscriberRepo, ticketRepo, reportCache)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	corporateHandler := handler.NewCorporateBookingHandler(corporateUsecase, customValidator)
	registrationHandler := handler.NewRegistrationHandler(registrationUsecase, customValidator)
	newsletterHandler := handler.NewNewsletterHandler(newsletterUsecase, customValidator)
	contactHandler := handler.NewContactHandler(contactUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		bookingHandler,
		corporateHandler,
		registrationHandler,
		newsletterHandler,
		contactHandler,
		reportHandler,
		corsMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
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
