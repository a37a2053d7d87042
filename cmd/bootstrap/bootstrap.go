package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediscript-server/config"
	deliveryHttp "mediscript-server/internal/delivery/http"
	"mediscript-server/internal/delivery/http/handler"
	"mediscript-server/internal/delivery/http/middleware"
	"mediscript-server/internal/infrastructure/cache"
	"mediscript-server/internal/infrastructure/database"
	"mediscript-server/internal/infrastructure/mail"
	"mediscript-server/internal/infrastructure/storage"
	"mediscript-server/internal/repository"
	"mediscript-server/internal/service"
	"mediscript-server/internal/usecase"
	"mediscript-server/pkg/validator"

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

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	logrus.Info("Database schema migrated")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, redisClient)

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
	customValidator := validator.NewValidator()

	// Collaborator services
	sessions := service.NewRedisSessionStore(redisClient, cfg.Session.TTL)
	mailer := mail.NewSMTPMailer(cfg.SMTP)
	files := storage.NewLocalFileStore(cfg.Upload.Dir)

	// Repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientProfileRepository()
	doctorRepo := repository.NewDoctorProfileRepository()
	applicationRepo := repository.NewApplicationRepository()
	medicineRepo := repository.NewMedicineRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	cartRepo := repository.NewRefillCartRepository()
	requestRepo := repository.NewRefillRequestRepository()
	resetRepo := repository.NewPasswordResetRepository()

	log := logrus.StandardLogger()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientRepo, resetRepo, sessions, mailer)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, medicineRepo, prescriptionRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, medicineRepo, patientRepo)
	cartUsecase := usecase.NewRefillCartUsecase(db, log, cartRepo, prescriptionRepo)
	requestUsecase := usecase.NewRefillRequestUsecase(db, log, requestRepo, cartRepo, medicineRepo)
	applicationUsecase := usecase.NewApplicationUsecase(db, log, applicationRepo, userRepo, doctorRepo, files)
	patientProfileUsecase := usecase.NewPatientProfileUsecase(db, log, patientRepo, prescriptionRepo, requestRepo, cartRepo, files)
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, doctorRepo, files)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, doctorRepo, patientRepo, medicineRepo, applicationRepo, requestRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	medicineHandler := handler.NewMedicineHandler(catalogUsecase, customValidator)
	cartHandler := handler.NewRefillCartHandler(cartUsecase, customValidator)
	requestHandler := handler.NewRefillRequestHandler(requestUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, catalogUsecase, customValidator)
	applicationHandler := handler.NewApplicationHandler(applicationUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientProfileUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase)

	// Middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessions)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		medicineHandler,
		cartHandler,
		requestHandler,
		prescriptionHandler,
		applicationHandler,
		patientHandler,
		doctorHandler,
		adminHandler,
		sessionMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
