package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"alumni-connect.backend/internal/config"
	"alumni-connect.backend/internal/infrastructure/jobs"
	"alumni-connect.backend/internal/infrastructure/repositories"
	"alumni-connect.backend/internal/interfaces/http/handlers"
	"alumni-connect.backend/internal/interfaces/http/middleware"
	"alumni-connect.backend/internal/usecases"
	"alumni-connect.backend/pkg/email"
	"alumni-connect.backend/pkg/google"
	"alumni-connect.backend/pkg/jwt"
	"alumni-connect.backend/pkg/logger"
	"alumni-connect.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	accountRepo := repositories.NewAuthAccountRepository(db)
	userRepo := repositories.NewUserRepository(db)
	verificationRepo := repositories.NewEmailVerificationRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	participantRepo := repositories.NewParticipantRepository(db)
	archiveRepo := repositories.NewArchiveRepository(db)
	activityRepo := repositories.NewActivityLogRepository(db)
	uow := repositories.NewUnitOfWork(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	mailer := email.NewService(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		Sender:   cfg.SMTP.Sender,
	})
	if !mailer.Enabled() {
		log.Println("SMTP not configured, outgoing mail disabled")
	}

	googleVerifier := google.NewVerifier(cfg.Google.ClientID)

	var googleExchanger google.CodeExchanger
	if cfg.Google.ClientSecret != "" {
		googleExchanger = google.NewExchanger(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	}

	// Usecases
	recorder := usecases.NewActivityRecorder(activityRepo)
	authUsecase := usecases.NewAuthUsecase(accountRepo, userRepo, verificationRepo, uow, jwtService, sessionStore, googleVerifier, mailer, cfg.Server.FrontendURL, cfg.JWT.RefreshExpiry)
	userUsecase := usecases.NewUserUsecase(userRepo)
	directoryUsecase := usecases.NewDirectoryUsecase(userRepo)
	eventUsecase := usecases.NewEventUsecase(eventRepo, participantRepo, uow, recorder)
	registrationUsecase := usecases.NewRegistrationUsecase(eventRepo, participantRepo, userRepo, uow, recorder, mailer)
	archiveUsecase := usecases.NewArchiveUsecase(eventRepo, participantRepo, archiveRepo, uow, recorder)
	exportUsecase := usecases.NewExportUsecase(eventRepo, participantRepo, archiveRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, eventRepo, participantRepo, archiveRepo, recorder, mailer)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase, googleExchanger, cfg.Server.FrontendURL)
	profileHandler := handlers.NewProfileHandler(userUsecase, authUsecase)
	directoryHandler := handlers.NewDirectoryHandler(directoryUsecase)
	eventHandler := handlers.NewEventHandler(eventUsecase)
	registrationHandler := handlers.NewRegistrationHandler(registrationUsecase)
	archiveHandler := handlers.NewArchiveHandler(archiveUsecase)
	exportHandler := handlers.NewExportHandler(exportUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase, recorder)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)
	profileMiddleware := middleware.LoadProfile(userRepo)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncJob := jobs.NewEventStatusSyncJob(eventRepo, cfg.Jobs.StatusSyncInterval)
	go syncJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r, cfg.Server.FrontendURL)
	registerHealthRoute(r, sqlDB)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		directoryHandler:    directoryHandler,
		eventHandler:        eventHandler,
		registrationHandler: registrationHandler,
		archiveHandler:      archiveHandler,
		exportHandler:       exportHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
		profileMiddleware:   profileMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down server...")
		syncJob.Stop()
		cancel()
	}()

	log.Printf("AlumniConnect backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
