package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"whalebyte.core/internal/config"
	"whalebyte.core/internal/infrastructure/jobs"
	"whalebyte.core/internal/infrastructure/repositories"
	"whalebyte.core/internal/interfaces/navigation"
	"whalebyte.core/internal/usecases"
	"whalebyte.core/pkg/jwt"
	"whalebyte.core/pkg/logger"
	"whalebyte.core/pkg/passphrase"
	"whalebyte.core/pkg/redis"
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
	newTokenStore = redis.NewTokenStore
	getStdDB      = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Core.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Core.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database not available: %w", err)
	}
	log.Println("Connected to PostgreSQL via GORM")

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	sphereRepo := repositories.NewSphereRepository(db)
	contentRepo := repositories.NewContentRepository(db)
	voteRepo := repositories.NewVoteRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	governanceRepo := repositories.NewGovernanceRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize token store
	tokenStore, err := newTokenStore(cfg.Security.TokenEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize token store: %w", err)
	}

	// Initialize passphrase generator
	generator, err := passphrase.NewGenerator(cfg.Onboarding.PassphraseWords)
	if err != nil {
		return fmt.Errorf("failed to initialize passphrase generator: %w", err)
	}

	// Initialize usecases
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo, userRepo)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	provisionUsecase := usecases.NewProvisionUsecase(userRepo, walletRepo, uow, jwtService)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, uow, notificationUsecase)
	sphereUsecase := usecases.NewSphereUsecase(sphereRepo, contentRepo, chatRepo, walletUsecase, uow)
	voteUsecase := usecases.NewVoteUsecase(voteRepo, contentRepo, uow)
	moderationUsecase := usecases.NewModerationUsecase(reportRepo, userRepo, uow, notificationUsecase)
	governanceUsecase := usecases.NewGovernanceUsecase(governanceRepo, sphereRepo, uow, notificationUsecase)
	chatUsecase := usecases.NewChatUsecase(chatRepo, notificationUsecase)

	// Session store and the flows driving it
	session := usecases.NewSessionUsecase(authUsecase, tokenStore, cfg.Core.DeviceID, cfg.JWT.RefreshExpiry)
	onboarding := usecases.NewOnboardingUsecase(generator, provisionUsecase, session, cfg.Onboarding.MaxAttempts)

	// Navigation controller follows the session from here on
	controller := navigation.NewController(session)

	// Resume the previous session, if any tokens survived the restart
	if err := session.Restore(context.Background()); err != nil {
		logger.Warn(context.Background(), "session restore failed", zap.Error(err))
	}
	logger.Info(context.Background(), "navigation root settled", zap.String("root", string(controller.Root())))

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepJob := jobs.NewMessageSweepJob(chatUsecase, 0)
	go sweepJob.Start(ctx)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("spherectl core running (env %s, device %s)", cfg.Core.Env, cfg.Core.DeviceID)

	if cfg.Core.Env == "development" {
		runWalkthrough(ctx, session, onboarding, controller,
			sphereUsecase, voteUsecase, moderationUsecase, governanceUsecase, chatUsecase, walletUsecase)
	}

	<-quit
	log.Println("Shutting down...")
	sweepJob.Stop()
	return nil
}
