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

	"agro-chain.backend/internal/config"
	"agro-chain.backend/internal/infrastructure/jobs"
	"agro-chain.backend/internal/infrastructure/repositories"
	"agro-chain.backend/internal/infrastructure/wallet"
	"agro-chain.backend/internal/interfaces/http/handlers"
	"agro-chain.backend/internal/interfaces/http/middleware"
	"agro-chain.backend/internal/usecases"
	"agro-chain.backend/pkg/jwt"
	"agro-chain.backend/pkg/logger"
	"agro-chain.backend/pkg/redis"
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
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

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
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	cropRepo := repositories.NewCropRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	connectionRequestRepo := repositories.NewConnectionRequestRepository(db)
	connectionRepo := repositories.NewConnectionRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	snapshotSource := repositories.NewSnapshotSource(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize wallet provider
	walletProvider := wallet.NewProvider()

	// Initialize usecases
	settlementEngine := usecases.NewSettlementEngine(userRepo, transactionRepo, cfg.Settlement)
	activityUsecase := usecases.NewActivityUsecase(activityRepo, connectionRepo)
	lifecycleUsecase := usecases.NewLifecycleUsecase(cropRepo, userRepo, orderRepo, transactionRepo, uow, settlementEngine, activityUsecase)
	connectionUsecase := usecases.NewConnectionUsecase(connectionRequestRepo, connectionRepo, userRepo, uow, activityUsecase)
	messageUsecase := usecases.NewMessageUsecase(messageRepo, connectionRepo)
	marketplaceUsecase := usecases.NewMarketplaceUsecase(cropRepo, userRepo, transactionRepo, orderRepo)
	authUsecase := usecases.NewAuthUsecase(userRepo, walletProvider, jwtService, sessionStore, cfg.Balances)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	cropHandler := handlers.NewCropHandler(lifecycleUsecase, marketplaceUsecase)
	connectionHandler := handlers.NewConnectionHandler(connectionUsecase)
	messageHandler := handlers.NewMessageHandler(messageUsecase)
	activityHandler := handlers.NewActivityHandler(activityUsecase)
	userHandler := handlers.NewUserHandler(marketplaceUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshotJob := jobs.NewStateSnapshotJob(snapshotSource, cfg.Snapshot.Path, cfg.Snapshot.Interval)
	go snapshotJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		cropHandler:       cropHandler,
		connectionHandler: connectionHandler,
		messageHandler:    messageHandler,
		activityHandler:   activityHandler,
		userHandler:       userHandler,
		authMiddleware:    authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		snapshotJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Agro-Chain Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
