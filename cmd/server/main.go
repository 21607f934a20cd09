package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"referral-hub.backend/internal/config"
	"referral-hub.backend/internal/infrastructure/ai"
	"referral-hub.backend/internal/infrastructure/jobs"
	"referral-hub.backend/internal/infrastructure/repositories"
	"referral-hub.backend/internal/interfaces/http/handlers"
	"referral-hub.backend/internal/interfaces/http/middleware"
	"referral-hub.backend/internal/usecases"
	"referral-hub.backend/pkg/jwt"
	"referral-hub.backend/pkg/logger"
	"referral-hub.backend/pkg/redis"
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
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

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Redis when configured. Without it, session-based login is
	// disabled and only bearer tokens work.
	var sessionStore handlers.SessionStore
	var sessionResolver middleware.SessionResolver
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		store, err := newSessionStore(cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
		sessionStore = store
		sessionResolver = store
		logger.Info(context.Background(), "Redis initialized")
	} else {
		log.Println("REDIS_URL not set, session login disabled")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository()
	linkRepo := repositories.NewReferralLinkRepository()
	clickRepo := repositories.NewClickRepository()
	catalog := repositories.NewAchievementCatalog()

	// Initialize usecases
	achievementUsecase := usecases.NewAchievementUsecase(catalog)
	authUsecase := usecases.NewAuthUsecase(userRepo, achievementUsecase, jwtService)
	referralUsecase := usecases.NewReferralUsecase(linkRepo, clickRepo, cfg.Referral.LinkBaseURL)
	statsUsecase := usecases.NewStatsUsecase(userRepo, linkRepo)
	seedUsecase := usecases.NewSeedUsecase(userRepo, linkRepo, clickRepo, achievementUsecase, cfg.Referral.LinkBaseURL)

	var completionClient usecases.CompletionClient
	if client := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model); client != nil {
		completionClient = client
	}
	chatUsecase := usecases.NewChatUsecase(completionClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore, cfg.JWT.AccessExpiry)
	achievementHandler := handlers.NewAchievementHandler(achievementUsecase, authUsecase)
	referralHandler := handlers.NewReferralHandler(referralUsecase, authUsecase)
	statsHandler := handlers.NewStatsHandler(statsUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase, authUsecase)
	demoHandler := handlers.NewDemoHandler(seedUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionResolver)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retentionJob := jobs.NewClickRetentionJob(clickRepo, cfg.Referral.ClickRetention, cfg.Referral.ClickRetentionInterval)
	go retentionJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		achievementHandler: achievementHandler,
		referralHandler:    referralHandler,
		statsHandler:       statsHandler,
		chatHandler:        chatHandler,
		demoHandler:        demoHandler,
		authMiddleware:     authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		retentionJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("Referral Hub Backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
