package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"collabase/internal/cache"
	"collabase/internal/config"
	"collabase/internal/database"
	"collabase/internal/handler"
	"collabase/internal/queue"
	"collabase/internal/repository"
	"collabase/internal/router"
	"collabase/internal/service"
	"collabase/internal/validator"
	"collabase/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Collabase API
// @version         1.0
// @description     A hackathon team formation API built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	database.EnsureIndexes(indexCtx, mongoDB.Database)
	indexCancel()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()
	tokenStore := cache.NewRefreshTokenStore(redisCache)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)
	tokenGenerator := auth.NewRefreshTokenGenerator()

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	joinRequestRepo := repository.NewJoinRequestRepository(mongoDB.Database)
	inviteRepo := repository.NewTeamInviteRepository(mongoDB.Database)

	// Cleanup queue and processor
	cleanupQueue := queue.NewMemoryQueue(cfg.CleanupQueue)
	cleanupService := service.NewCleanupService(inviteRepo, joinRequestRepo)
	cleanupProcessor := queue.NewProcessor(cleanupQueue, cleanupService, cfg.QueueWorkers)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:        userRepo,
		TokenStore:      tokenStore,
		JWTManager:      jwtManager,
		TokenGenerator:  tokenGenerator,
		AccessTokenTTL:  cfg.AccessTokenExpiry,
		RefreshTokenTTL: cfg.RefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo, userRepo, mongoDB, cleanupQueue)
	joinRequestService := service.NewJoinRequestService(joinRequestRepo, teamRepo, userRepo, teamService, mongoDB)
	inviteService := service.NewTeamInviteService(inviteRepo, teamRepo, userRepo, teamService, mongoDB, cleanupQueue)
	matchmakingService := service.NewMatchmakingService(teamRepo, userRepo, redisCache, cfg.FeedCacheTTL)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService)
	joinRequestHandler := handler.NewJoinRequestHandler(joinRequestService)
	inviteHandler := handler.NewTeamInviteHandler(inviteService)
	matchmakingHandler := handler.NewMatchmakingHandler(matchmakingService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		TeamHandler:        teamHandler,
		JoinRequestHandler: joinRequestHandler,
		InviteHandler:      inviteHandler,
		MatchmakingHandler: matchmakingHandler,
		TokenManager:       jwtManager,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start cleanup processor
	cleanupProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop cleanup processor (waits for workers)
	log.Println("Stopping cleanup processor...")
	cleanupProcessor.Stop()

	log.Println("Server shutdown complete")
}
