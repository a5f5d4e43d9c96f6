//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"collabase/internal/cache"
	"collabase/internal/database"
	"collabase/internal/handler"
	"collabase/internal/queue"
	"collabase/internal/repository"
	"collabase/internal/router"
	"collabase/internal/service"
	"collabase/pkg/auth"
	"collabase/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestFeedCacheTTL is the matchmaking feed cache TTL used in tests.
	TestFeedCacheTTL = 2 * time.Second
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer

	// Repositories (for direct database access in tests)
	UserRepo        repository.UserRepository
	TeamRepo        repository.TeamRepository
	JoinRequestRepo repository.JoinRequestRepository
	InviteRepo      repository.TeamInviteRepository

	// Services (for direct service access in tests)
	AuthService        service.AuthServicer
	UserService        service.UserServicer
	TeamService        service.TeamServicer
	JoinRequestService service.JoinRequestServicer
	InviteService      service.TeamInviteServicer
	MatchmakingService service.MatchmakingServicer

	// Auth
	JWTManager *auth.JWTManager

	// Queue
	CleanupQueue     *queue.MemoryQueue
	CleanupProcessor *queue.Processor
	cleanupService   *service.CleanupService
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	// Wrap the container connection so services get the transaction runner
	db := &database.MongoDB{Client: mongoDB.Client, Database: mongoDB.Database}
	database.EnsureIndexes(ctx, db.Database)

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)
	tokenStore := cache.NewRefreshTokenStore(redisCache)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)
	tokenGenerator := auth.NewRefreshTokenGenerator()

	// Repository layer
	userRepo := repository.NewUserRepository(db.Database)
	teamRepo := repository.NewTeamRepository(db.Database)
	joinRequestRepo := repository.NewJoinRequestRepository(db.Database)
	inviteRepo := repository.NewTeamInviteRepository(db.Database)

	// Cleanup queue and processor
	cleanupQueue := queue.NewMemoryQueue(100)
	cleanupService := service.NewCleanupService(inviteRepo, joinRequestRepo)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:        userRepo,
		TokenStore:      tokenStore,
		JWTManager:      jwtManager,
		TokenGenerator:  tokenGenerator,
		AccessTokenTTL:  TestAccessTokenExpiry,
		RefreshTokenTTL: TestRefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo, userRepo, db, cleanupQueue)
	joinRequestService := service.NewJoinRequestService(joinRequestRepo, teamRepo, userRepo, teamService, db)
	inviteService := service.NewTeamInviteService(inviteRepo, teamRepo, userRepo, teamService, db, cleanupQueue)
	matchmakingService := service.NewMatchmakingService(teamRepo, userRepo, redisCache, TestFeedCacheTTL)

	// Cleanup processor
	cleanupProcessor := queue.NewProcessor(cleanupQueue, cleanupService, 2)

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

	return &TestServer{
		Router:             r,
		MongoDB:            mongoDB,
		Redis:              redisContainer,
		UserRepo:           userRepo,
		TeamRepo:           teamRepo,
		JoinRequestRepo:    joinRequestRepo,
		InviteRepo:         inviteRepo,
		AuthService:        authService,
		UserService:        userService,
		TeamService:        teamService,
		JoinRequestService: joinRequestService,
		InviteService:      inviteService,
		MatchmakingService: matchmakingService,
		JWTManager:         jwtManager,
		CleanupQueue:       cleanupQueue,
		CleanupProcessor:   cleanupProcessor,
		cleanupService:     cleanupService,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartCleanupProcessor starts the cleanup processor.
func (ts *TestServer) StartCleanupProcessor(ctx context.Context) {
	ts.CleanupProcessor.Start(ctx)
}

// StopCleanupProcessor stops the cleanup processor and resets the queue.
// This ensures the queue can be used by subsequent tests.
func (ts *TestServer) StopCleanupProcessor() {
	ts.CleanupProcessor.Stop()
	// Reset the queue so it can be used again
	ts.CleanupQueue.Reset()
	// Create a new processor since the old one has shutdown state
	ts.CleanupProcessor = queue.NewProcessor(ts.CleanupQueue, ts.cleanupService, 2)
}
