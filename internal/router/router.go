// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "collabase/swagger" // Import generated swagger docs

	"collabase/internal/handler"
	"collabase/internal/middleware"
	"collabase/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	TeamHandler        *handler.TeamHandler
	JoinRequestHandler *handler.JoinRequestHandler
	InviteHandler      *handler.TeamInviteHandler
	MatchmakingHandler *handler.MatchmakingHandler
	TokenManager       auth.TokenManager
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.TokenManager))
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.TokenManager))
		{
			users.GET("/me", cfg.UserHandler.GetMe)
			users.POST("/me/onboarding", cfg.UserHandler.CompleteOnboarding)
			users.GET("/:userId", cfg.UserHandler.GetUser)
		}

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(middleware.Auth(cfg.TokenManager))
		{
			teams.POST("", cfg.TeamHandler.CreateTeam)

			teamWithID := teams.Group("/:teamId")
			{
				teamWithID.GET("", cfg.TeamHandler.GetTeam)
				teamWithID.DELETE("", cfg.TeamHandler.DeleteTeam)
				teamWithID.POST("/finalize", cfg.TeamHandler.FinalizeTeam)
				teamWithID.PUT("/links", cfg.TeamHandler.UpdateLinks)
				teamWithID.POST("/leave", cfg.TeamHandler.LeaveTeam)
				teamWithID.DELETE("/members/:userId", cfg.TeamHandler.RemoveMember)

				teamWithID.GET("/join-requests", cfg.JoinRequestHandler.ListForTeam)

				teamWithID.POST("/invites", cfg.InviteHandler.Create)
				teamWithID.GET("/invites", cfg.InviteHandler.ListForTeam)
			}
		}

		// Join request routes (protected)
		joinRequests := v1.Group("/join-requests")
		joinRequests.Use(middleware.Auth(cfg.TokenManager))
		{
			joinRequests.POST("", cfg.JoinRequestHandler.Create)
			joinRequests.GET("/mine", cfg.JoinRequestHandler.ListMine)
			joinRequests.POST("/:requestId/accept", cfg.JoinRequestHandler.Accept)
			joinRequests.POST("/:requestId/reject", cfg.JoinRequestHandler.Reject)
		}

		// Invite routes for the invited user (protected)
		invites := v1.Group("/invites")
		invites.Use(middleware.Auth(cfg.TokenManager))
		{
			invites.GET("/mine", cfg.InviteHandler.ListMine)
			invites.POST("/:inviteId/accept", cfg.InviteHandler.Accept)
			invites.POST("/:inviteId/decline", cfg.InviteHandler.Decline)
		}

		// Matchmaking routes (protected)
		matchmaking := v1.Group("/matchmaking")
		matchmaking.Use(middleware.Auth(cfg.TokenManager))
		{
			matchmaking.GET("/feed", cfg.MatchmakingHandler.TeamFeed)
			matchmaking.GET("/matches", cfg.MatchmakingHandler.TopMatches)
			matchmaking.GET("/candidates", cfg.MatchmakingHandler.Candidates)
		}
	}

	return r
}
