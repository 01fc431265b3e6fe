package router

import (
	"poker_tracker/internal/api"        // HTTP handlers
	"poker_tracker/internal/middleware" // Auth middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// New wires every route of the tracker API onto a gin engine
func New(db *gorm.DB, rdb *redis.Client, jwtSecret, uploadDir string) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Uploaded avatars are served statically
	r.Static("/static/uploads", uploadDir)

	apiGroup := r.Group("/api")
	{
		// Public routes
		apiGroup.GET("/leaderboard", api.LeaderboardHandler(db, rdb))
		apiGroup.GET("/players", api.ListPlayersHandler(db))
		apiGroup.POST("/players", api.CreatePlayerHandler(db, rdb))
		apiGroup.GET("/session/:id/results", api.ListResultsHandler(db))
		apiGroup.POST("/session/:id/results", api.AddResultHandler(db))

		// Authentication routes
		auth := apiGroup.Group("/auth")
		{
			auth.POST("/register", api.RegisterHandler(db, jwtSecret))
			auth.POST("/login", api.LoginHandler(db, jwtSecret))
			auth.POST("/logout", api.LogoutHandler())
			auth.GET("/check", middleware.AuthMiddleware(jwtSecret), api.CheckHandler(db))
		}

		// Session routes (authenticated)
		sessions := apiGroup.Group("/sessions", middleware.AuthMiddleware(jwtSecret))
		{
			sessions.GET("", api.ListSessionsHandler(db))
			sessions.POST("", api.CreateSessionHandler(db))
			sessions.DELETE("/:id", api.DeleteSessionHandler(db))
		}

		// Profile routes (authenticated)
		profile := apiGroup.Group("/profile", middleware.AuthMiddleware(jwtSecret))
		{
			profile.POST("/avatar", api.UploadAvatarHandler(db, uploadDir))
			profile.GET("/stats/:user_id", api.UserStatsHandler(db))
		}

		// Friendship routes (authenticated)
		friends := apiGroup.Group("/friends", middleware.AuthMiddleware(jwtSecret))
		{
			friends.GET("", api.GetFriendsHandler(db))
			friends.GET("/pending", api.GetPendingHandler(db))
			friends.POST("/add", api.AddFriendHandler(db))
			friends.POST("/accept/:id", api.AcceptFriendHandler(db))
			friends.POST("/reject/:id", api.RejectFriendHandler(db))
		}
		apiGroup.GET("/users/search", middleware.AuthMiddleware(jwtSecret), api.SearchUsersHandler(db))
	}

	return r
}
