package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"poker_tracker/internal/domain" // Importing domain models
	"poker_tracker/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// leaderboardCacheKey is the Redis key for the cached top-10 leaderboard
const leaderboardCacheKey = "leaderboard:top10"

// leaderboardLimit caps how many players the leaderboard returns
const leaderboardLimit = 10

// LeaderboardHandler returns the top players ordered by score descending.
// The response is cached in Redis for 60 seconds; player creation
// invalidates the cache.
func LeaderboardHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []PlayerResponse // Cached leaderboard rows
		found, err := utils.GetCache(ctx, rdb, leaderboardCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached leaderboard
			return
		}
		var players []domain.Player // Slice to hold players
		if err := db.Order("score desc").Limit(leaderboardLimit).Find(&players).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
			return
		}
		resp := make([]PlayerResponse, len(players))
		for i, p := range players {
			resp[i] = toPlayerResponse(p)
		}
		_ = utils.SetCache(ctx, rdb, leaderboardCacheKey, resp, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, resp)
	}
}
