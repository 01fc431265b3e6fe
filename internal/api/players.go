package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"poker_tracker/internal/domain" // Importing domain models
	"poker_tracker/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Request struct for player creation
type CreatePlayerRequest struct {
	Username string `json:"username" binding:"required"` // Player name must be provided
	Avatar   string `json:"avatar"`                      // Optional avatar path
}

// PlayerResponse is the public view of a leaderboard player
type PlayerResponse struct {
	ID       uint   `json:"id"`       // Player ID
	Username string `json:"username"` // Player name
	Score    int    `json:"score"`    // Leaderboard score
	Avatar   string `json:"avatar"`   // Avatar path
}

// toPlayerResponse maps a player row to its public representation
func toPlayerResponse(p domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:       p.ID,
		Username: p.Username,
		Score:    p.Score,
		Avatar:   p.Avatar,
	}
}

// ListPlayersHandler returns every player on the roster
func ListPlayersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var players []domain.Player // Slice to hold players
		if err := db.Find(&players).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
			return
		}
		resp := make([]PlayerResponse, len(players))
		for i, p := range players {
			resp[i] = toPlayerResponse(p)
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CreatePlayerHandler adds a flat player record to the roster
func CreatePlayerHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePlayerRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		player := domain.Player{
			Username: req.Username, // Player name
			Avatar:   req.Avatar,   // Avatar path
		}
		if err := db.Create(&player).Error; err != nil {
			// Most likely a duplicate username
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player already exists"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"player_id": player.ID,
			"username":  player.Username,
		}).Info("Player created")
		// Invalidate the cached leaderboard
		_ = utils.DeleteCache(context.Background(), rdb, leaderboardCacheKey)
		c.JSON(http.StatusOK, toPlayerResponse(player))
	}
}
