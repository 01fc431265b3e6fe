package api

import (
	"fmt"           // Filename formatting
	"math"          // Win rate rounding
	"net/http"      // HTTP status codes
	"os"            // Filesystem operations
	"path/filepath" // Path handling
	"strconv"       // String conversion
	"strings"       // String manipulation
	"time"          // Timestamp formatting

	"poker_tracker/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// maxAvatarSize is the upload limit for avatar images (16MB)
const maxAvatarSize = 16 << 20

// allowedAvatarExts is the avatar file extension allow-list
var allowedAvatarExts = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// RecentSession is one line of a player's recent session history
type RecentSession struct {
	Date        string  `json:"date"`          // Session date, YYYY-MM-DD
	BuyInAmount float64 `json:"buy_in_amount"` // Buy-in amount
	ProfitLoss  float64 `json:"profit_loss"`   // Final amount minus buy-in
	Notes       string  `json:"notes"`         // Session notes
}

// StatsResponse aggregates a player's session outcomes
type StatsResponse struct {
	TotalSessions  int             `json:"total_sessions"`  // Number of joined sessions
	TotalProfit    float64         `json:"total_profit"`    // Running profit across counted sessions
	WinRate        float64         `json:"win_rate"`        // Winning sessions percentage, one decimal
	RecentSessions []RecentSession `json:"recent_sessions"` // Per-session breakdown
}

// UploadAvatarHandler stores an uploaded avatar image for the caller.
// The previous avatar file is removed once the new one is in place.
func UploadAvatarHandler(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Authenticated user
		file, err := c.FormFile("avatar")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
			return
		}
		if file.Filename == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
			return
		}
		// Enforce the extension allow-list
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
		if !allowedAvatarExts[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
			return
		}
		// Enforce the size limit
		if file.Size > maxAvatarSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		var user domain.User // Load the caller's account
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
			return
		}
		// Namespace the stored file by user and upload time
		filename := fmt.Sprintf("%d_%s_%s", userID,
			time.Now().Format("20060102_150405"), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to store avatar")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
			return
		}
		// Remove the previous avatar file if one exists
		if user.Avatar != "" && user.Avatar != "default.png" {
			old := filepath.Join(uploadDir, user.Avatar)
			if _, err := os.Stat(old); err == nil {
				_ = os.Remove(old)
			}
		}
		if err := db.Model(&user).Update("avatar", filename).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"avatar":  filename,
		}).Info("Avatar updated")
		c.JSON(http.StatusOK, gin.H{"avatar": filename})
	}
}

// UserStatsHandler aggregates profit/loss and win rate for a player.
// The path parameter is interpreted as a roster player ID, and the
// breakdown covers the first ten joined sessions in join order. Both
// quirks are carried over from the original tracker.
func UserStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, err := strconv.Atoi(c.Param("user_id")) // Player the stats are for
		if err != nil || playerID < 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		var sessions []domain.PokerSession // Sessions the player took part in
		if err := db.
			Joins("JOIN session_players ON session_players.session_id = poker_sessions.id").
			Where("session_players.player_id = ?", playerID).
			Find(&sessions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		totalSessions := len(sessions) // Denominator for the win rate
		totalProfit := 0.0             // Running profit
		winningSessions := 0           // Sessions with positive profit
		recent := []RecentSession{}    // Per-session breakdown

		counted := sessions
		if len(counted) > 10 {
			counted = counted[:10] // First ten in join order
		}
		for _, s := range counted {
			var result domain.PlayerResult // First recorded result for the pair
			if err := db.Where("session_id = ? AND player_id = ?", s.ID, playerID).
				First(&result).Error; err != nil {
				continue // Session without a recorded result
			}
			profit := result.FinalAmount - s.BuyInAmount
			totalProfit += profit
			if profit > 0 {
				winningSessions++
			}
			recent = append(recent, RecentSession{
				Date:        s.Date.Format(sessionDateFormat), // Session date
				BuyInAmount: s.BuyInAmount,                    // Buy-in amount
				ProfitLoss:  profit,                           // Profit or loss
				Notes:       s.Notes,                          // Session notes
			})
		}
		winRate := 0.0
		if totalSessions > 0 {
			// Percentage of winning sessions, rounded to one decimal
			winRate = math.Round(float64(winningSessions)/float64(totalSessions)*1000) / 10
		}
		c.JSON(http.StatusOK, StatsResponse{
			TotalSessions:  totalSessions, // Number of joined sessions
			TotalProfit:    totalProfit,   // Running profit
			WinRate:        winRate,       // Win rate percentage
			RecentSessions: recent,        // Per-session breakdown
		})
	}
}
