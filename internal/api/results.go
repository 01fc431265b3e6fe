package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"poker_tracker/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for recording a result
type AddResultRequest struct {
	PlayerID    uint     `json:"player_id" binding:"required"`    // Player the result belongs to
	FinalAmount *float64 `json:"final_amount" binding:"required"` // Cash-out amount, zero allowed
}

// ResultResponse is a result row joined with the player's name
type ResultResponse struct {
	PlayerID    uint    `json:"player_id"`    // Player ID
	PlayerName  string  `json:"player_name"`  // Player username
	FinalAmount float64 `json:"final_amount"` // Cash-out amount
}

// AddResultHandler records a player's cash-out for a session.
// The result row and the session-player join row are written together;
// neither carries a uniqueness constraint, so repeated submissions for the
// same player produce duplicate rows.
func AddResultHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := strconv.Atoi(c.Param("id")) // Parse the session ID
		if err != nil || sessionID < 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		var req AddResultRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Atomic insert of the result and its join row
		err = db.Transaction(func(tx *gorm.DB) error {
			result := domain.PlayerResult{
				SessionID:   uint(sessionID),  // Session the result belongs to
				PlayerID:    req.PlayerID,     // Player the result belongs to
				FinalAmount: *req.FinalAmount, // Cash-out amount
			}
			if err := tx.Create(&result).Error; err != nil {
				return err // Return error to rollback
			}
			sp := domain.SessionPlayer{
				SessionID: uint(sessionID), // Session side of the join
				PlayerID:  req.PlayerID,    // Player side of the join
			}
			if err := tx.Create(&sp).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"session_id": sessionID,
				"player_id":  req.PlayerID,
				"error":      err.Error(),
			}).Error("Failed to record result")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record result"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"session_id":   sessionID,
			"player_id":    req.PlayerID,
			"final_amount": *req.FinalAmount,
		}).Info("Result recorded")
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}

// ListResultsHandler returns all results for a session with player names
func ListResultsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := strconv.Atoi(c.Param("id")) // Parse the session ID
		if err != nil || sessionID < 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		var results []ResultResponse // Slice to hold joined rows
		if err := db.Table("player_results").
			Select("player_results.player_id, players.username AS player_name, player_results.final_amount").
			Joins("JOIN players ON players.id = player_results.player_id").
			Where("player_results.session_id = ?", sessionID).
			Scan(&results).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
			return
		}
		if results == nil {
			results = []ResultResponse{} // Empty array rather than null
		}
		c.JSON(http.StatusOK, results)
	}
}
