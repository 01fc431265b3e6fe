package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Date parsing

	"poker_tracker/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// sessionDateFormat is the wire format for session dates
const sessionDateFormat = "2006-01-02"

// Request struct for session creation
type CreateSessionRequest struct {
	Date        string  `json:"date" binding:"required"` // Session date, YYYY-MM-DD
	BuyInAmount float64 `json:"buy_in_amount"`           // Optional buy-in amount
	Notes       string  `json:"notes"`                   // Optional notes
}

// SessionResponse is the public view of a poker session
type SessionResponse struct {
	ID          uint    `json:"id"`            // Session ID
	Date        string  `json:"date"`          // Session date, YYYY-MM-DD
	BuyInAmount float64 `json:"buy_in_amount"` // Buy-in amount
	Notes       string  `json:"notes"`         // Session notes
}

// toSessionResponse maps a session row to its public representation
func toSessionResponse(s domain.PokerSession) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		Date:        s.Date.Format(sessionDateFormat),
		BuyInAmount: s.BuyInAmount,
		Notes:       s.Notes,
	}
}

// CreateSessionHandler records a new poker session
func CreateSessionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Parse the mandatory calendar date
		date, err := time.Parse(sessionDateFormat, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		session := domain.PokerSession{
			Date:        date,            // Parsed session date
			BuyInAmount: req.BuyInAmount, // Buy-in amount
			Notes:       req.Notes,       // Session notes
		}
		if err := db.Create(&session).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"date":  req.Date,
				"error": err.Error(),
			}).Error("Failed to create session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"session_id": session.ID,
			"date":       req.Date,
		}).Info("Session created")
		c.JSON(http.StatusOK, toSessionResponse(session))
	}
}

// ListSessionsHandler returns all sessions, newest date first
func ListSessionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessions []domain.PokerSession // Slice to hold sessions
		if err := db.Order("date desc").Find(&sessions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
			return
		}
		resp := make([]SessionResponse, len(sessions))
		for i, s := range sessions {
			resp[i] = toSessionResponse(s)
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DeleteSessionHandler removes a session by ID.
// SessionPlayer and PlayerResult rows attached to the session are left in
// place, matching the historical behavior of the tracker.
func DeleteSessionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse the session ID
		if err != nil || id < 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		var session domain.PokerSession // Locate the session
		if err := db.First(&session, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if err := db.Delete(&session).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"session_id": session.ID,
				"error":      err.Error(),
			}).Error("Failed to delete session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"session_id": session.ID,
		}).Info("Session deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
	}
}
