package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"strings"  // String manipulation

	"poker_tracker/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for sending a friend request
type AddFriendRequest struct {
	PlayerID string `json:"player_id" binding:"required"` // Target's public player ID
}

// SearchUserResponse is the trimmed user view returned by search
type SearchUserResponse struct {
	PlayerID string `json:"player_id"` // Public player ID
	Username string `json:"username"`  // Username
	Avatar   string `json:"avatar"`    // Avatar filename
}

// GetFriendsHandler returns accepted friendships from either side,
// resolved to the counterpart user
func GetFriendsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Authenticated user
		var friendships []domain.Friendship
		if err := db.Where("(user_id = ? OR friend_id = ?) AND status = ?",
			userID, userID, domain.FriendshipAccepted).Find(&friendships).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
			return
		}
		friends := []UserResponse{} // Resolved friends
		for _, f := range friendships {
			// Pick whichever side of the row is not the caller
			counterpartID := f.FriendID
			if f.UserID != userID {
				counterpartID = f.UserID
			}
			var friend domain.User
			if err := db.First(&friend, counterpartID).Error; err != nil {
				continue // Skip rows pointing at missing users
			}
			friends = append(friends, toUserResponse(friend))
		}
		c.JSON(http.StatusOK, friends)
	}
}

// GetPendingHandler returns pending requests where the caller is the recipient
func GetPendingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Authenticated user
		var friendships []domain.Friendship
		if err := db.Where("friend_id = ? AND status = ?",
			userID, domain.FriendshipPending).Find(&friendships).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending requests"})
			return
		}
		pending := []UserResponse{} // Requesting users
		for _, f := range friendships {
			var requester domain.User
			if err := db.First(&requester, f.UserID).Error; err != nil {
				continue // Skip rows pointing at missing users
			}
			pending = append(pending, toUserResponse(requester))
		}
		c.JSON(http.StatusOK, pending)
	}
}

// AddFriendHandler sends a friend request to a user by public player ID
func AddFriendHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Authenticated user
		var req AddFriendRequest      // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player ID is required"})
			return
		}
		var friend domain.User // Resolve the target by public player ID
		if err := db.Where("player_id = ?", req.PlayerID).First(&friend).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// Prevent self-friending
		if friend.ID == userID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot add yourself as a friend"})
			return
		}
		// A row in either direction blocks a new request regardless of status,
		// so a rejected pair can never be re-requested
		var existing domain.Friendship
		err := db.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friend.ID, friend.ID, userID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Friendship already exists"})
			return
		}
		friendship := domain.Friendship{
			UserID:   userID,                   // Requesting user
			FriendID: friend.ID,                // Recipient
			Status:   domain.FriendshipPending, // Initial state
		}
		if err := db.Create(&friendship).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"friend_id": friend.ID,
				"error":     err.Error(),
			}).Error("Failed to create friend request")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create friend request"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   userID,
			"friend_id": friend.ID,
		}).Info("Friend request sent")
		c.JSON(http.StatusCreated, gin.H{"message": "Friend request sent"})
	}
}

// respondToFriendRequest transitions a pending request aimed at the caller
func respondToFriendRequest(db *gorm.DB, c *gin.Context, status string) {
	userID := c.GetUint("userID") // Authenticated user (the recipient)
	// Requesting user's ID from the path
	requesterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}
	// Only the recipient of a pending request may respond to it
	var friendship domain.Friendship
	if err := db.Where("user_id = ? AND friend_id = ? AND status = ?",
		requesterID, userID, domain.FriendshipPending).First(&friendship).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}
	if err := db.Model(&friendship).Update("status", status).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"friendship_id": friendship.ID,
			"status":        status,
			"error":         err.Error(),
		}).Error("Failed to update friend request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update friend request"})
		return
	}
	logrus.WithFields(logrus.Fields{
		"friendship_id": friendship.ID,
		"status":        status,
	}).Info("Friend request updated")
	c.JSON(http.StatusOK, gin.H{"message": "Friend request " + status})
}

// AcceptFriendHandler accepts a pending request sent to the caller
func AcceptFriendHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondToFriendRequest(db, c, domain.FriendshipAccepted)
	}
}

// RejectFriendHandler rejects a pending request sent to the caller
func RejectFriendHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondToFriendRequest(db, c, domain.FriendshipRejected)
	}
}

// SearchUsersHandler finds users by case-insensitive username substring,
// excluding the caller, capped at 10 results
func SearchUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Authenticated user
		query := c.Query("query")     // Search term
		if query == "" {
			c.JSON(http.StatusOK, []SearchUserResponse{}) // Empty query, empty result
			return
		}
		var users []domain.User
		if err := db.Where("LOWER(username) LIKE ? AND id <> ?",
			"%"+strings.ToLower(query)+"%", userID).Limit(10).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
			return
		}
		resp := make([]SearchUserResponse, len(users))
		for i, u := range users {
			resp[i] = SearchUserResponse{
				PlayerID: u.PlayerID, // Public player ID
				Username: u.Username, // Username
				Avatar:   u.Avatar,   // Avatar filename
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}
