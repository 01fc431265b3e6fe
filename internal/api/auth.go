package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamp formatting

	"poker_tracker/internal/domain"     // Importing domain models
	"poker_tracker/internal/middleware" // Auth cookie name
	"poker_tracker/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Public player ID generation
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// UserResponse is the public view of a user account
type UserResponse struct {
	ID        uint   `json:"id"`         // User ID
	PlayerID  string `json:"player_id"`  // Public player ID
	Username  string `json:"username"`   // Username
	Avatar    string `json:"avatar"`     // Avatar filename
	CreatedAt string `json:"created_at"` // Creation timestamp
}

// toUserResponse maps a user row to its public representation
func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		PlayerID:  u.PlayerID,
		Username:  u.Username,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// newPlayerID generates a short public player ID for a new account
func newPlayerID() string {
	return uuid.NewString()[:8]
}

// setAuthCookie attaches the session token to the response. The cookie
// lives exactly as long as the token it carries.
func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.AuthCookieName, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
}

// RegisterHandler creates a new user account and logs it in
func RegisterHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing username or password
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
			return
		}
		// Reject duplicate usernames up front
		var existing domain.User
		if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		// Hash the password
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			PlayerID:     newPlayerID(), // Public player ID
			Username:     req.Username,  // Requested username
			PasswordHash: string(hash),  // Hashed password
			Avatar:       "default.png", // Placeholder avatar
		}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		// Auto-login after registration
		token, err := utils.NewSessionToken(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		setAuthCookie(c, token)
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"username":  user.Username,
			"player_id": user.PlayerID,
		}).Info("User registered")
		c.JSON(http.StatusCreated, toUserResponse(user))
	}
}

// LoginHandler authenticates a user and establishes a session
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		// Record login history
		record := domain.LoginHistory{
			UserID:    user.ID,               // Authenticated user
			IPAddress: c.ClientIP(),          // Caller IP
			UserAgent: c.Request.UserAgent(), // Caller user agent
		}
		if err := db.Create(&record).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to record login history")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		token, err := utils.NewSessionToken(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		setAuthCookie(c, token)
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
			"ip":       record.IPAddress,
		}).Info("User logged in")
		c.JSON(http.StatusOK, toUserResponse(user))
	}
}

// LogoutHandler clears the session cookie unconditionally
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// CheckHandler returns the currently authenticated user
func CheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, toUserResponse(user))
	}
}
