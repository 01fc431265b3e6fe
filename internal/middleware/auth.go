package middleware

import (
	"net/http"
	"strings"

	"poker_tracker/internal/utils"

	"github.com/gin-gonic/gin" // Gin web framework
)

// AuthCookieName is the cookie that carries the session token
const AuthCookieName = "token"

// AuthMiddleware validates the session token and extracts the user ID.
// The token travels in an HttpOnly cookie; a Bearer Authorization header
// is accepted as a fallback for non-browser clients.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AuthCookieName) // Read the session cookie
		if err != nil || tokenStr == "" {
			// Fall back to the Authorization header
			authHeader := c.GetHeader("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				// No credentials at all, abort with unauthorized status
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
				return
			}
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
		claims, err := utils.ParseSessionToken(tokenStr, secret) // Parse the session token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Next()                       // Proceed to the next handler
	}
}
