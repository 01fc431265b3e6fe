package domain

import "time"

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey"`              // Primary key
	PlayerID     string    `gorm:"size:20;unique;not null"` // Public player ID shared with friends
	Username     string    `gorm:"size:80;unique;not null"` // Unique username
	PasswordHash string    `gorm:"size:120;not null"`       // Hashed password
	Avatar       string    `gorm:"size:120"`                // Avatar filename under the uploads dir
	CreatedAt    time.Time `gorm:"autoCreateTime"`          // Timestamp of creation
}

// LoginHistory Model (append-only)
type LoginHistory struct {
	ID        uint      `gorm:"primaryKey"`     // Primary key
	UserID    uint      `gorm:"not null;index"` // Foreign key to User
	LoginTime time.Time `gorm:"autoCreateTime"` // Time of the login
	IPAddress string    `gorm:"size:45"`        // IPv6 addresses can be up to 45 chars
	UserAgent string    `gorm:"size:255"`       // Client user agent string
}
