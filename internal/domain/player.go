package domain

import "time"

// Player Model
// Leaderboard players are a flat roster, separate from authenticated users.
type Player struct {
	ID        uint      `gorm:"primaryKey"`              // Primary key
	Username  string    `gorm:"size:80;unique;not null"` // Unique player name
	Score     int       `gorm:"default:0"`               // Manually assigned leaderboard score
	Avatar    string    `gorm:"size:200"`                // Avatar path or URL
	CreatedAt time.Time `gorm:"autoCreateTime"`          // Timestamp of creation
}
