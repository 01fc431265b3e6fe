package domain

import "time"

// PokerSession Model
type PokerSession struct {
	ID          uint      `gorm:"primaryKey"`     // Primary key
	Date        time.Time `gorm:"not null"`       // Date the session took place
	BuyInAmount float64   `gorm:"default:0"`      // Buy-in amount for the session
	Notes       string    `gorm:"type:text"`      // Free-form session notes
	CreatedAt   time.Time `gorm:"autoCreateTime"` // Timestamp of creation
}

// SessionPlayer Model
// Join row between a session and a player. No uniqueness constraint,
// the same player can appear in a session more than once.
type SessionPlayer struct {
	ID        uint `gorm:"primaryKey"`     // Primary key
	SessionID uint `gorm:"not null;index"` // Foreign key to PokerSession
	PlayerID  uint `gorm:"not null;index"` // Foreign key to Player
}

// PlayerResult Model
// A player's cash-out for a session. No uniqueness constraint, so
// re-submitting a result creates a second row.
type PlayerResult struct {
	ID          uint    `gorm:"primaryKey"`     // Primary key
	SessionID   uint    `gorm:"not null;index"` // Foreign key to PokerSession
	PlayerID    uint    `gorm:"not null;index"` // Foreign key to Player
	FinalAmount float64 `gorm:"not null"`       // Cash-out amount at session end
}
