package domain

import "time"

// Friendship status values
const (
	FriendshipPending  = "pending"  // Request sent, awaiting the recipient
	FriendshipAccepted = "accepted" // Recipient accepted the request
	FriendshipRejected = "rejected" // Recipient rejected the request
)

// Friendship Model
// A directed friend request from UserID to FriendID. Status is the only
// field that ever changes after creation.
type Friendship struct {
	ID        uint      `gorm:"primaryKey"`                               // Primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_friendship_pair"` // Requesting user
	FriendID  uint      `gorm:"not null;uniqueIndex:idx_friendship_pair"` // Recipient user
	Status    string    `gorm:"size:20;default:pending"`                  // pending, accepted, rejected
	CreatedAt time.Time `gorm:"autoCreateTime"`                           // Timestamp of creation
}
