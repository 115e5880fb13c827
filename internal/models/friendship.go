package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipBlocked  = "blocked"
)

// Friendship is stored as one directed row (UserID initiated, FriendID received) but is
// looked up and removed in either direction.
type Friendship struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	FriendID  uuid.UUID `json:"friend_id" gorm:"type:char(36);primaryKey;index"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'pending';not null"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Friend    User      `json:"-" gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
}

// OtherParty returns the user on the far side of the row from userID.
func (f *Friendship) OtherParty(userID uuid.UUID) (uuid.UUID, *User) {
	if f.UserID == userID {
		return f.FriendID, &f.Friend
	}
	return f.UserID, &f.User
}

// CreateFriendRequest defines the request body for sending a friend request
type CreateFriendRequest struct {
	UserID      string `json:"user_id"`
	FriendEmail string `json:"friend_email" validate:"required,min=1"`
}

type FriendResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
