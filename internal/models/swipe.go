package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DecisionLike = "like"
	DecisionNope = "nope"
)

// Swipe is a like/nope decision, at most one per user and movie.
type Swipe struct {
	UserID   uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	MovieID  int64     `json:"movie_id" gorm:"primaryKey;autoIncrement:false;index"`
	Decision int16     `json:"decision" gorm:"not null"` // +1 like, -1 nope
	SwipedAt time.Time `json:"swiped_at" gorm:"autoCreateTime"`
	User     User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie    Movie     `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

func DecisionToInt(decision string) int16 {
	if decision == DecisionLike {
		return 1
	}
	return -1
}

func DecisionLabel(decision int16) string {
	if decision == 1 {
		return DecisionLike
	}
	return DecisionNope
}

// CreateSwipeRequest defines the request body for recording a swipe
type CreateSwipeRequest struct {
	UserID   string `json:"user_id"`
	MovieID  int64  `json:"movie_id" validate:"required,gt=0"`
	Decision string `json:"decision" validate:"required,oneof=like nope"`
}

type SwipeResponse struct {
	OK       bool      `json:"ok"`
	UserID   string    `json:"user_id"`
	MovieID  int64     `json:"movie_id"`
	Decision string    `json:"decision"`
	SwipedAt time.Time `json:"swiped_at"`
}

type SwipeListItem struct {
	MovieID  int64     `json:"movie_id"`
	Decision string    `json:"decision"`
	SwipedAt time.Time `json:"swiped_at"`
}
