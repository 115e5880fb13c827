package models

import (
	"time"

	"github.com/google/uuid"
)

// MasterListItem is a movie the user has seen and liked.
type MasterListItem struct {
	UserID  uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	MovieID int64     `json:"movie_id" gorm:"primaryKey;autoIncrement:false;index"`
	Rating  *float64  `json:"rating" gorm:"type:numeric(2,1)"`
	Notes   *string   `json:"notes" gorm:"type:text"`
	AddedAt time.Time `json:"added_at" gorm:"autoCreateTime"`
	User    User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie   Movie     `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

func (MasterListItem) TableName() string { return "master_list" }

// WatchLaterItem is a movie the user intends to watch, ranked by priority 1-5.
type WatchLaterItem struct {
	UserID   uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	MovieID  int64     `json:"movie_id" gorm:"primaryKey;autoIncrement:false;index"`
	Priority int16     `json:"priority" gorm:"not null;default:1"`
	AddedAt  time.Time `json:"added_at" gorm:"autoCreateTime"`
	User     User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie    Movie     `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

func (WatchLaterItem) TableName() string { return "watch_later_list" }

const DefaultWatchLaterPriority = 1

// List sort keys
const (
	SortDateAdded = "date_added"
	SortRating    = "rating"
	SortPriority  = "priority"
)

// ListFilter narrows a list query; a nil GenreID means every genre.
type ListFilter struct {
	GenreID *int64
	SortBy  string
}

// MasterListEntry is a master list row joined with its movie.
type MasterListEntry struct {
	MovieID    int64      `json:"movie_id"`
	Title      string     `json:"title"`
	PosterPath *string    `json:"poster_path"`
	Overview   *string    `json:"overview,omitempty"`
	Genres     []GenreRef `json:"genres" gorm:"-"`
	Rating     *float64   `json:"rating"`
	Notes      *string    `json:"notes"`
	AddedAt    time.Time  `json:"added_at"`
}

// WatchLaterEntry is a watch-later row joined with its movie.
type WatchLaterEntry struct {
	MovieID    int64      `json:"movie_id"`
	Title      string     `json:"title"`
	PosterPath *string    `json:"poster_path"`
	Overview   *string    `json:"overview"`
	Genres     []GenreRef `json:"genres" gorm:"-"`
	Priority   int16      `json:"priority"`
	AddedAt    time.Time  `json:"added_at"`
}

// MovieInteractionRequest is the "have you seen it?" flow answered after a card.
type MovieInteractionRequest struct {
	UserID      string   `json:"user_id"`
	MovieID     int64    `json:"movie_id" validate:"required,gt=0"`
	HaveYouSeen *bool    `json:"have_you_seen" validate:"required"`
	DidYouLike  *bool    `json:"did_you_like"`
	WantToSee   *bool    `json:"want_to_see"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Notes       *string  `json:"notes"`
	Priority    *int     `json:"priority" validate:"omitempty,gte=1,lte=5"`
}

const (
	ActionSavedToMasterList = "saved_to_master_list"
	ActionSavedToWatchLater = "saved_to_watch_later"
	ActionSkipped           = "skipped"
)

type MovieInteractionResponse struct {
	OK      bool           `json:"ok"`
	UserID  string         `json:"user_id"`
	MovieID int64          `json:"movie_id"`
	Action  string         `json:"action"`
	Details map[string]any `json:"details"`
}

// UpdateMasterListRequest defines the body (or query) for editing rating and notes
type UpdateMasterListRequest struct {
	UserID  string   `json:"user_id"`
	MovieID int64    `param:"movie_id" validate:"required,gt=0"`
	Rating  *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Notes   *string  `json:"notes"`
}

// UpdateWatchLaterRequest defines the body (or query) for editing priority
type UpdateWatchLaterRequest struct {
	UserID   string `json:"user_id"`
	MovieID  int64  `param:"movie_id" validate:"required,gt=0"`
	Priority *int   `json:"priority" validate:"omitempty,gte=1,lte=5"`
}
