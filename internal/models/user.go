package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is keyed by e-mail, which doubles as the caller's pseudo-identity.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"size:320;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
