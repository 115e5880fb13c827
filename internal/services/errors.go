// Package services holds the business operations behind the HTTP surface: deck building,
// swipes, the post-card interaction flow, the two movie lists, friendships and genre sync.
// Failures are reported by wrapping one of the sentinel errors below.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrUpstream   = errors.New("catalog unavailable")
)

// userByEmail resolves an identity that must already exist
func userByEmail(ctx context.Context, users repositories.UserRepository, email string) (*models.User, error) {
	user, err := users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	return user, err
}

// optionalUser resolves an identity that may not have interacted yet; a nil user means none
func optionalUser(ctx context.Context, users repositories.UserRepository, email string) (*models.User, error) {
	user, err := users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return user, err
}

func userByID(ctx context.Context, users repositories.UserRepository, id uuid.UUID) (*models.User, error) {
	user, err := users.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return user, err
}
