package repositories

import (
	"context"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwipeRepository defines the interface for swipe data operations
type SwipeRepository interface {
	CreateSwipe(ctx context.Context, swipe *models.Swipe) error
	HasUserSwiped(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error)
	GetUserSwipes(ctx context.Context, userID uuid.UUID) ([]models.Swipe, error)
}

// GormSwipeRepository implements SwipeRepository with gorm
type GormSwipeRepository struct {
	db *gorm.DB
}

// NewGormSwipeRepository creates a new GormSwipeRepository
func NewGormSwipeRepository(db *gorm.DB) *GormSwipeRepository {
	return &GormSwipeRepository{db: db}
}

// CreateSwipe records a swipe. A second swipe on the same movie returns gorm.ErrDuplicatedKey.
func (r *GormSwipeRepository) CreateSwipe(ctx context.Context, swipe *models.Swipe) error {
	swiped, err := r.HasUserSwiped(ctx, swipe.UserID, swipe.MovieID)
	if err != nil {
		return err
	}
	if swiped {
		return gorm.ErrDuplicatedKey
	}
	return r.db.WithContext(ctx).Create(swipe).Error
}

// HasUserSwiped checks if a user has already swiped on a movie
func (r *GormSwipeRepository) HasUserSwiped(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Swipe{}).Where("user_id = ? AND movie_id = ?", userID, movieID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserSwipes retrieves a user's swipes, newest first
func (r *GormSwipeRepository) GetUserSwipes(ctx context.Context, userID uuid.UUID) ([]models.Swipe, error) {
	var swipes []models.Swipe
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("swiped_at DESC").Find(&swipes).Error
	return swipes, err
}
