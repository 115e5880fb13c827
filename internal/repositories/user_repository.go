package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetOrCreateUser(ctx context.Context, email string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetSeenMovieIDs(ctx context.Context, userID uuid.UUID) (map[int64]struct{}, error)
}

// GormUserRepository implements UserRepository with gorm
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetOrCreateUser returns the user with this e-mail, creating it on first use
func (r *GormUserRepository) GetOrCreateUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where(models.User{Email: email}).FirstOrCreate(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a creation race; the row exists now
		return r.GetUserByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by e-mail
func (r *GormUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *GormUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSeenMovieIDs returns every movie the user swiped on or put on either list
func (r *GormUserRepository) GetSeenMovieIDs(ctx context.Context, userID uuid.UUID) (map[int64]struct{}, error) {
	seen := make(map[int64]struct{})
	for _, model := range []any{&models.Swipe{}, &models.MasterListItem{}, &models.WatchLaterItem{}} {
		var ids []int64
		if err := r.db.WithContext(ctx).Model(model).Where("user_id = ?", userID).Pluck("movie_id", &ids).Error; err != nil {
			return nil, err
		}
		for _, id := range ids {
			seen[id] = struct{}{}
		}
	}
	return seen, nil
}
