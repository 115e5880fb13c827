package repositories

import (
	"context"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const eitherDirection = "(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)"

// FriendshipRepository defines the interface for friendship data operations
type FriendshipRepository interface {
	UpsertFriendship(ctx context.Context, userID, friendID uuid.UUID, status string) (*models.Friendship, error)
	UpdateFriendshipStatus(ctx context.Context, f *models.Friendship, status string) error
	GetFriendshipBetween(ctx context.Context, a, b uuid.UUID) (*models.Friendship, error)
	GetAcceptedFriendship(ctx context.Context, a, b uuid.UUID) (*models.Friendship, error)
	GetAcceptedFriendships(ctx context.Context, userID uuid.UUID) ([]models.Friendship, error)
	GetPendingIncoming(ctx context.Context, userID uuid.UUID) ([]models.Friendship, error)
	DeleteFriendship(ctx context.Context, a, b uuid.UUID) (int64, error)
}

// GormFriendshipRepository implements FriendshipRepository with gorm
type GormFriendshipRepository struct {
	db *gorm.DB
}

// NewGormFriendshipRepository creates a new GormFriendshipRepository
func NewGormFriendshipRepository(db *gorm.DB) *GormFriendshipRepository {
	return &GormFriendshipRepository{db: db}
}

// UpsertFriendship creates the directed row userID -> friendID or updates its status
func (r *GormFriendshipRepository) UpsertFriendship(ctx context.Context, userID, friendID uuid.UUID, status string) (*models.Friendship, error) {
	var f models.Friendship
	err := r.db.WithContext(ctx).Where("user_id = ? AND friend_id = ?", userID, friendID).First(&f).Error
	if err == gorm.ErrRecordNotFound {
		f = models.Friendship{UserID: userID, FriendID: friendID, Status: status}
		if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
			return nil, err
		}
		return &f, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.UpdateFriendshipStatus(ctx, &f, status); err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateFriendshipStatus updates the status of an existing row
func (r *GormFriendshipRepository) UpdateFriendshipStatus(ctx context.Context, f *models.Friendship, status string) error {
	err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", f.UserID, f.FriendID).
		Update("status", status).Error
	if err != nil {
		return err
	}
	f.Status = status
	return nil
}

// GetFriendshipBetween finds the row linking a and b in either direction, whatever its status
func (r *GormFriendshipRepository) GetFriendshipBetween(ctx context.Context, a, b uuid.UUID) (*models.Friendship, error) {
	var f models.Friendship
	if err := r.db.WithContext(ctx).Where(eitherDirection, a, b, b, a).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// GetAcceptedFriendship finds an accepted row linking a and b in either direction
func (r *GormFriendshipRepository) GetAcceptedFriendship(ctx context.Context, a, b uuid.UUID) (*models.Friendship, error) {
	var f models.Friendship
	err := r.db.WithContext(ctx).
		Where(eitherDirection, a, b, b, a).
		Where("status = ?", models.FriendshipAccepted).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetAcceptedFriendships retrieves accepted rows where the user is either side, with both
// users loaded, newest first
func (r *GormFriendshipRepository) GetAcceptedFriendships(ctx context.Context, userID uuid.UUID) ([]models.Friendship, error) {
	var rows []models.Friendship
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Friend").
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, models.FriendshipAccepted).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// GetPendingIncoming retrieves pending requests other users sent to userID
func (r *GormFriendshipRepository) GetPendingIncoming(ctx context.Context, userID uuid.UUID) ([]models.Friendship, error) {
	var rows []models.Friendship
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("friend_id = ? AND status = ?", userID, models.FriendshipPending).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// DeleteFriendship removes the rows linking a and b in either direction
func (r *GormFriendshipRepository) DeleteFriendship(ctx context.Context, a, b uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where(eitherDirection, a, b, b, a).Delete(&models.Friendship{})
	return res.RowsAffected, res.Error
}
