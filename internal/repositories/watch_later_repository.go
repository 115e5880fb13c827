package repositories

import (
	"context"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchLaterRepository defines the interface for watch-later list operations
type WatchLaterRepository interface {
	UpsertWatchLaterItem(ctx context.Context, userID uuid.UUID, movieID int64, priority *int) (*models.WatchLaterItem, error)
	GetWatchLaterItem(ctx context.Context, userID uuid.UUID, movieID int64) (*models.WatchLaterItem, error)
	DeleteWatchLaterItem(ctx context.Context, userID uuid.UUID, movieID int64) (int64, error)
	ListWatchLater(ctx context.Context, userID uuid.UUID, filter models.ListFilter) ([]models.WatchLaterEntry, error)
}

// GormWatchLaterRepository implements WatchLaterRepository with gorm
type GormWatchLaterRepository struct {
	db *gorm.DB
}

// NewGormWatchLaterRepository creates a new GormWatchLaterRepository
func NewGormWatchLaterRepository(db *gorm.DB) *GormWatchLaterRepository {
	return &GormWatchLaterRepository{db: db}
}

// UpsertWatchLaterItem adds the movie with the given priority (default 1) or updates the
// priority of an existing entry. A nil priority leaves an existing entry unchanged.
func (r *GormWatchLaterRepository) UpsertWatchLaterItem(ctx context.Context, userID uuid.UUID, movieID int64, priority *int) (*models.WatchLaterItem, error) {
	item, err := r.GetWatchLaterItem(ctx, userID, movieID)
	if err == gorm.ErrRecordNotFound {
		p := models.DefaultWatchLaterPriority
		if priority != nil {
			p = *priority
		}
		item = &models.WatchLaterItem{UserID: userID, MovieID: movieID, Priority: int16(p)}
		if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
			return nil, err
		}
		return item, nil
	}
	if err != nil {
		return nil, err
	}
	if priority == nil {
		return item, nil
	}

	item.Priority = int16(*priority)
	err = r.db.WithContext(ctx).Model(&models.WatchLaterItem{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Update("priority", item.Priority).Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetWatchLaterItem retrieves one list entry
func (r *GormWatchLaterRepository) GetWatchLaterItem(ctx context.Context, userID uuid.UUID, movieID int64) (*models.WatchLaterItem, error) {
	var item models.WatchLaterItem
	if err := r.db.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteWatchLaterItem removes a list entry and reports how many rows went away
func (r *GormWatchLaterRepository) DeleteWatchLaterItem(ctx context.Context, userID uuid.UUID, movieID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&models.WatchLaterItem{})
	return res.RowsAffected, res.Error
}

// ListWatchLater returns the user's list joined with movie data
func (r *GormWatchLaterRepository) ListWatchLater(ctx context.Context, userID uuid.UUID, filter models.ListFilter) ([]models.WatchLaterEntry, error) {
	q := r.db.WithContext(ctx).Table("watch_later_list AS wl").
		Select("wl.movie_id, m.title, m.poster_path, m.overview, wl.priority, wl.added_at").
		Joins("JOIN movies m ON m.id = wl.movie_id").
		Where("wl.user_id = ?", userID)
	if filter.GenreID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = wl.movie_id AND mg.genre_id = ?)", *filter.GenreID)
	}

	switch filter.SortBy {
	case models.SortDateAdded:
		q = q.Order("wl.added_at DESC")
	default:
		q = q.Order("wl.priority DESC, wl.added_at DESC")
	}

	entries := []models.WatchLaterEntry{}
	if err := q.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
