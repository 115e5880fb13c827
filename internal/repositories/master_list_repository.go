package repositories

import (
	"context"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterListRepository defines the interface for seen-and-liked list operations
type MasterListRepository interface {
	UpsertMasterListItem(ctx context.Context, userID uuid.UUID, movieID int64, rating *float64, notes *string) (*models.MasterListItem, error)
	GetMasterListItem(ctx context.Context, userID uuid.UUID, movieID int64) (*models.MasterListItem, error)
	DeleteMasterListItem(ctx context.Context, userID uuid.UUID, movieID int64) (int64, error)
	ListMasterList(ctx context.Context, userID uuid.UUID, filter models.ListFilter) ([]models.MasterListEntry, error)
}

// GormMasterListRepository implements MasterListRepository with gorm
type GormMasterListRepository struct {
	db *gorm.DB
}

// NewGormMasterListRepository creates a new GormMasterListRepository
func NewGormMasterListRepository(db *gorm.DB) *GormMasterListRepository {
	return &GormMasterListRepository{db: db}
}

// UpsertMasterListItem adds the movie to the list or updates the supplied fields, keeping the rest
func (r *GormMasterListRepository) UpsertMasterListItem(ctx context.Context, userID uuid.UUID, movieID int64, rating *float64, notes *string) (*models.MasterListItem, error) {
	item, err := r.GetMasterListItem(ctx, userID, movieID)
	if err == gorm.ErrRecordNotFound {
		item = &models.MasterListItem{UserID: userID, MovieID: movieID, Rating: rating, Notes: notes}
		if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
			return nil, err
		}
		return item, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if rating != nil {
		updates["rating"] = *rating
		item.Rating = rating
	}
	if notes != nil {
		updates["notes"] = *notes
		item.Notes = notes
	}
	if len(updates) == 0 {
		return item, nil
	}
	err = r.db.WithContext(ctx).Model(&models.MasterListItem{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetMasterListItem retrieves one list entry
func (r *GormMasterListRepository) GetMasterListItem(ctx context.Context, userID uuid.UUID, movieID int64) (*models.MasterListItem, error) {
	var item models.MasterListItem
	if err := r.db.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMasterListItem removes a list entry and reports how many rows went away
func (r *GormMasterListRepository) DeleteMasterListItem(ctx context.Context, userID uuid.UUID, movieID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&models.MasterListItem{})
	return res.RowsAffected, res.Error
}

// ListMasterList returns the user's list joined with movie data
func (r *GormMasterListRepository) ListMasterList(ctx context.Context, userID uuid.UUID, filter models.ListFilter) ([]models.MasterListEntry, error) {
	q := r.db.WithContext(ctx).Table("master_list AS ml").
		Select("ml.movie_id, m.title, m.poster_path, m.overview, ml.rating, ml.notes, ml.added_at").
		Joins("JOIN movies m ON m.id = ml.movie_id").
		Where("ml.user_id = ?", userID)
	if filter.GenreID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = ml.movie_id AND mg.genre_id = ?)", *filter.GenreID)
	}

	switch filter.SortBy {
	case models.SortRating:
		// nulls last without dialect-specific NULLS LAST
		q = q.Order("CASE WHEN ml.rating IS NULL THEN 1 ELSE 0 END, ml.rating DESC, ml.added_at DESC")
	default:
		q = q.Order("ml.added_at DESC")
	}

	entries := []models.MasterListEntry{}
	if err := q.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
