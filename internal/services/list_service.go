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

// ListService serves the master list and the watch-later list
type ListService struct {
	repos *repositories.Repositories
}

func NewListService(repos *repositories.Repositories) *ListService {
	return &ListService{repos: repos}
}

// GetMasterList returns the user's seen-and-liked movies, sorted by date_added (default) or rating
func (s *ListService) GetMasterList(ctx context.Context, identity string, filter models.ListFilter) ([]models.MasterListEntry, error) {
	switch filter.SortBy {
	case "":
		filter.SortBy = models.SortDateAdded
	case models.SortDateAdded, models.SortRating:
	default:
		return nil, fmt.Errorf("%w: sort_by must be date_added or rating", ErrValidation)
	}

	user, err := optionalUser(ctx, s.repos.Users, identity)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []models.MasterListEntry{}, nil
	}

	entries, err := s.repos.MasterList.ListMasterList(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}
	return entries, s.attachMasterGenres(ctx, entries)
}

// UpdateMasterListItem merges rating and notes into an existing entry
func (s *ListService) UpdateMasterListItem(ctx context.Context, identity string, movieID int64, rating *float64, notes *string) (*models.MasterListItem, error) {
	if rating != nil && (*rating < 0 || *rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}

	var item *models.MasterListItem
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		user, err := userByEmail(ctx, tx.Users, identity)
		if err != nil {
			return err
		}
		if _, err := tx.MasterList.GetMasterListItem(ctx, user.ID, movieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: movie %d is not in the master list", ErrNotFound, movieID)
			}
			return err
		}
		item, err = tx.MasterList.UpsertMasterListItem(ctx, user.ID, movieID, rating, notes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ListService) DeleteMasterListItem(ctx context.Context, identity string, movieID int64) error {
	user, err := userByEmail(ctx, s.repos.Users, identity)
	if err != nil {
		return err
	}
	n, err := s.repos.MasterList.DeleteMasterListItem(ctx, user.ID, movieID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: movie %d is not in the master list", ErrNotFound, movieID)
	}
	return nil
}

// GetFriendMasterList returns a friend's master list. Only accepted friends may look.
func (s *ListService) GetFriendMasterList(ctx context.Context, identity string, friendID uuid.UUID, genreID *int64) ([]models.MasterListEntry, error) {
	user, err := userByEmail(ctx, s.repos.Users, identity)
	if err != nil {
		return nil, err
	}
	if _, err := s.repos.Friendships.GetAcceptedFriendship(ctx, user.ID, friendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: not friends or friendship not accepted", ErrForbidden)
		}
		return nil, err
	}

	entries, err := s.repos.MasterList.ListMasterList(ctx, friendID, models.ListFilter{GenreID: genreID, SortBy: models.SortDateAdded})
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Overview = nil
	}
	return entries, s.attachMasterGenres(ctx, entries)
}

// GetWatchLater returns the user's watch-later list, sorted by priority (default) or date_added
func (s *ListService) GetWatchLater(ctx context.Context, identity string, filter models.ListFilter) ([]models.WatchLaterEntry, error) {
	switch filter.SortBy {
	case "":
		filter.SortBy = models.SortPriority
	case models.SortPriority, models.SortDateAdded:
	default:
		return nil, fmt.Errorf("%w: sort_by must be priority or date_added", ErrValidation)
	}

	user, err := optionalUser(ctx, s.repos.Users, identity)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []models.WatchLaterEntry{}, nil
	}

	entries, err := s.repos.WatchLater.ListWatchLater(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.MovieID
	}
	genres, err := s.repos.Movies.GetGenresForMovies(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Genres = genresOrEmpty(genres[entries[i].MovieID])
	}
	return entries, nil
}

// UpdateWatchLaterItem sets the priority of an existing entry
func (s *ListService) UpdateWatchLaterItem(ctx context.Context, identity string, movieID int64, priority int) (*models.WatchLaterItem, error) {
	if priority < 1 || priority > 5 {
		return nil, fmt.Errorf("%w: priority must be between 1 and 5", ErrValidation)
	}

	var item *models.WatchLaterItem
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		user, err := userByEmail(ctx, tx.Users, identity)
		if err != nil {
			return err
		}
		if _, err := tx.WatchLater.GetWatchLaterItem(ctx, user.ID, movieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: movie %d is not in the watch later list", ErrNotFound, movieID)
			}
			return err
		}
		item, err = tx.WatchLater.UpsertWatchLaterItem(ctx, user.ID, movieID, &priority)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ListService) DeleteWatchLaterItem(ctx context.Context, identity string, movieID int64) error {
	user, err := userByEmail(ctx, s.repos.Users, identity)
	if err != nil {
		return err
	}
	n, err := s.repos.WatchLater.DeleteWatchLaterItem(ctx, user.ID, movieID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: movie %d is not in the watch later list", ErrNotFound, movieID)
	}
	return nil
}

func (s *ListService) attachMasterGenres(ctx context.Context, entries []models.MasterListEntry) error {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.MovieID
	}
	genres, err := s.repos.Movies.GetGenresForMovies(ctx, ids)
	if err != nil {
		return err
	}
	for i := range entries {
		entries[i].Genres = genresOrEmpty(genres[entries[i].MovieID])
	}
	return nil
}

func genresOrEmpty(g []models.GenreRef) []models.GenreRef {
	if g == nil {
		return []models.GenreRef{}
	}
	return g
}
