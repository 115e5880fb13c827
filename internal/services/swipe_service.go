package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/repositories"
	"gorm.io/gorm"
)

type SwipeService struct {
	repos *repositories.Repositories
}

func NewSwipeService(repos *repositories.Repositories) *SwipeService {
	return &SwipeService{repos: repos}
}

// RecordSwipe stores a like or nope, creating the user and a placeholder movie on first use.
// A second swipe on the same movie is ErrConflict.
func (s *SwipeService) RecordSwipe(ctx context.Context, identity string, movieID int64, decision string) (*models.SwipeResponse, error) {
	if decision != models.DecisionLike && decision != models.DecisionNope {
		return nil, fmt.Errorf("%w: decision must be like or nope", ErrValidation)
	}

	var swipe models.Swipe
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		user, err := tx.Users.GetOrCreateUser(ctx, identity)
		if err != nil {
			return err
		}
		if _, err := tx.Movies.EnsureMovieExists(ctx, movieID); err != nil {
			return err
		}
		swipe = models.Swipe{UserID: user.ID, MovieID: movieID, Decision: models.DecisionToInt(decision)}
		return tx.Swipes.CreateSwipe(ctx, &swipe)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("%w: already swiped on movie %d", ErrConflict, movieID)
	}
	if err != nil {
		return nil, err
	}

	return &models.SwipeResponse{
		OK:       true,
		UserID:   identity,
		MovieID:  movieID,
		Decision: decision,
		SwipedAt: swipe.SwipedAt,
	}, nil
}

// ListSwipes returns the user's swipes newest first; an unknown user has none
func (s *SwipeService) ListSwipes(ctx context.Context, identity string) ([]models.SwipeListItem, error) {
	items := []models.SwipeListItem{}
	user, err := optionalUser(ctx, s.repos.Users, identity)
	if err != nil || user == nil {
		return items, err
	}

	swipes, err := s.repos.Swipes.GetUserSwipes(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for _, sw := range swipes {
		items = append(items, models.SwipeListItem{
			MovieID:  sw.MovieID,
			Decision: models.DecisionLabel(sw.Decision),
			SwipedAt: sw.SwipedAt,
		})
	}
	return items, nil
}
