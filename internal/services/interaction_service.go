package services

import (
	"context"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/repositories"
)

type InteractionService struct {
	repos *repositories.Repositories
}

func NewInteractionService(repos *repositories.Repositories) *InteractionService {
	return &InteractionService{repos: repos}
}

// RecordInteraction answers the "have you seen it?" prompt. Seen and liked goes to the
// master list, unseen and wanted goes to watch later, anything else is skipped.
func (s *InteractionService) RecordInteraction(ctx context.Context, identity string, req models.MovieInteractionRequest) (*models.MovieInteractionResponse, error) {
	resp := &models.MovieInteractionResponse{
		OK:      true,
		UserID:  identity,
		MovieID: req.MovieID,
		Action:  models.ActionSkipped,
	}

	seen := req.HaveYouSeen != nil && *req.HaveYouSeen
	liked := req.DidYouLike != nil && *req.DidYouLike
	wanted := req.WantToSee != nil && *req.WantToSee

	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		user, err := tx.Users.GetOrCreateUser(ctx, identity)
		if err != nil {
			return err
		}
		if _, err := tx.Movies.EnsureMovieExists(ctx, req.MovieID); err != nil {
			return err
		}

		switch {
		case seen && liked:
			if _, err := tx.MasterList.UpsertMasterListItem(ctx, user.ID, req.MovieID, req.Rating, req.Notes); err != nil {
				return err
			}
			resp.Action = models.ActionSavedToMasterList
			resp.Details = map[string]any{"rating": req.Rating, "notes": req.Notes}
		case !seen && wanted:
			item, err := tx.WatchLater.UpsertWatchLaterItem(ctx, user.ID, req.MovieID, req.Priority)
			if err != nil {
				return err
			}
			resp.Action = models.ActionSavedToWatchLater
			resp.Details = map[string]any{"priority": item.Priority}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
