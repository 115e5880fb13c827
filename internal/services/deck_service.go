package services

import (
	"context"
	"fmt"
	"log"

	"github.com/anonto42/cinelog/backend/internal/deck"
	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/repositories"
)

// MaxDeckLimit caps how many cards one deck request may ask for.
const MaxDeckLimit = 100

type DeckService struct {
	repos   *repositories.Repositories
	catalog CatalogSource
}

func NewDeckService(repos *repositories.Repositories, catalog CatalogSource) *DeckService {
	return &DeckService{repos: repos, catalog: catalog}
}

// GetDeck builds the next page of unseen cards for identity. Returned movies are cached
// locally and their genres synced afterwards; neither step can fail the call.
func (s *DeckService) GetDeck(ctx context.Context, identity, cursor string, limit int) (*deck.Result, error) {
	if limit < 1 || limit > MaxDeckLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, MaxDeckLimit)
	}

	seen := map[int64]struct{}{}
	user, err := optionalUser(ctx, s.repos.Users, identity)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if seen, err = s.repos.Users.GetSeenMovieIDs(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	res, err := deck.Build(ctx, s.catalog, seen, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.cacheMovies(ctx, res.Results)
	s.syncGenres(ctx, res.Results)
	return res, nil
}

func (s *DeckService) cacheMovies(ctx context.Context, cards []deck.Card) {
	if len(cards) == 0 {
		return
	}
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		for _, c := range cards {
			err := tx.Movies.UpsertMovie(ctx, models.MovieUpsert{
				ID:           c.ID,
				Title:        c.Title,
				ReleaseDate:  c.ReleaseDate,
				PosterPath:   c.PosterPath,
				BackdropPath: c.BackdropPath,
				Overview:     c.Overview,
			})
			if err != nil {
				return fmt.Errorf("movie %d: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[deck] caching %d movies failed: %v", len(cards), err)
	}
}

// syncGenres links each card to its catalog genres. Every movie is its own unit: a failed
// detail fetch or write is logged and the loop moves on.
func (s *DeckService) syncGenres(ctx context.Context, cards []deck.Card) {
	for _, c := range cards {
		if err := s.syncMovieGenres(ctx, c.ID); err != nil {
			log.Printf("[deck] genre sync for movie %d failed: %v", c.ID, err)
		}
	}
}

func (s *DeckService) syncMovieGenres(ctx context.Context, movieID int64) error {
	details, err := s.catalog.MovieDetails(ctx, movieID)
	if err != nil {
		return err
	}
	return s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		for _, g := range details.Genres {
			if g.ID == 0 {
				continue
			}
			if err := tx.Movies.UpsertGenre(ctx, models.Genre{ID: g.ID, Name: g.Name}); err != nil {
				return err
			}
			if err := tx.Movies.AddGenreToMovie(ctx, movieID, g.ID); err != nil {
				return err
			}
		}
		return nil
	})
}
