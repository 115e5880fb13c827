package services

import (
	"context"
	"fmt"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/repositories"
)

type GenreService struct {
	repos   *repositories.Repositories
	catalog CatalogSource
}

func NewGenreService(repos *repositories.Repositories, catalog CatalogSource) *GenreService {
	return &GenreService{repos: repos, catalog: catalog}
}

// SyncGenres copies the catalog's genre list into the store and returns how many were written
func (s *GenreService) SyncGenres(ctx context.Context) (int, error) {
	genres, err := s.catalog.Genres(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	count := 0
	err = s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		for _, g := range genres {
			if err := tx.Movies.UpsertGenre(ctx, models.Genre{ID: g.ID, Name: g.Name}); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
