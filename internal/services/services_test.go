package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/anonto42/cinelog/backend/internal/repositories"
	"github.com/anonto42/cinelog/backend/pkg/config"
	"github.com/anonto42/cinelog/backend/pkg/tmdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	db, err := config.OpenSQL("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, repositories.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repositories.New(db)
}

// fakeCatalog serves pages[i] as discover page i+1 and genres per movie from details.
type fakeCatalog struct {
	pages       [][]int64
	genres      []tmdb.Genre
	details     map[int64][]tmdb.Genre
	failDetails map[int64]bool
	discoverErr error
}

func (f *fakeCatalog) DiscoverMovies(_ context.Context, page int) (*tmdb.DiscoverResponse, error) {
	if f.discoverErr != nil {
		return nil, f.discoverErr
	}
	res := &tmdb.DiscoverResponse{Page: page}
	if page < 1 || page > len(f.pages) {
		return res, nil
	}
	for _, id := range f.pages[page-1] {
		res.Results = append(res.Results, tmdb.DiscoverMovie{ID: id, Title: fmt.Sprintf("Movie %d", id)})
	}
	return res, nil
}

func (f *fakeCatalog) Genres(context.Context) ([]tmdb.Genre, error) {
	if f.genres == nil {
		return nil, errors.New("genres unavailable")
	}
	return f.genres, nil
}

func (f *fakeCatalog) MovieDetails(_ context.Context, id int64) (*tmdb.MovieDetails, error) {
	if f.failDetails[id] {
		return nil, &tmdb.StatusError{StatusCode: 500, Endpoint: "/movie"}
	}
	return &tmdb.MovieDetails{ID: id, Title: fmt.Sprintf("Movie %d", id), Genres: f.details[id]}, nil
}
