package services

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/cinelog/backend/internal/deck"
	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardIDs(cards []deck.Card) []int64 {
	out := make([]int64, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestGetDeckSkipsSwipedMovies(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	catalog := &fakeCatalog{pages: [][]int64{{550, 680, 13}}}

	_, err := NewSwipeService(repos).RecordSwipe(ctx, "demo", 550, models.DecisionLike)
	require.NoError(t, err)

	res, err := NewDeckService(repos, catalog).GetDeck(ctx, "demo", "", 2)
	require.NoError(t, err)

	assert.Equal(t, []int64{680, 13}, cardIDs(res.Results))
	assert.True(t, res.HasMore)
	require.NotNil(t, res.Cursor)
	assert.Equal(t, deck.Position{Page: 1, Index: 3}, deck.DecodeCursor(*res.Cursor))
}

func TestGetDeckUnknownUserSeesEverything(t *testing.T) {
	repos := newTestRepos(t)
	catalog := &fakeCatalog{pages: [][]int64{{1, 2}}}

	res, err := NewDeckService(repos, catalog).GetDeck(context.Background(), "nobody@example.com", "", 5)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, cardIDs(res.Results))
	assert.False(t, res.HasMore)
	assert.Nil(t, res.Cursor)
}

func TestGetDeckCachesMoviesAndGenres(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	catalog := &fakeCatalog{
		pages:   [][]int64{{10, 20}},
		details: map[int64][]tmdb.Genre{10: {{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}},
	}

	_, err := NewDeckService(repos, catalog).GetDeck(ctx, "demo", "", 2)
	require.NoError(t, err)

	m, err := repos.Movies.GetMovieByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Movie 10", m.Title)

	genres, err := repos.Movies.GetGenresForMovies(ctx, []int64{10, 20})
	require.NoError(t, err)
	assert.Equal(t, []models.GenreRef{{ID: 18, Name: "Drama"}, {ID: 28, Name: "Action"}}, genres[10])
	assert.Empty(t, genres[20])
}

func TestGetDeckGenreFailureIsIsolatedPerMovie(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	catalog := &fakeCatalog{
		pages:       [][]int64{{1, 2, 3}},
		failDetails: map[int64]bool{2: true},
		details: map[int64][]tmdb.Genre{
			1: {{ID: 35, Name: "Comedy"}},
			3: {{ID: 27, Name: "Horror"}},
		},
	}

	res, err := NewDeckService(repos, catalog).GetDeck(ctx, "demo", "", 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, cardIDs(res.Results))

	genres, err := repos.Movies.GetGenresForMovies(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, genres[1], 1)
	assert.Empty(t, genres[2])
	assert.Len(t, genres[3], 1)
}

func TestGetDeckWrapsUpstreamErrors(t *testing.T) {
	repos := newTestRepos(t)
	catalog := &fakeCatalog{discoverErr: errors.New("timeout")}

	_, err := NewDeckService(repos, catalog).GetDeck(context.Background(), "demo", "", 5)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetDeckRejectsBadLimit(t *testing.T) {
	svc := NewDeckService(newTestRepos(t), &fakeCatalog{})

	_, err := svc.GetDeck(context.Background(), "demo", "", 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.GetDeck(context.Background(), "demo", "", MaxDeckLimit+1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSyncGenres(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	catalog := &fakeCatalog{genres: []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}}
	svc := NewGenreService(repos, catalog)

	n, err := svc.SyncGenres(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// renames apply on the second run
	catalog.genres = []tmdb.Genre{{ID: 28, Name: "Action & Adventure"}}
	n, err = svc.SyncGenres(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repos.Movies.UpsertMovie(ctx, models.MovieUpsert{ID: 1, Title: "x"}))
	require.NoError(t, repos.Movies.AddGenreToMovie(ctx, 1, 28))
	genres, err := repos.Movies.GetGenresForMovies(ctx, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, "Action & Adventure", genres[1][0].Name)
}

func TestSyncGenresUpstreamFailure(t *testing.T) {
	_, err := NewGenreService(newTestRepos(t), &fakeCatalog{}).SyncGenres(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}
