package services

import (
	"context"
	"testing"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSwipeTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewSwipeService(repos)

	resp, err := svc.RecordSwipe(ctx, "demo", 550, models.DecisionLike)
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "demo", resp.UserID)
	assert.False(t, resp.SwipedAt.IsZero())

	_, err = svc.RecordSwipe(ctx, "demo", 550, models.DecisionNope)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRecordSwipeCreatesPlaceholderMovie(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	_, err := NewSwipeService(repos).RecordSwipe(ctx, "demo", 42, models.DecisionNope)
	require.NoError(t, err)

	m, err := repos.Movies.GetMovieByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "TMDB:42", m.Title)
}

func TestRecordSwipeRejectsUnknownDecision(t *testing.T) {
	_, err := NewSwipeService(newTestRepos(t)).RecordSwipe(context.Background(), "demo", 1, "maybe")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListSwipes(t *testing.T) {
	ctx := context.Background()
	svc := NewSwipeService(newTestRepos(t))

	items, err := svc.ListSwipes(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	_, err = svc.RecordSwipe(ctx, "demo", 1, models.DecisionLike)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, "demo", 2, models.DecisionNope)
	require.NoError(t, err)

	items, err = svc.ListSwipes(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, items, 2)
	decisions := map[int64]string{}
	for _, it := range items {
		decisions[it.MovieID] = it.Decision
	}
	assert.Equal(t, map[int64]string{1: "like", 2: "nope"}, decisions)
}
