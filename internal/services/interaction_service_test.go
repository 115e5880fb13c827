package services

import (
	"context"
	"testing"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }

func TestInteractionSeenAndLikedGoesToMasterList(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	resp, err := NewInteractionService(repos).RecordInteraction(ctx, "demo", models.MovieInteractionRequest{
		MovieID:     550,
		HaveYouSeen: boolPtr(true),
		DidYouLike:  boolPtr(true),
		Rating:      floatPtr(4.5),
		Notes:       strPtr("great"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionSavedToMasterList, resp.Action)

	entries, err := NewListService(repos).GetMasterList(ctx, "demo", models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 4.5, *entries[0].Rating)
	assert.Equal(t, "great", *entries[0].Notes)
}

func TestInteractionUnseenAndWantedGoesToWatchLater(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewInteractionService(repos)

	resp, err := svc.RecordInteraction(ctx, "demo", models.MovieInteractionRequest{
		MovieID:     13,
		HaveYouSeen: boolPtr(false),
		WantToSee:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionSavedToWatchLater, resp.Action)
	assert.EqualValues(t, 1, resp.Details["priority"])

	resp, err = svc.RecordInteraction(ctx, "demo", models.MovieInteractionRequest{
		MovieID:     13,
		HaveYouSeen: boolPtr(false),
		WantToSee:   boolPtr(true),
		Priority:    intPtr(4),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, resp.Details["priority"])
}

func TestInteractionSkipped(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	resp, err := NewInteractionService(repos).RecordInteraction(ctx, "demo", models.MovieInteractionRequest{
		MovieID:     7,
		HaveYouSeen: boolPtr(true),
		DidYouLike:  boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionSkipped, resp.Action)
	assert.Nil(t, resp.Details)

	// the movie still counts as known
	_, err = repos.Movies.GetMovieByID(ctx, 7)
	assert.NoError(t, err)
}
