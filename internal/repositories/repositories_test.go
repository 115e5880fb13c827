package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepos(t *testing.T) *Repositories {
	t.Helper()
	db, err := config.OpenSQL("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(db)
}

func strPtr(s string) *string { return &s }

func TestGetOrCreateUserIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	first, err := repos.Users.GetOrCreateUser(ctx, "demo")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	second, err := repos.Users.GetOrCreateUser(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	byID, err := repos.Users.GetUserByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "demo", byID.Email)
}

func TestUpsertMovieMergesNonNilFields(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	require.NoError(t, repos.Movies.UpsertMovie(ctx, models.MovieUpsert{
		ID:         550,
		Title:      "Fight Club",
		PosterPath: strPtr("/p.jpg"),
		Overview:   strPtr("first rule"),
	}))
	require.NoError(t, repos.Movies.UpsertMovie(ctx, models.MovieUpsert{
		ID:          550,
		ReleaseDate: strPtr("1999-10-15"),
		Overview:    strPtr("second rule"),
	}))

	m, err := repos.Movies.GetMovieByID(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", m.Title)
	assert.Equal(t, "/p.jpg", *m.PosterPath)
	assert.Equal(t, "1999-10-15", *m.ReleaseDate)
	assert.Equal(t, "second rule", *m.Overview)
}

func TestEnsureMovieExistsKeepsCachedRow(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	placeholder, err := repos.Movies.EnsureMovieExists(ctx, 13)
	require.NoError(t, err)
	assert.Equal(t, "TMDB:13", placeholder.Title)

	require.NoError(t, repos.Movies.UpsertMovie(ctx, models.MovieUpsert{ID: 13, Title: "Forrest Gump"}))
	m, err := repos.Movies.EnsureMovieExists(ctx, 13)
	require.NoError(t, err)
	assert.Equal(t, "Forrest Gump", m.Title)
}

func TestAddGenreToMovieTwiceIsNoop(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	require.NoError(t, repos.Movies.UpsertMovie(ctx, models.MovieUpsert{ID: 1, Title: "x"}))
	require.NoError(t, repos.Movies.UpsertGenre(ctx, models.Genre{ID: 18, Name: "Drama"}))
	require.NoError(t, repos.Movies.AddGenreToMovie(ctx, 1, 18))
	require.NoError(t, repos.Movies.AddGenreToMovie(ctx, 1, 18))

	genres, err := repos.Movies.GetGenresForMovies(ctx, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, []models.GenreRef{{ID: 18, Name: "Drama"}}, genres[1])
}

func TestSeenMovieIDsUnionsAllSources(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	user, err := repos.Users.GetOrCreateUser(ctx, "demo")
	require.NoError(t, err)
	for _, id := range []int64{1, 2, 3} {
		_, err := repos.Movies.EnsureMovieExists(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, repos.Swipes.CreateSwipe(ctx, &models.Swipe{UserID: user.ID, MovieID: 1, Decision: 1}))
	_, err = repos.MasterList.UpsertMasterListItem(ctx, user.ID, 2, nil, nil)
	require.NoError(t, err)
	_, err = repos.WatchLater.UpsertWatchLaterItem(ctx, user.ID, 3, nil)
	require.NoError(t, err)

	seen, err := repos.Users.GetSeenMovieIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{1: {}, 2: {}, 3: {}}, seen)
}

func TestCreateSwipeDuplicate(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	user, err := repos.Users.GetOrCreateUser(ctx, "demo")
	require.NoError(t, err)
	_, err = repos.Movies.EnsureMovieExists(ctx, 550)
	require.NoError(t, err)

	require.NoError(t, repos.Swipes.CreateSwipe(ctx, &models.Swipe{UserID: user.ID, MovieID: 550, Decision: 1}))
	err = repos.Swipes.CreateSwipe(ctx, &models.Swipe{UserID: user.ID, MovieID: 550, Decision: -1})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestWatchLaterNilPriority(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	user, err := repos.Users.GetOrCreateUser(ctx, "demo")
	require.NoError(t, err)
	_, err = repos.Movies.EnsureMovieExists(ctx, 7)
	require.NoError(t, err)

	item, err := repos.WatchLater.UpsertWatchLaterItem(ctx, user.ID, 7, nil)
	require.NoError(t, err)
	assert.EqualValues(t, models.DefaultWatchLaterPriority, item.Priority)

	three := 3
	_, err = repos.WatchLater.UpsertWatchLaterItem(ctx, user.ID, 7, &three)
	require.NoError(t, err)
	item, err = repos.WatchLater.UpsertWatchLaterItem(ctx, user.ID, 7, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, item.Priority)
}

func TestMasterListDeleteReportsCount(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	user, err := repos.Users.GetOrCreateUser(ctx, "demo")
	require.NoError(t, err)
	_, err = repos.Movies.EnsureMovieExists(ctx, 9)
	require.NoError(t, err)
	_, err = repos.MasterList.UpsertMasterListItem(ctx, user.ID, 9, nil, strPtr("n"))
	require.NoError(t, err)

	n, err := repos.MasterList.DeleteMasterListItem(ctx, user.ID, 9)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repos.MasterList.DeleteMasterListItem(ctx, user.ID, 9)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestFriendshipLookupsMatchEitherDirection(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	a, err := repos.Users.GetOrCreateUser(ctx, "a@example.com")
	require.NoError(t, err)
	b, err := repos.Users.GetOrCreateUser(ctx, "b@example.com")
	require.NoError(t, err)

	_, err = repos.Friendships.UpsertFriendship(ctx, a.ID, b.ID, models.FriendshipPending)
	require.NoError(t, err)

	f, err := repos.Friendships.GetFriendshipBetween(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, f.UserID)

	_, err = repos.Friendships.GetAcceptedFriendship(ctx, a.ID, b.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, repos.Friendships.UpdateFriendshipStatus(ctx, f, models.FriendshipAccepted))

	for _, subject := range []*models.User{a, b} {
		rows, err := repos.Friendships.GetAcceptedFriendships(ctx, subject.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		_, other := rows[0].OtherParty(subject.ID)
		assert.NotEqual(t, subject.Email, other.Email)
	}

	n, err := repos.Friendships.DeleteFriendship(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	err := repos.Transaction(ctx, func(tx *Repositories) error {
		if _, err := tx.Users.GetOrCreateUser(ctx, "rollback@example.com"); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = repos.Users.GetUserByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, repos.Ping(ctx))
}
