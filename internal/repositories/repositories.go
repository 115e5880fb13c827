package repositories

import (
	"context"

	"github.com/anonto42/cinelog/backend/internal/models"
	"gorm.io/gorm"
)

// Repositories bundles every repository over one gorm handle so a service can run several
// of them inside a single transaction.
type Repositories struct {
	db          *gorm.DB
	Users       UserRepository
	Movies      MovieRepository
	Swipes      SwipeRepository
	MasterList  MasterListRepository
	WatchLater  WatchLaterRepository
	Friendships FriendshipRepository
}

// New creates the repository bundle over db
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		Users:       NewGormUserRepository(db),
		Movies:      NewGormMovieRepository(db),
		Swipes:      NewGormSwipeRepository(db),
		MasterList:  NewGormMasterListRepository(db),
		WatchLater:  NewGormWatchLaterRepository(db),
		Friendships: NewGormFriendshipRepository(db),
	}
}

// Transaction runs fn with a bundle bound to one transaction. Returning an error rolls it back.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Ping checks that the store answers
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate creates or updates every table, parents before children
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Genre{},
		&models.Movie{},
		&models.MovieGenre{},
		&models.Swipe{},
		&models.MasterListItem{},
		&models.WatchLaterItem{},
		&models.Friendship{},
	)
}
