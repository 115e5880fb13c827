package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/cinelog/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieRepository defines the interface for movie and genre data operations
type MovieRepository interface {
	UpsertMovie(ctx context.Context, m models.MovieUpsert) error
	EnsureMovieExists(ctx context.Context, id int64) (*models.Movie, error)
	GetMovieByID(ctx context.Context, id int64) (*models.Movie, error)
	UpsertGenre(ctx context.Context, genre models.Genre) error
	AddGenreToMovie(ctx context.Context, movieID, genreID int64) error
	GetGenresForMovies(ctx context.Context, movieIDs []int64) (map[int64][]models.GenreRef, error)
}

// GormMovieRepository implements MovieRepository with gorm
type GormMovieRepository struct {
	db *gorm.DB
}

// NewGormMovieRepository creates a new GormMovieRepository
func NewGormMovieRepository(db *gorm.DB) *GormMovieRepository {
	return &GormMovieRepository{db: db}
}

// UpsertMovie creates the movie or merges the non-nil fields of m into the stored row
func (r *GormMovieRepository) UpsertMovie(ctx context.Context, m models.MovieUpsert) error {
	var existing models.Movie
	err := r.db.WithContext(ctx).Where("id = ?", m.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		title := m.Title
		if title == "" {
			title = placeholderTitle(m.ID)
		}
		return r.db.WithContext(ctx).Create(&models.Movie{
			ID:           m.ID,
			Title:        title,
			ReleaseDate:  m.ReleaseDate,
			PosterPath:   m.PosterPath,
			BackdropPath: m.BackdropPath,
			Overview:     m.Overview,
		}).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if m.Title != "" {
		updates["title"] = m.Title
	}
	if m.ReleaseDate != nil {
		updates["release_date"] = *m.ReleaseDate
	}
	if m.PosterPath != nil {
		updates["poster_path"] = *m.PosterPath
	}
	if m.BackdropPath != nil {
		updates["backdrop_path"] = *m.BackdropPath
	}
	if m.Overview != nil {
		updates["overview"] = *m.Overview
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", m.ID).Updates(updates).Error
}

// EnsureMovieExists returns the movie, creating a placeholder row when it is not cached yet
func (r *GormMovieRepository) EnsureMovieExists(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.WithContext(ctx).
		Where(models.Movie{ID: id}).
		Attrs(models.Movie{Title: placeholderTitle(id)}).
		FirstOrCreate(&movie).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetMovieByID retrieves a movie by catalog ID
func (r *GormMovieRepository) GetMovieByID(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// UpsertGenre creates the genre or renames it
func (r *GormMovieRepository) UpsertGenre(ctx context.Context, genre models.Genre) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&genre).Error
}

// AddGenreToMovie links a genre to a movie; linking twice is a no-op
func (r *GormMovieRepository) AddGenreToMovie(ctx context.Context, movieID, genreID int64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.MovieGenre{MovieID: movieID, GenreID: genreID}).Error
}

// GetGenresForMovies returns the genres of each movie, ordered by name
func (r *GormMovieRepository) GetGenresForMovies(ctx context.Context, movieIDs []int64) (map[int64][]models.GenreRef, error) {
	result := make(map[int64][]models.GenreRef, len(movieIDs))
	if len(movieIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		MovieID int64
		ID      int64
		Name    string
	}
	err := r.db.WithContext(ctx).Table("movie_genres AS mg").
		Select("mg.movie_id, g.id, g.name").
		Joins("JOIN genres g ON g.id = mg.genre_id").
		Where("mg.movie_id IN ?", movieIDs).
		Order("g.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.MovieID] = append(result[row.MovieID], models.GenreRef{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

func placeholderTitle(id int64) string {
	return fmt.Sprintf("TMDB:%d", id)
}
