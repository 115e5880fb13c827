package services

import (
	"context"

	"github.com/anonto42/cinelog/backend/pkg/tmdb"
)

// CatalogSource is the upstream movie catalog. *tmdb.Client and *tmdb.CachedClient satisfy it.
type CatalogSource interface {
	DiscoverMovies(ctx context.Context, page int) (*tmdb.DiscoverResponse, error)
	Genres(ctx context.Context) ([]tmdb.Genre, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.MovieDetails, error)
}
