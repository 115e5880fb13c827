// Package deck builds pages of swipeable movie cards on top of the page-numbered,
// popularity-sorted catalog feed, skipping movies the user has already seen and handing
// back an opaque cursor that resumes exactly after the last entry examined.
package deck

import (
	"context"

	"github.com/anonto42/cinelog/backend/pkg/tmdb"
)

// MaxPage is the highest discover page the catalog serves.
const MaxPage = 500

const (
	DefaultLimit     = 20
	untitledFallback = "Untitled"
)

// PageSource is the slice of the catalog the builder reads from.
type PageSource interface {
	DiscoverMovies(ctx context.Context, page int) (*tmdb.DiscoverResponse, error)
}

type Card struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	Overview     *string `json:"overview"`
	ReleaseDate  *string `json:"release_date"`
}

type Result struct {
	Results []Card  `json:"results"`
	Cursor  *string `json:"cursor"`
	HasMore bool    `json:"has_more"`
}

// Build collects up to limit cards whose ids are not in seen, starting at cursor.
// Pages are fetched one at a time; an empty page or the MaxPage ceiling ends the feed.
// A source error aborts the build.
func Build(ctx context.Context, src PageSource, seen map[int64]struct{}, cursor string, limit int) (*Result, error) {
	start := DecodeCursor(cursor)
	if start.Page < 1 {
		start = Start
	}

	res := &Result{Results: make([]Card, 0, max(limit, 0))}
	for page := start.Page; page <= MaxPage && len(res.Results) < limit; page++ {
		payload, err := src.DiscoverMovies(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(payload.Results) == 0 {
			break
		}

		offset := 0
		if page == start.Page {
			offset = start.Index
		}
		for i := offset; i < len(payload.Results); i++ {
			m := payload.Results[i]
			if _, ok := seen[m.ID]; ok {
				continue
			}
			res.Results = append(res.Results, cardFrom(m))
			if len(res.Results) >= limit {
				next := EncodeCursor(Position{Page: page, Index: i + 1})
				res.Cursor = &next
				res.HasMore = true
				return res, nil
			}
		}
	}
	return res, nil
}

func cardFrom(m tmdb.DiscoverMovie) Card {
	title := m.Title
	if title == "" {
		title = m.Name
	}
	if title == "" {
		title = untitledFallback
	}
	return Card{
		ID:           m.ID,
		Title:        title,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		Overview:     m.Overview,
		ReleaseDate:  m.ReleaseDate,
	}
}
