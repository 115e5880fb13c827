// Package tmdb is a small client for the parts of The Movie Database API the deck and
// genre sync need: the popularity-sorted discover feed, the genre list and movie details.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.themoviedb.org/3"

// DiscoverMovie is one entry of a discover page. TV-shaped entries carry Name instead of Title.
type DiscoverMovie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	Overview     *string `json:"overview"`
	ReleaseDate  *string `json:"release_date"`
}

type DiscoverResponse struct {
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
	Results      []DiscoverMovie `json:"results"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

type MovieDetails struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	Overview     *string `json:"overview"`
	ReleaseDate  *string `json:"release_date"`
	Runtime      int     `json:"runtime"`
	Genres       []Genre `json:"genres"`
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.StatusCode)
}

type Options struct {
	BaseURL         string
	ReadAccessToken string
	APIKey          string
	Language        string
	Timeout         time.Duration
	HTTPClient      *http.Client
}

type Client struct {
	baseURL  string
	token    string
	apiKey   string
	language string
	httpc    *http.Client
}

func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	httpc := opts.HTTPClient
	if httpc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:  base,
		token:    strings.TrimSpace(opts.ReadAccessToken),
		apiKey:   strings.TrimSpace(opts.APIKey),
		language: opts.Language,
		httpc:    httpc,
	}
}

func (c *Client) Language() string { return c.language }

// DiscoverMovies fetches one page of the popularity-sorted movie feed.
func (c *Client) DiscoverMovies(ctx context.Context, page int) (*DiscoverResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("sort_by", "popularity.desc")
	q.Set("include_adult", "false")
	q.Set("include_video", "false")

	var out DiscoverResponse
	if err := c.get(ctx, "/discover/movie", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var out GenreListResponse
	if err := c.get(ctx, "/genre/movie/list", url.Values{}, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

func (c *Client) MovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	var out MovieDetails
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get issues a single request; failures are returned to the caller without retrying.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values, v any) error {
	if c.language != "" {
		q.Set("language", c.language)
	}
	if c.token == "" && c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb %s: %w", endpoint, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{StatusCode: res.StatusCode, Endpoint: endpoint}
	}
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("tmdb %s: decode response: %w", endpoint, err)
	}
	return nil
}
