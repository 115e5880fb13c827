package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// Cache stores serialized catalog responses. Expiry is the backend's concern.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// CachedClient serves catalog reads from a Cache and falls back to the API on a miss.
// Cache errors are logged and never fail a read.
type CachedClient struct {
	client *Client
	cache  Cache
}

func NewCachedClient(client *Client, cache Cache) *CachedClient {
	return &CachedClient{client: client, cache: cache}
}

func (c *CachedClient) DiscoverMovies(ctx context.Context, page int) (*DiscoverResponse, error) {
	key := fmt.Sprintf("discover:%s:%d", c.client.Language(), page)
	var out DiscoverResponse
	if c.lookup(ctx, key, &out) {
		return &out, nil
	}
	res, err := c.client.DiscoverMovies(ctx, page)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, res)
	return res, nil
}

func (c *CachedClient) Genres(ctx context.Context) ([]Genre, error) {
	key := "genres:" + c.client.Language()
	var out []Genre
	if c.lookup(ctx, key, &out) {
		return out, nil
	}
	res, err := c.client.Genres(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, res)
	return res, nil
}

func (c *CachedClient) MovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	key := fmt.Sprintf("movie:%s:%d", c.client.Language(), id)
	var out MovieDetails
	if c.lookup(ctx, key, &out) {
		return &out, nil
	}
	res, err := c.client.MovieDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, res)
	return res, nil
}

func (c *CachedClient) lookup(ctx context.Context, key string, dest any) bool {
	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[tmdb] cache get %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[tmdb] cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *CachedClient) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[tmdb] cache encode %s: %v", key, err)
		return
	}
	if err := c.cache.Set(ctx, key, raw); err != nil {
		log.Printf("[tmdb] cache set %s: %v", key, err)
	}
}
