package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
	Env  string `envconfig:"ENV" default:"development"`

	DatabaseDriver string `envconfig:"DB_DRIVER" default:"postgres"`
	DatabaseURL    string `envconfig:"DATABASE_URL" required:"true"`

	MongoURI      string `envconfig:"MONGO_URI"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"cinelog"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// CatalogCache selects where catalog responses are cached: none, memory, mongo or redis.
	CatalogCache     string        `envconfig:"CATALOG_CACHE" default:"memory"`
	CatalogCacheTTL  time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"10m"`
	CatalogCacheSize int           `envconfig:"CATALOG_CACHE_SIZE" default:"512"`

	TMDBBaseURL         string        `envconfig:"TMDB_BASE_URL" default:"https://api.themoviedb.org/3"`
	TMDBReadAccessToken string        `envconfig:"TMDB_READ_ACCESS_TOKEN"`
	TMDBAPIKey          string        `envconfig:"TMDB_API_KEY"`
	TMDBLanguage        string        `envconfig:"TMDB_LANGUAGE" default:"en-US"`
	TMDBTimeout         time.Duration `envconfig:"TMDB_TIMEOUT" default:"10s"`

	Log LogConfig
}

// LogConfig controls optional rotation of the process log file.
type LogConfig struct {
	File       string `envconfig:"LOG_FILE"`
	MaxSize    int    `envconfig:"LOG_MAX_SIZE_MB" default:"50"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAge     int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
	Compress   bool   `envconfig:"LOG_COMPRESS" default:"false"`
}

// Load reads the configuration from the environment, loading a .env file first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TMDBReadAccessToken == "" && c.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB_READ_ACCESS_TOKEN or TMDB_API_KEY must be set")
	}
	switch c.CatalogCache {
	case "none", "memory":
	case "mongo":
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI must be set when CATALOG_CACHE=mongo")
		}
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR must be set when CATALOG_CACHE=redis")
		}
	default:
		return fmt.Errorf("unknown CATALOG_CACHE %q", c.CatalogCache)
	}
	return nil
}
