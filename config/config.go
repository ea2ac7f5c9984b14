package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort string `envconfig:"PORT" default:"3000"`

	// APIBaseURL is the content backend; AssetBaseURL overrides where
	// uploaded media is served from when that differs from the API host.
	APIBaseURL   string `envconfig:"API_BASE_URL" default:"http://localhost:4000/api"`
	AssetBaseURL string `envconfig:"ASSET_BASE_URL"`

	// ContentRevalidateSeconds is the content cache TTL; 0 disables caching.
	ContentRevalidateSeconds int  `envconfig:"CONTENT_REVALIDATE_SECONDS" default:"60"`
	SkipBackendValidation    bool `envconfig:"SKIP_BACKEND_VALIDATION" default:"false"`
}

func Load() Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	return cfg
}

// AssetBase is the base URL the media resolver derives its origin from.
func (c Config) AssetBase() string {
	if c.AssetBaseURL != "" {
		return c.AssetBaseURL
	}
	return c.APIBaseURL
}

func (c Config) ContentTTL() time.Duration {
	return time.Duration(c.ContentRevalidateSeconds) * time.Second
}
