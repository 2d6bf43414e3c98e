package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Allowed CORS origins (comma separated in CORS_ORIGINS)
	CORSOrigins []string

	// Database configuration. Empty means the in-memory store,
	// postgres:// selects Postgres, anything else is a SQLite path.
	DatabaseURL string

	// Redis configuration for the suggestion cache. Caching is
	// disabled when RedisHost is empty.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// DeepSeek configuration for AI recipe suggestions. The static
	// catalog is used when no API key is configured.
	DeepSeekAPIKey string
	DeepSeekAPIURL string
	SuggestTimeout time.Duration

	// OpenAI configuration for recipe photo generation (optional).
	OpenAIAPIKey    string
	OpenAIImagesURL string

	// Seed the demo catalog and pantry on startup.
	SeedDemoData bool
}

// Load creates a Config from environment variables with defaults
// suitable for local development.
func Load() *Config {
	cfg := &Config{
		ServerHost:      os.Getenv("SERVER_HOST"),
		ServerPort:      getenv("PORT", "3001"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPort:       getenv("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		DeepSeekAPIKey:  os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekAPIURL:  getenv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIImagesURL: getenv("OPENAI_IMAGES_API_URL", "https://api.openai.com/v1/images/generations"),
		SuggestTimeout:  10 * time.Second,
		CacheTTL:        5 * time.Minute,
		SeedDemoData:    getenv("SEED_DEMO_DATA", "true") == "true",
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}

	if t := os.Getenv("SUGGEST_TIMEOUT_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.SuggestTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
