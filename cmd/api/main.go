package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/replate-app/backend/config"
	"github.com/replate-app/backend/internal/router"
	"github.com/replate-app/backend/internal/server"
	"github.com/replate-app/backend/internal/service"
	"github.com/replate-app/backend/internal/store"
)

func main() {
	cfg := config.Load()

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	if cfg.SeedDemoData {
		if err := store.Seed(context.Background(), st); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Seeded demo catalog and pantry")
	}

	var cache *service.SuggestionCache
	if cfg.RedisHost != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis unavailable, suggestion caching disabled: %v", err)
		} else {
			cache = service.NewSuggestionCache(client, cfg.CacheTTL)
		}
	}

	var generator service.RecipeGenerator
	if cfg.DeepSeekAPIKey != "" {
		generator = service.NewDeepSeekGenerator(cfg.DeepSeekAPIKey, cfg.DeepSeekAPIURL)
		log.Println("AI recipe generation enabled")
	} else {
		log.Println("DEEPSEEK_API_KEY not set, serving recipes from the catalog")
	}

	var photos *service.ImageService
	if cfg.OpenAIAPIKey != "" {
		s3Config, err := config.NewS3Config(context.Background())
		if err != nil {
			log.Printf("S3 unavailable, photos will not be re-hosted: %v", err)
		}
		photos = service.NewImageService(cfg.OpenAIAPIKey, cfg.OpenAIImagesURL, s3Config)
	}

	suggestions := service.NewSuggestionService(st, generator, cache, photos, cfg.SuggestTimeout)
	moods := service.NewMoodService(st)

	r := router.New(cfg, router.Deps{
		Store:       st,
		Suggestions: suggestions,
		Moods:       moods,
	})
	srv := server.New(cfg, r)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// openStore selects the persistence backend from DATABASE_URL. Empty
// means in-memory, which is enough for the demo frontend.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory store")
		return store.NewMemoryStore(), nil
	}
	return store.Open(cfg.DatabaseURL)
}
