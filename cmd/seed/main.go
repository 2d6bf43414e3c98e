package main

import (
	"context"
	"log"
	"os"

	"github.com/replate-app/backend/internal/store"
)

// Seeds the demo catalog, starter pantry, and recipes into the
// database named by DATABASE_URL.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	st, err := store.Open(dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := store.Seed(context.Background(), st); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}
	log.Println("Demo data seeded successfully")
}
