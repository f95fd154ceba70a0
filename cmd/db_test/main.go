package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-hh-publisher/internal/config"
	"go-hh-publisher/internal/database"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Archive.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set. Please check your .env file.")
	}

	fmt.Println("Attempting to connect to PostgreSQL...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := database.ConnectDB(ctx, cfg.Archive.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to the database: %v\n(Check your connection string and password)", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("❌ Schema check failed: %v", err)
	}

	today := time.Now()
	n, err := repo.CountPublished(ctx, today)
	if err != nil {
		log.Fatalf("❌ Query failed: %v", err)
	}

	fmt.Println("✅ Archive database is reachable!")
	fmt.Printf("📦 Vacancies published on %s: %d\n", today.Format(time.DateOnly), n)
}
