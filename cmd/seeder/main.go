package main

import (
	"log"

	"github.com/pushp314/newsletter-api/internal/config"
	"github.com/pushp314/newsletter-api/internal/database"
	"github.com/pushp314/newsletter-api/internal/seeds"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("🔄 Running migrations (just in case)...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seeds.SeedNewsletters(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("✅ Seeding Complete")
}
