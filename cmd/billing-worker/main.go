package main

import (
	"context"
	"log"
	"os"

	"github.com/rogulenkoko/MenuCraft-sub000/internal/billing"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/db"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/profile"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("💳 Billing Worker starting...")

	required := []string{"DATABASE_URL", "STRIPE_SECRET_KEY"}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// Database connection
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	log.Println("✅ Connected to PostgreSQL")

	eventRepo := billing.NewPostgresEventRepository(pgDB)
	profileService := profile.NewService(profile.NewPostgresRepository(pgDB))
	billingService := billing.NewService(eventRepo, profileService)
	worker := billing.NewWorker(eventRepo, billingService)

	log.Println("✅ Billing Worker initialized and running...")
	log.Println("Processing Stripe events every 2 seconds. Press Ctrl+C to stop.")

	worker.Run(context.Background())
}
