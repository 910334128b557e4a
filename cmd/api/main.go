package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/rogulenkoko/MenuCraft-sub000/internal/auth"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/billing"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/db"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/document"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/generation"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/llm"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/middleware"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/profile"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/restaurant"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"ANTHROPIC_API_KEY",
		"ANTHROPIC_MODEL",
		"STRIPE_SECRET_KEY",
		"STRIPE_WEBHOOK_SECRET",
		"STRIPE_PRICE_ACTIVATION",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	profileRepo := profile.NewPostgresRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	documentRepo := document.NewPostgresRepository(pgDB)
	generationRepo := generation.NewPostgresRepository(pgDB)
	eventRepo := billing.NewPostgresEventRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	profileService := profile.NewService(profileRepo)
	authService := auth.NewService(userRepo, profileService)
	restaurantService := restaurant.NewService(restaurantRepo)
	documentService := document.NewService(documentRepo, r2Client)

	llmClient := llm.NewAnthropicClient()
	generationService := generation.NewService(
		generationRepo,
		profileService,
		documentService,
		restaurantService,
		llmClient,
		r2Client,
	)

	billingService := billing.NewService(eventRepo, profileService)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService)
	restaurantHandler := restaurant.NewHandler(restaurantService)
	documentHandler := document.NewHandler(documentService)
	generationHandler := generation.NewHandler(generationService)
	billingHandler := billing.NewHandler(billingService)

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── API ROUTES ─────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/profile", profileHandler.Me)

		api.POST("/upload", documentHandler.Upload)
		api.GET("/documents", documentHandler.ListMine)
		api.GET("/documents/:id", documentHandler.Get)

		api.POST("/restaurants", restaurantHandler.CreateRestaurant)
		api.GET("/restaurants/me", restaurantHandler.ListMyRestaurants)

		api.POST("/generate", middleware.GenerateRateLimit(), generationHandler.Generate)
		api.GET("/generations", generationHandler.ListMine)
		api.GET("/generations/:id", generationHandler.Get)
		api.GET("/generations/:id/download", generationHandler.Download)

		api.POST("/billing/checkout", billingHandler.Checkout)
		api.POST("/billing/portal", billingHandler.Portal)
	}

	// Stripe calls this, so it stays outside auth. Signature check is
	// the gate.
	r.POST("/api/billing/webhook", billingHandler.Webhook)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/generations/recent", generationHandler.AdminRecent)
		admin.POST("/users/:id/credits", profileHandler.AdminGrantCredits)
	}

	// ───────────────────────── BILLING WORKER ─────────────────────────
	billing.Start(billing.NewWorker(eventRepo, billingService))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
