package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"yatrat/config"
	"yatrat/dataset"
	"yatrat/handlers"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	cfg := config.Load()

	cache, err := dataset.NewFileCache(cfg.Data.CacheDir)
	if err != nil {
		log.Printf("⚠️  Data cache disabled: %v", err)
		cache = nil
	}

	source := &dataset.Source{
		CityListURL:   cfg.Data.CityListURL,
		TravelDataURL: cfg.Data.TravelDataURL,
		Retries:       cfg.Data.Retries,
		Backoff:       cfg.Data.Backoff,
		CacheTTL:      cfg.Data.CacheTTL,
		Cache:         cache,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	snapshot, err := source.Load(ctx)
	cancel()
	if err != nil {
		log.Fatalf("❌ Failed to load travel data: %v", err)
	}

	app := handlers.NewApp(cfg, snapshot)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Trusted proxies (deploys sit behind a proxy)
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	app.Routes(r)

	log.Printf("🚀 Yatrat backend starting on port %s (resolve policy: %s)", cfg.Port, cfg.Policy())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
