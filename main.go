package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/elegante-tailoring/storefront-api/routes"
	"github.com/elegante-tailoring/storefront-api/storage"
	"github.com/elegante-tailoring/storefront-api/store"
)

func main() {
	log.Println("✅ Starting storefront service...")

	// Load environment variables
	_ = godotenv.Load()

	// Open durable local storage and rehydrate the store
	backend := openBackend()
	s := store.New(backend)
	defer s.Close()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Storefront running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// openBackend picks the durable storage backend from the environment:
// STORE_BACKEND=sqlite|file|memory, state rooted at STORE_PATH.
func openBackend() storage.Backend {
	statePath := os.Getenv("STORE_PATH")
	if statePath == "" {
		statePath = "./data"
	}
	if err := os.MkdirAll(statePath, 0o755); err != nil {
		log.Fatalf("❌ Failed to create state directory: %v", err)
	}

	switch os.Getenv("STORE_BACKEND") {
	case "sqlite":
		backend, err := storage.OpenSQLite(filepath.Join(statePath, "storefront.db"))
		if err != nil {
			log.Fatalf("❌ Failed to open sqlite state: %v", err)
		}
		return backend
	case "memory":
		return storage.OpenMemory()
	default:
		backend, err := storage.OpenFile(statePath)
		if err != nil {
			log.Fatalf("❌ Failed to open state directory: %v", err)
		}
		return backend
	}
}
