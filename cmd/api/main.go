package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/raj-vbeasy/youtubeapi/internal/api"
	"github.com/raj-vbeasy/youtubeapi/internal/config"
	"github.com/raj-vbeasy/youtubeapi/internal/models"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the sheet sync history store when configured
	var db *models.Database
	if cfg.SyncDBPath != "" {
		db, err = models.NewDatabase(cfg.SyncDBPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
	} else {
		log.Printf("SYNC_DB_PATH not set, sheet sync history disabled")
	}

	// Initialize the API server
	server := api.NewServer(cfg, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := server.Start(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
