package main

import (
	"log"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/controllers"
	"github.com/modernhub/ecommerce-api/routes"
	"github.com/modernhub/ecommerce-api/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed the bootstrap SuperAdmin and fallback category
	controllers.CreateMainSuperAdmin()
	controllers.CreateDefaultCategory()

	// Media store is optional; product uploads are skipped without it
	if err := utils.InitMediaStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL); err != nil {
		utils.LogError("Failed to initialize media store: %v", err)
		log.Fatal("Failed to initialize media store:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
