// main.go
package main

import (
	"context"
	"log"

	"wastecare-sesnet/cmd"
	"wastecare-sesnet/internal/data/repository"
	"wastecare-sesnet/internal/wire"
	"wastecare-sesnet/pkg/blob"
	"wastecare-sesnet/pkg/database"
	"wastecare-sesnet/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to document store
	store, err := database.InitDB(config.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer store.Close(context.Background())

	logger.Info("Database connected successfully")

	// Blob storage for flyer uploads
	uploader, err := blob.NewS3Uploader(context.Background(), config.Blob)
	if err != nil {
		logger.Fatal("Failed to init blob storage", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(store, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, uploader, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
