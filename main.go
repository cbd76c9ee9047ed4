// main.go
package main

import (
	"context"
	"log"

	"jua-kazi/cmd"
	"jua-kazi/internal/cron"
	"jua-kazi/internal/data/repository"
	"jua-kazi/internal/data/seed"
	"jua-kazi/internal/wire"
	"jua-kazi/pkg/database"
	"jua-kazi/pkg/utils"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.StringP("config", "c", ".env", "path to the env config file")
	flag.Parse()

	// Load config
	config, err := utils.LoadConfig(*configPath)
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

	// Open the in-memory store
	db, err := database.InitDB(logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer db.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	if err := seed.Run(context.Background(), repos, config.Seed, logger); err != nil {
		logger.Fatal("Failed to seed store", zap.Error(err))
	}

	sweeper, err := cron.StartSessionSweeper(repos.Session, config.Session.CleanupSchedule, logger)
	if err != nil {
		logger.Fatal("Failed to start session sweeper", zap.Error(err))
	}
	defer sweeper.Stop()

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}

	logger.Info("Server exited properly")
}
