package main

import (
	"context"
	"log"
	"os"

	"github.com/godilite/profdir/internal/app"
	"github.com/godilite/profdir/internal/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.LoadFromEnv()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	application, err := app.NewApp(cfg, logger, os.Stdout)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Fatal("Application exited with error", zap.Error(err))
	}
}
