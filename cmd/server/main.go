package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/server"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     Categories, questions and quiz play for the trivia web client
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.Database, zlog)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	zlog.Info("database migrated")

	if cfg.Database.Seed {
		n, err := database.Seed(ctx, db)
		if err != nil {
			return err
		}
		if n > 0 {
			zlog.Info("categories seeded", zap.Int("count", n))
		}
	}

	gin.SetMode(cfg.Server.Mode)

	trivia := services.NewTriviaService(database.NewStore(db), services.NewLockedRand(cfg.Quiz.Seed))
	srv := server.New(trivia, zlog)

	return srv.Run(ctx, fmt.Sprintf(":%s", cfg.Server.Port), cfg.Server.ShutdownTimeout)
}
