package main

import (
	"fmt"

	"syncloud/internal/config"
	"syncloud/internal/database"
	"syncloud/internal/engine"
	"syncloud/internal/logger"
	"syncloud/internal/registry"
	"syncloud/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBDSN, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	eng := engine.New(engine.Config{
		DB:       db,
		Registry: registry.New(),
		Logger:   log,
	})

	r := server.NewRouter(eng, log)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
