package main

import (
	"context"
	"log"
	"time"

	"staffhive/internal/config"
	"staffhive/internal/database/migration"
	dbpostgres "staffhive/internal/database/postgres"
	"staffhive/internal/pkg/logger"
	"staffhive/internal/seeder"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.IsProduction(), true)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := migration.Run(ctx, db); err != nil {
		zl.Fatal("failed to run migrations", zap.Error(err))
	}

	if err := seeder.New(db, zl).Run(ctx); err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}
}
