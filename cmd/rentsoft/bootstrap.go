package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rentsoft/property-api/internal/infrastructure/config"
	"github.com/rentsoft/property-api/internal/infrastructure/db/sqldb"
	"github.com/rentsoft/property-api/pkg/logger"
)

// bootstrap loads configuration, initialises the logger and opens the
// database. Callers close the database.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "rentsoft",
	})

	db, err := sqldb.Connect(ctx, sqldb.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.URL,
		Logger: logger.Component("gorm"),
	})
	if err != nil {
		return nil, log, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, log, db, nil
}
