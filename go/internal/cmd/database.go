package main

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/popacta/draftboard/go/internal/storage"
)

func setupDatabase(cfg *Config) (*sql.DB, error) {
	mgr, err := storage.NewMigrationManager(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration manager: %w", err)
	}
	if err := mgr.Up(); err != nil {
		return nil, err
	}
	if err := mgr.Close(); err != nil {
		return nil, err
	}

	db, err := storage.Open(storage.DefaultConfig(cfg.Database.Path))
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.Database.Path).Msg("database ready")
	return db, nil
}
