// Package storage provides the sqlite database behind the draft board.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // sqlite driver
)

// Config holds database settings.
type Config struct {
	// Path is the file path to the sqlite database.
	Path string

	// MaxOpenConns caps open connections. Default: 10.
	MaxOpenConns int

	// MaxIdleConns caps idle connections in the pool. Default: 2.
	MaxIdleConns int

	// ConnMaxLifetime bounds how long a connection is reused. Default: 5 minutes.
	ConnMaxLifetime time.Duration

	// BusyTimeout is how long a writer waits on a locked database. Default: 5 seconds.
	BusyTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults for path.
func DefaultConfig(path string) *Config {
	return &Config{
		Path:            path,
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		BusyTimeout:     5 * time.Second,
	}
}

// ConfigFromEnv reads the DB_PATH environment variable (with a default)
// and returns a default Config for it.
func ConfigFromEnv() *Config {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "data/draftboard.db"
	}
	return DefaultConfig(path)
}

// Open creates a database connection with WAL journaling and foreign keys on.
// The parent directory is created if needed.
func Open(config *Config) (*sql.DB, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		config.Path, config.BusyTimeout.Milliseconds())

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(config.MaxOpenConns)
	conn.SetMaxIdleConns(config.MaxIdleConns)
	conn.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}
