// Package welcome serves the rotating greeting shown on the draft board.
package welcome

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/popacta/draftboard/go/internal/sqlutil"
)

// ErrNoMessages is returned when the welcome_messages table is empty.
var ErrNoMessages = errors.New("no welcome messages")

// Repository reads and seeds the welcome_messages table.
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new welcome repository.
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// RandomMessage returns one welcome message at random.
func (r *Repository) RandomMessage(ctx context.Context) (string, error) {
	var msg string
	err := r.db.QueryRowContext(ctx,
		"SELECT message FROM welcome_messages ORDER BY RANDOM() LIMIT 1").Scan(&msg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoMessages
		}
		return "", fmt.Errorf("failed to get welcome message: %w", err)
	}
	return msg, nil
}

// InsertMessage adds a welcome message.
func (r *Repository) InsertMessage(ctx context.Context, msg string) error {
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO welcome_messages (message) VALUES (?)", msg); err != nil {
		return fmt.Errorf("failed to insert welcome message: %w", err)
	}
	return nil
}
