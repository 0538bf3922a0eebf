package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/popacta/draftboard/go/internal/models"
	"github.com/popacta/draftboard/go/internal/sqlutil"
)

// Repository handles all player-related database operations.
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new player repository.
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// WithTx returns a copy of the repository bound to tx.
func (r *Repository) WithTx(tx *sql.Tx) *Repository {
	return &Repository{db: tx}
}

const playerColumns = "id, name, position, team, projected_points, bye_week, drafted_status, target_status, created_at"

// CreatePlayerRequest contains all data needed to create a player.
type CreatePlayerRequest struct {
	Name            string
	Position        models.Position
	Team            string
	ProjectedPoints float64
	ByeWeek         int
}

// UpdatePlayerRequest is a partial update of a player's editable fields.
// Nil fields are left untouched. DraftedStatus is deliberately absent;
// that flag belongs to the draft state machine.
type UpdatePlayerRequest struct {
	Name            *string
	Position        *models.Position
	Team            *string
	ProjectedPoints *float64
	ByeWeek         *int
	TargetStatus    *models.TargetStatus
}

func scanPlayer(row *sql.Row) (*models.Player, error) {
	var p models.Player
	err := row.Scan(&p.ID, &p.Name, &p.Position, &p.Team, &p.ProjectedPoints,
		&p.ByeWeek, &p.DraftedStatus, &p.TargetStatus, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlayer retrieves a player by id.
func (r *Repository) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+playerColumns+" FROM players WHERE id = ?", id)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return p, nil
}

// ListPlayers returns the full player pool ordered by id.
func (r *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+playerColumns+" FROM players ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.Team, &p.ProjectedPoints,
			&p.ByeWeek, &p.DraftedStatus, &p.TargetStatus, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// UpdatePlayer applies a partial field update and returns the updated player.
func (r *Repository) UpdatePlayer(ctx context.Context, id int64, req UpdatePlayerRequest) (*models.Player, error) {
	var sets []string
	var args []any

	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Position != nil {
		sets = append(sets, "position = ?")
		args = append(args, *req.Position)
	}
	if req.Team != nil {
		sets = append(sets, "team = ?")
		args = append(args, *req.Team)
	}
	if req.ProjectedPoints != nil {
		sets = append(sets, "projected_points = ?")
		args = append(args, *req.ProjectedPoints)
	}
	if req.ByeWeek != nil {
		sets = append(sets, "bye_week = ?")
		args = append(args, *req.ByeWeek)
	}
	if req.TargetStatus != nil {
		sets = append(sets, "target_status = ?")
		args = append(args, *req.TargetStatus)
	}

	if len(sets) == 0 {
		return r.GetPlayer(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE players SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrPlayerNotFound
	}

	return r.GetPlayer(ctx, id)
}

// SetDrafted flips the drafted flag for one player.
func (r *Repository) SetDrafted(ctx context.Context, id int64, drafted bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE players SET drafted_status = ? WHERE id = ?", drafted, id)
	if err != nil {
		return fmt.Errorf("failed to set drafted status for player %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read drafted update result: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// ClearAllDrafted marks every player undrafted and returns how many rows changed.
func (r *Repository) ClearAllDrafted(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE players SET drafted_status = 0 WHERE drafted_status = 1")
	if err != nil {
		return 0, fmt.Errorf("failed to clear drafted statuses: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read clear result: %w", err)
	}
	return int(affected), nil
}

// DeleteAllPlayers empties the players table.
func (r *Repository) DeleteAllPlayers(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM players"); err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}
	return nil
}

// InsertPlayers inserts a batch of new players with fresh ids.
func (r *Repository) InsertPlayers(ctx context.Context, reqs []CreatePlayerRequest, createdAt time.Time) (int, error) {
	for i, req := range reqs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO players (name, position, team, projected_points, bye_week, drafted_status, target_status, created_at)
			 VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
			req.Name, req.Position, req.Team, req.ProjectedPoints, req.ByeWeek,
			models.TargetStatusDefault, createdAt)
		if err != nil {
			return i, fmt.Errorf("failed to insert player %q: %w", req.Name, err)
		}
	}
	return len(reqs), nil
}
