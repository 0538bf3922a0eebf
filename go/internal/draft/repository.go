package draft

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/popacta/draftboard/go/internal/models"
	"github.com/popacta/draftboard/go/internal/sqlutil"
)

// Repository handles the draft_settings singleton and the pick ledger.
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new draft repository.
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// WithTx returns a copy of the repository bound to tx.
func (r *Repository) WithTx(tx *sql.Tx) *Repository {
	return &Repository{db: tx}
}

// GetSettings reads the singleton settings row.
func (r *Repository) GetSettings(ctx context.Context) (*models.DraftSettings, error) {
	var s models.DraftSettings
	err := r.db.QueryRowContext(ctx,
		`SELECT total_teams, rounds, current_pick, is_active, qb_slots, rb_slots, wr_slots, flex_slots
		 FROM draft_settings WHERE id = 1`).
		Scan(&s.TotalTeams, &s.Rounds, &s.CurrentPick, &s.IsActive,
			&s.QBSlots, &s.RBSlots, &s.WRSlots, &s.FlexSlots)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft settings: %w", err)
	}
	return &s, nil
}

// UpdateSettings writes the full singleton settings row.
func (r *Repository) UpdateSettings(ctx context.Context, s *models.DraftSettings) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE draft_settings
		 SET total_teams = ?, rounds = ?, current_pick = ?, is_active = ?,
		     qb_slots = ?, rb_slots = ?, wr_slots = ?, flex_slots = ?
		 WHERE id = 1`,
		s.TotalTeams, s.Rounds, s.CurrentPick, s.IsActive,
		s.QBSlots, s.RBSlots, s.WRSlots, s.FlexSlots)
	if err != nil {
		return fmt.Errorf("failed to update draft settings: %w", err)
	}
	return nil
}

// SetCurrentPick updates only the pick pointer.
func (r *Repository) SetCurrentPick(ctx context.Context, pick int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE draft_settings SET current_pick = ? WHERE id = 1", pick)
	if err != nil {
		return fmt.Errorf("failed to set current pick: %w", err)
	}
	return nil
}

// CreatePick appends a ledger entry.
func (r *Repository) CreatePick(ctx context.Context, playerID int64, pickNumber, roundNumber int, draftedAt time.Time) (*models.DraftPick, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO draft_picks (player_id, pick_number, round_number, drafted_at)
		 VALUES (?, ?, ?, ?)`,
		playerID, pickNumber, roundNumber, draftedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft pick: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read pick id: %w", err)
	}
	return &models.DraftPick{
		ID:          id,
		PlayerID:    playerID,
		PickNumber:  pickNumber,
		RoundNumber: roundNumber,
		DraftedAt:   draftedAt,
	}, nil
}

// GetPickByPlayer returns the ledger entry for a player, or nil if none exists.
func (r *Repository) GetPickByPlayer(ctx context.Context, playerID int64) (*models.DraftPick, error) {
	var p models.DraftPick
	err := r.db.QueryRowContext(ctx,
		`SELECT id, player_id, pick_number, round_number, drafted_at
		 FROM draft_picks WHERE player_id = ?`, playerID).
		Scan(&p.ID, &p.PlayerID, &p.PickNumber, &p.RoundNumber, &p.DraftedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pick for player %d: %w", playerID, err)
	}
	return &p, nil
}

// DeletePick removes one ledger entry by id.
func (r *Repository) DeletePick(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM draft_picks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete pick %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("pick %d not found", id)
	}
	return nil
}

// DeleteAllPicks empties the ledger and returns how many entries were removed.
func (r *Repository) DeleteAllPicks(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM draft_picks")
	if err != nil {
		return 0, fmt.Errorf("failed to delete picks: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}
	return int(affected), nil
}

// CountPicks returns the number of ledger entries.
func (r *Repository) CountPicks(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM draft_picks").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count picks: %w", err)
	}
	return n, nil
}
