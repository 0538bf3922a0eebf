package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/popacta/draftboard/go/internal/models"
	"github.com/popacta/draftboard/go/internal/sqlutil"
)

// Repository holds the read-only queries behind the ranking engine.
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new ranking repository.
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// PickSummary is a ledger entry joined with its player.
type PickSummary struct {
	PickID      int64           `json:"pick_id"`
	PlayerID    int64           `json:"player_id"`
	PlayerName  string          `json:"player_name"`
	Team        string          `json:"team"`
	Position    models.Position `json:"position"`
	PickNumber  int             `json:"pick_number"`
	RoundNumber int             `json:"round_number"`
	DraftedAt   time.Time       `json:"drafted_at"`
}

// RecentPicks returns up to limit ledger entries, newest pick first.
func (r *Repository) RecentPicks(ctx context.Context, limit int) ([]PickSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT dp.id, dp.player_id, p.name, p.team, p.position, dp.pick_number, dp.round_number, dp.drafted_at
		 FROM draft_picks dp
		 JOIN players p ON p.id = dp.player_id
		 ORDER BY dp.pick_number DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent picks: %w", err)
	}
	defer rows.Close()

	var picks []PickSummary
	for rows.Next() {
		var s PickSummary
		if err := rows.Scan(&s.PickID, &s.PlayerID, &s.PlayerName, &s.Team, &s.Position,
			&s.PickNumber, &s.RoundNumber, &s.DraftedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate picks: %w", err)
	}
	return picks, nil
}

// rankedPlayer is the slice of a player the VORP computation needs.
type rankedPlayer struct {
	ID              int64
	Position        models.Position
	ProjectedPoints float64
}

// availablePlayersRanked returns undrafted players ordered by projected points
// descending, ties broken by lowest id for determinism.
func (r *Repository) availablePlayersRanked(ctx context.Context) ([]rankedPlayer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, position, projected_points
		 FROM players
		 WHERE drafted_status = 0
		 ORDER BY projected_points DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query available players: %w", err)
	}
	defer rows.Close()

	var players []rankedPlayer
	for rows.Next() {
		var p rankedPlayer
		if err := rows.Scan(&p.ID, &p.Position, &p.ProjectedPoints); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}
