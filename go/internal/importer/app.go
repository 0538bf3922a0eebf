// Package importer replaces the whole player pool from an uploaded tabular
// file in one exclusive transaction.
package importer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/popacta/draftboard/go/internal/draft"
	"github.com/popacta/draftboard/go/internal/player"
	"github.com/popacta/draftboard/go/internal/sqlutil"
)

// App performs bulk replacement of the player store.
type App struct {
	db      *sql.DB
	players *player.Repository
	drafts  *draft.Repository
	guard   *draft.Guard
	clock   clockwork.Clock
}

// NewApp creates a new importer App.
func NewApp(db *sql.DB, players *player.Repository, drafts *draft.Repository, guard *draft.Guard, clock clockwork.Clock) *App {
	return &App{
		db:      db,
		players: players,
		drafts:  drafts,
		guard:   guard,
		clock:   clock,
	}
}

// Result summarizes a completed import.
type Result struct {
	BatchID  uuid.UUID `json:"batch_id"`
	Inserted int       `json:"inserted"`
	Summary  string    `json:"summary"`
}

// ReplacePlayers supersedes the entire player pool with rows. Because fresh
// ids invalidate every existing reference, the pick ledger is cleared and
// current_pick rewound to 1 in the same transaction. While the replacement
// runs it holds the draft state exclusively; no toggle or reset interleaves.
func (a *App) ReplacePlayers(ctx context.Context, rows []Row) (*Result, error) {
	batchID := uuid.New()

	a.guard.AcquireExclusive()
	defer a.guard.ReleaseExclusive()

	err := sqlutil.Run(ctx, a.db, func(tx *sql.Tx) error {
		players := a.players.WithTx(tx)
		drafts := a.drafts.WithTx(tx)

		if _, err := drafts.DeleteAllPicks(ctx); err != nil {
			return err
		}
		if err := players.DeleteAllPlayers(ctx); err != nil {
			return err
		}
		if err := drafts.SetCurrentPick(ctx, 1); err != nil {
			return err
		}

		reqs := make([]player.CreatePlayerRequest, len(rows))
		for i, row := range rows {
			reqs[i] = player.CreatePlayerRequest{
				Name:            row.Name,
				Position:        row.Position,
				Team:            row.Team,
				ProjectedPoints: row.ProjectedPoints,
				ByeWeek:         row.ByeWeek,
			}
		}
		_, err := players.InsertPlayers(ctx, reqs, a.clock.Now())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace players: %w", err)
	}

	log.Info().
		Str("batch_id", batchID.String()).
		Int("inserted", len(rows)).
		Msg("player pool replaced")

	return &Result{
		BatchID:  batchID,
		Inserted: len(rows),
		Summary:  fmt.Sprintf("replaced player pool with %d players", len(rows)),
	}, nil
}
