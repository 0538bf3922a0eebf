package draft

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/popacta/draftboard/go/internal/apperrors"
	"github.com/popacta/draftboard/go/internal/models"
	"github.com/popacta/draftboard/go/internal/player"
	"github.com/popacta/draftboard/go/internal/sqlutil"
)

// App is the draft state machine. It is the sole writer of drafted_status,
// of pick ledger rows and of the current_pick pointer; each operation runs
// as one transaction behind the shared Guard.
type App struct {
	db      *sql.DB
	players *player.Repository
	repo    *Repository
	guard   *Guard
	clock   clockwork.Clock
}

// NewApp creates a new draft App.
func NewApp(db *sql.DB, players *player.Repository, repo *Repository, guard *Guard, clock clockwork.Clock) *App {
	return &App{
		db:      db,
		players: players,
		repo:    repo,
		guard:   guard,
		clock:   clock,
	}
}

// SettingsPatch is a partial update of the draft settings. Nil fields are
// left untouched.
type SettingsPatch struct {
	TotalTeams  *int  `json:"total_teams"`
	Rounds      *int  `json:"rounds"`
	CurrentPick *int  `json:"current_pick"`
	IsActive    *bool `json:"is_active"`
	QBSlots     *int  `json:"qb_slots"`
	RBSlots     *int  `json:"rb_slots"`
	WRSlots     *int  `json:"wr_slots"`
	FlexSlots   *int  `json:"flex_slots"`
}

// roundFor derives the round of an overall pick number.
func roundFor(pickNumber, totalTeams int) int {
	return (pickNumber + totalTeams - 1) / totalTeams
}

// ToggleDrafted flips a player's drafted status.
//
// Available -> Drafted allocates pick_number = current_pick, appends a ledger
// entry and advances current_pick. Drafted -> Available removes the ledger
// entry and decrements current_pick only when the undone pick was the most
// recently assigned one; undoing an earlier pick freezes the gap rather than
// renumbering later picks.
func (a *App) ToggleDrafted(ctx context.Context, playerID int64) (*models.Player, error) {
	if err := a.guard.Acquire(); err != nil {
		return nil, err
	}
	defer a.guard.Release()

	var updated *models.Player
	err := sqlutil.Run(ctx, a.db, func(tx *sql.Tx) error {
		players := a.players.WithTx(tx)
		picks := a.repo.WithTx(tx)

		p, err := players.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}

		settings, err := picks.GetSettings(ctx)
		if err != nil {
			return err
		}

		pick, err := picks.GetPickByPlayer(ctx, playerID)
		if err != nil {
			return err
		}

		if !p.DraftedStatus {
			if pick != nil {
				return fmt.Errorf("player %d undrafted but has ledger entry %d: %w",
					playerID, pick.ID, apperrors.ErrStateInconsistent)
			}
			pickNumber := settings.CurrentPick
			roundNumber := roundFor(pickNumber, settings.TotalTeams)
			if _, err := picks.CreatePick(ctx, playerID, pickNumber, roundNumber, a.clock.Now()); err != nil {
				return err
			}
			if err := players.SetDrafted(ctx, playerID, true); err != nil {
				return err
			}
			if err := picks.SetCurrentPick(ctx, pickNumber+1); err != nil {
				return err
			}
			log.Info().
				Int64("player_id", playerID).
				Int("pick_number", pickNumber).
				Int("round_number", roundNumber).
				Msg("pick recorded")
		} else {
			if pick == nil {
				return fmt.Errorf("player %d drafted but has no ledger entry: %w",
					playerID, apperrors.ErrStateInconsistent)
			}
			if err := picks.DeletePick(ctx, pick.ID); err != nil {
				return err
			}
			if err := players.SetDrafted(ctx, playerID, false); err != nil {
				return err
			}
			// Only the most recent pick frees its slot for reuse.
			if pick.PickNumber == settings.CurrentPick-1 {
				if err := picks.SetCurrentPick(ctx, settings.CurrentPick-1); err != nil {
					return err
				}
			}
			log.Info().
				Int64("player_id", playerID).
				Int("pick_number", pick.PickNumber).
				Msg("pick undone")
		}

		updated, err = players.GetPlayer(ctx, playerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ResetAllDrafted clears every drafted flag and the whole ledger and rewinds
// current_pick to 1. It returns the number of players whose status changed.
func (a *App) ResetAllDrafted(ctx context.Context) (int, error) {
	if err := a.guard.Acquire(); err != nil {
		return 0, err
	}
	defer a.guard.Release()

	var changed int
	err := sqlutil.Run(ctx, a.db, func(tx *sql.Tx) error {
		players := a.players.WithTx(tx)
		picks := a.repo.WithTx(tx)

		n, err := players.ClearAllDrafted(ctx)
		if err != nil {
			return err
		}
		changed = n

		if _, err := picks.DeleteAllPicks(ctx); err != nil {
			return err
		}
		return picks.SetCurrentPick(ctx, 1)
	})
	if err != nil {
		return 0, err
	}

	log.Info().Int("players_reset", changed).Msg("draft reset")
	return changed, nil
}

// GetSettings returns the current draft settings.
func (a *App) GetSettings(ctx context.Context) (*models.DraftSettings, error) {
	return a.repo.GetSettings(ctx)
}

// UpdateSettings validates and applies a partial settings update.
func (a *App) UpdateSettings(ctx context.Context, patch SettingsPatch) (*models.DraftSettings, error) {
	if err := validateSettingsPatch(patch); err != nil {
		return nil, err
	}

	if err := a.guard.Acquire(); err != nil {
		return nil, err
	}
	defer a.guard.Release()

	var updated *models.DraftSettings
	err := sqlutil.Run(ctx, a.db, func(tx *sql.Tx) error {
		picks := a.repo.WithTx(tx)

		s, err := picks.GetSettings(ctx)
		if err != nil {
			return err
		}
		applySettingsPatch(s, patch)

		if patch.CurrentPick != nil {
			ledger, err := picks.CountPicks(ctx)
			if err != nil {
				return err
			}
			if s.CurrentPick < ledger+1 {
				return apperrors.Validation("current_pick",
					fmt.Sprintf("must be at least %d with %d picks recorded", ledger+1, ledger))
			}
		}

		if err := picks.UpdateSettings(ctx, s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applySettingsPatch(s *models.DraftSettings, patch SettingsPatch) {
	if patch.TotalTeams != nil {
		s.TotalTeams = *patch.TotalTeams
	}
	if patch.Rounds != nil {
		s.Rounds = *patch.Rounds
	}
	if patch.CurrentPick != nil {
		s.CurrentPick = *patch.CurrentPick
	}
	if patch.IsActive != nil {
		s.IsActive = *patch.IsActive
	}
	if patch.QBSlots != nil {
		s.QBSlots = *patch.QBSlots
	}
	if patch.RBSlots != nil {
		s.RBSlots = *patch.RBSlots
	}
	if patch.WRSlots != nil {
		s.WRSlots = *patch.WRSlots
	}
	if patch.FlexSlots != nil {
		s.FlexSlots = *patch.FlexSlots
	}
}

func validateSettingsPatch(patch SettingsPatch) error {
	if err := checkRange("total_teams", patch.TotalTeams, models.MinTotalTeams, models.MaxTotalTeams); err != nil {
		return err
	}
	if err := checkRange("rounds", patch.Rounds, models.MinRounds, models.MaxRounds); err != nil {
		return err
	}
	if patch.CurrentPick != nil && *patch.CurrentPick < 1 {
		return apperrors.Validation("current_pick", "must be a positive integer")
	}
	if err := checkRange("qb_slots", patch.QBSlots, 0, models.MaxQBSlots); err != nil {
		return err
	}
	if err := checkRange("rb_slots", patch.RBSlots, 0, models.MaxRBSlots); err != nil {
		return err
	}
	if err := checkRange("wr_slots", patch.WRSlots, 0, models.MaxWRSlots); err != nil {
		return err
	}
	return checkRange("flex_slots", patch.FlexSlots, 0, models.MaxFlexSlots)
}

func checkRange(field string, v *int, lo, hi int) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return apperrors.Validation(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	return nil
}
