// Package ranking computes read-only projections over the player pool and
// the pick ledger: the recent-pick feed and the value-over-replacement drop
// used to flag positional scarcity. Nothing here mutates state.
package ranking

import (
	"context"

	"github.com/popacta/draftboard/go/internal/apperrors"
	"github.com/popacta/draftboard/go/internal/models"
)

// App is the ranking engine.
type App struct {
	repo *Repository
}

// NewApp creates a new ranking App.
func NewApp(repo *Repository) *App {
	return &App{repo: repo}
}

// RecentPicks returns up to limit picks in descending pick order.
func (a *App) RecentPicks(ctx context.Context, limit int) ([]PickSummary, error) {
	if limit <= 0 {
		return nil, apperrors.Validation("limit", "must be a positive integer")
	}
	return a.repo.RecentPicks(ctx, limit)
}

// VorpDrop maps player ids to the projected-points drop between that player
// and the player ranked k lower in the same position group, considering only
// currently available players. A player with no rank r+k entry below it in
// its group is absent from the result. The ranking is recomputed fresh on
// every call.
func (a *App) VorpDrop(ctx context.Context, k int) (map[int64]float64, error) {
	if k <= 0 {
		return nil, apperrors.Validation("k", "must be a positive integer")
	}

	ranked, err := a.repo.availablePlayersRanked(ctx)
	if err != nil {
		return nil, err
	}

	// Group preserving the global ordering (points desc, id asc).
	groups := make(map[models.Position][]rankedPlayer)
	for _, p := range ranked {
		groups[p.Position] = append(groups[p.Position], p)
	}

	drops := make(map[int64]float64)
	for _, pool := range groups {
		for i := 0; i+k < len(pool); i++ {
			drops[pool[i].ID] = pool[i].ProjectedPoints - pool[i+k].ProjectedPoints
		}
	}
	return drops, nil
}
