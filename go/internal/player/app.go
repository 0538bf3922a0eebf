package player

import (
	"context"
	"fmt"

	"github.com/popacta/draftboard/go/internal/apperrors"
	"github.com/popacta/draftboard/go/internal/models"
)

// App handles player pool business logic outside of draft transitions.
type App struct {
	repo *Repository
}

// NewApp creates a new player App.
func NewApp(repo *Repository) *App {
	return &App{repo: repo}
}

// ListPlayers returns the full player pool.
func (a *App) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := a.repo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// GetPlayer retrieves a player by id.
func (a *App) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	return a.repo.GetPlayer(ctx, id)
}

// UpdatePlayer validates and applies a partial update of editable fields.
func (a *App) UpdatePlayer(ctx context.Context, id int64, req UpdatePlayerRequest) (*models.Player, error) {
	if err := validateUpdatePlayerRequest(req); err != nil {
		return nil, err
	}
	return a.repo.UpdatePlayer(ctx, id, req)
}

func validateUpdatePlayerRequest(req UpdatePlayerRequest) error {
	if req.Name != nil && *req.Name == "" {
		return apperrors.Validation("name", "must not be empty")
	}
	if req.Position != nil && !models.ValidPosition(string(*req.Position)) {
		return apperrors.Validation("position", fmt.Sprintf("unknown position %q", *req.Position))
	}
	if req.TargetStatus != nil && !models.ValidTargetStatus(string(*req.TargetStatus)) {
		return apperrors.Validation("target_status", fmt.Sprintf("unknown target status %q", *req.TargetStatus))
	}
	if req.ByeWeek != nil && *req.ByeWeek <= 0 {
		return apperrors.Validation("bye_week", "must be a positive integer")
	}
	return nil
}
