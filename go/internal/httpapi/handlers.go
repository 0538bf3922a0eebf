// Package httpapi exposes the draft core over HTTP/JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/popacta/draftboard/go/internal/apperrors"
	"github.com/popacta/draftboard/go/internal/draft"
	"github.com/popacta/draftboard/go/internal/importer"
	"github.com/popacta/draftboard/go/internal/models"
	"github.com/popacta/draftboard/go/internal/player"
	"github.com/popacta/draftboard/go/internal/ranking"
	"github.com/popacta/draftboard/go/internal/welcome"
)

// Defaults for the read endpoints' query parameters.
const (
	defaultRecentPicksLimit = 10
	defaultVorpK            = 6
)

// PlayerApp defines what the handlers need from the player pool layer.
type PlayerApp interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int64, req player.UpdatePlayerRequest) (*models.Player, error)
}

// DraftApp defines what the handlers need from the draft state machine.
type DraftApp interface {
	ToggleDrafted(ctx context.Context, playerID int64) (*models.Player, error)
	ResetAllDrafted(ctx context.Context) (int, error)
	GetSettings(ctx context.Context) (*models.DraftSettings, error)
	UpdateSettings(ctx context.Context, patch draft.SettingsPatch) (*models.DraftSettings, error)
}

// RankingApp defines what the handlers need from the ranking engine.
type RankingApp interface {
	RecentPicks(ctx context.Context, limit int) ([]ranking.PickSummary, error)
	VorpDrop(ctx context.Context, k int) (map[int64]float64, error)
}

// ImporterApp defines what the handlers need from the bulk importer.
type ImporterApp interface {
	ReplacePlayers(ctx context.Context, rows []importer.Row) (*importer.Result, error)
}

// WelcomeRepo defines what the handlers need from the welcome store.
type WelcomeRepo interface {
	RandomMessage(ctx context.Context) (string, error)
}

// Handler holds the application layers behind the HTTP surface.
type Handler struct {
	players  PlayerApp
	draft    DraftApp
	ranking  RankingApp
	importer ImporterApp
	welcome  WelcomeRepo
}

// NewHandler creates a new Handler.
func NewHandler(players PlayerApp, draftApp DraftApp, rankingApp RankingApp, importerApp ImporterApp, welcomeRepo WelcomeRepo) *Handler {
	return &Handler{
		players:  players,
		draft:    draftApp,
		ranking:  rankingApp,
		importer: importerApp,
		welcome:  welcomeRepo,
	}
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "draftboard API is running"})
}

// GetWelcome handles GET /api/welcome.
func (h *Handler) GetWelcome(w http.ResponseWriter, r *http.Request) {
	msg, err := h.welcome.RandomMessage(r.Context())
	if err != nil {
		if errors.Is(err, welcome.ErrNoMessages) {
			respondJSON(w, http.StatusOK, map[string]string{"message": "Message table is empty."})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// ListPlayers handles GET /api/players.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.ListPlayers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if players == nil {
		players = []models.Player{}
	}
	respondJSON(w, http.StatusOK, players)
}

type updatePlayerPayload struct {
	Name            *string  `json:"name"`
	Position        *string  `json:"position"`
	Team            *string  `json:"team"`
	ProjectedPoints *float64 `json:"projected_points"`
	ByeWeek         *int     `json:"bye_week"`
	TargetStatus    *string  `json:"target_status"`
	DraftedStatus   *bool    `json:"drafted_status"`
}

// UpdatePlayer handles PATCH /api/players/{playerID}. Plain field edits go to
// the player app; a drafted_status change routes through the state machine.
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var payload updatePlayerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, apperrors.Validation("body", "malformed JSON"))
		return
	}

	req := player.UpdatePlayerRequest{
		Name:            payload.Name,
		Team:            payload.Team,
		ProjectedPoints: payload.ProjectedPoints,
		ByeWeek:         payload.ByeWeek,
	}
	if payload.Position != nil {
		pos := models.Position(*payload.Position)
		req.Position = &pos
	}
	if payload.TargetStatus != nil {
		ts := models.TargetStatus(*payload.TargetStatus)
		req.TargetStatus = &ts
	}

	updated, err := h.players.UpdatePlayer(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}

	if payload.DraftedStatus != nil && *payload.DraftedStatus != updated.DraftedStatus {
		updated, err = h.draft.ToggleDrafted(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
	}

	respondJSON(w, http.StatusOK, updated)
}

// ToggleDrafted handles POST /api/players/{playerID}/toggle-drafted.
func (h *Handler) ToggleDrafted(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.draft.ToggleDrafted(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"player": updated})
}

// ResetDrafted handles POST /api/reset-drafted-status.
func (h *Handler) ResetDrafted(w http.ResponseWriter, r *http.Request) {
	count, err := h.draft.ResetAllDrafted(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "player draft status reset successfully",
		"reset":   count,
	})
}

// GetSettings handles GET /api/draft-settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.draft.GetSettings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// PatchSettings handles PATCH /api/draft-settings.
func (h *Handler) PatchSettings(w http.ResponseWriter, r *http.Request) {
	var patch draft.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, apperrors.Validation("body", "malformed JSON"))
		return
	}

	settings, err := h.draft.UpdateSettings(r.Context(), patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// RecentPicks handles GET /api/recent-picks?limit=N.
func (h *Handler) RecentPicks(w http.ResponseWriter, r *http.Request) {
	limit, err := intQueryParam(r, "limit", defaultRecentPicksLimit)
	if err != nil {
		respondError(w, err)
		return
	}

	picks, err := h.ranking.RecentPicks(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if picks == nil {
		picks = []ranking.PickSummary{}
	}
	respondJSON(w, http.StatusOK, picks)
}

// VorpDrop handles GET /api/vorp-drop?k=N.
func (h *Handler) VorpDrop(w http.ResponseWriter, r *http.Request) {
	k, err := intQueryParam(r, "k", defaultVorpK)
	if err != nil {
		respondError(w, err)
		return
	}

	drops, err := h.ranking.VorpDrop(r.Context(), k)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, drops)
}

// ResetPlayers handles POST /api/reset-players: a multipart CSV upload that
// supersedes the whole player pool.
func (h *Handler) ResetPlayers(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, apperrors.Validation("file", "missing CSV upload"))
		return
	}
	defer file.Close()

	rows, err := importer.ParsePlayersCSV(file)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.importer.ReplacePlayers(r.Context(), rows)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message":  "players reset successfully",
		"inserted": result.Inserted,
		"batch_id": result.BatchID,
	})
}

func playerID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "playerID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("player_id", "must be a positive integer")
	}
	return id, nil
}

func intQueryParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validation(name, "must be an integer")
	}
	return v, nil
}
