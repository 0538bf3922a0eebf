package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes builds the router over the application layers.
func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Root)
	r.Get("/health", Health)
	r.Get("/api/welcome", h.GetWelcome)

	r.Get("/api/players", h.ListPlayers)
	r.Patch("/api/players/{playerID}", h.UpdatePlayer)
	r.Post("/api/players/{playerID}/toggle-drafted", h.ToggleDrafted)
	r.Post("/api/reset-drafted-status", h.ResetDrafted)

	r.Get("/api/draft-settings", h.GetSettings)
	r.Patch("/api/draft-settings", h.PatchSettings)

	r.Get("/api/recent-picks", h.RecentPicks)
	r.Get("/api/vorp-drop", h.VorpDrop)

	r.Post("/api/reset-players", h.ResetPlayers)

	return r
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
