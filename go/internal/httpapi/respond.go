package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/popacta/draftboard/go/internal/apperrors"
	"github.com/popacta/draftboard/go/internal/player"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Row   int    `json:"row,omitempty"`
}

// respondError maps core error kinds onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	var vErr *apperrors.ValidationError
	var iErr *apperrors.ImportError

	switch {
	case errors.As(err, &vErr):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: vErr.Error(), Field: vErr.Field})
	case errors.As(err, &iErr):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: iErr.Error(), Row: iErr.Row})
	case errors.Is(err, player.ErrPlayerNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, apperrors.ErrImportInProgress):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, apperrors.ErrStateInconsistent):
		// Data-integrity incident: a prior transaction failed to be atomic.
		log.Error().Err(err).Msg("draft state inconsistent")
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	default:
		log.Error().Err(err).Msg("request failed")
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
