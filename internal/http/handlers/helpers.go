package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// statusFor maps tournament errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tournament.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, tournament.ErrInvalidPlayerReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, tournament.ErrOddPlayerCount):
		return http.StatusConflict
	case errors.Is(err, tournament.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, tournament.ErrInvalidOutcome):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error, msg string) {
	status := statusFor(err)
	log.Error(msg, "error", err, "status", status)
	http.Error(w, msg+": "+err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
