package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// reportMatchRequest carries the two players of a finished match. For a
// draw the order of the ids does not matter.
type reportMatchRequest struct {
	WinnerID *int64 `json:"winner_id"`
	LoserID  *int64 `json:"loser_id"`
	Draw     bool   `json:"draw"`
}

func ReportMatchHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode match report", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.WinnerID == nil || req.LoserID == nil {
			http.Error(w, "winner_id and loser_id are required", http.StatusBadRequest)
			return
		}

		outcome := tournament.OutcomeWinLoss
		if req.Draw {
			outcome = tournament.OutcomeDraw
		}

		match, err := svc.ReportMatch(r.Context(), *req.WinnerID, *req.LoserID, outcome)
		if err != nil {
			writeError(w, err, "Failed to report match")
			return
		}
		writeJSON(w, http.StatusCreated, match)
	}
}

func ListMatchesHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := svc.Matches(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get matches")
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func DeleteMatchesHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to delete all matches")
		if err := svc.DeleteMatches(r.Context()); err != nil {
			writeError(w, err, "Failed to delete matches")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
