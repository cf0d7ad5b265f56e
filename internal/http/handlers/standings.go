package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

func StandingsHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Standings(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get standings")
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

func PairingsHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairs, err := svc.SwissPairings(r.Context())
		if err != nil {
			writeError(w, err, "Failed to generate pairings")
			return
		}
		writeJSON(w, http.StatusOK, pairs)
	}
}

func AnnounceStandingsHandler(svc tournament.Service, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Standings(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get standings")
			return
		}
		if err := notifier.SendStandings(rows, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce standings", "error", err)
			http.Error(w, "Failed to announce standings", http.StatusBadGateway)
			return
		}
		fmt.Fprintf(w, "Announced standings for %d players", len(rows))
	}
}

func AnnouncePairingsHandler(svc tournament.Service, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairs, err := svc.SwissPairings(r.Context())
		if err != nil {
			writeError(w, err, "Failed to generate pairings")
			return
		}
		if err := notifier.SendPairings(pairs, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce pairings", "error", err)
			http.Error(w, "Failed to announce pairings", http.StatusBadGateway)
			return
		}
		fmt.Fprintf(w, "Announced %d pairings", len(pairs))
	}
}
