package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

type registerPlayerRequest struct {
	Name string `json:"name"`
}

func RegisterPlayerHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode register request", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		player, err := svc.RegisterPlayer(r.Context(), req.Name)
		if err != nil {
			writeError(w, err, "Failed to register player")
			return
		}
		writeJSON(w, http.StatusCreated, player)
	}
}

func ListPlayersHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.Players(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func CountPlayersHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.CountPlayers(r.Context())
		if err != nil {
			writeError(w, err, "Failed to count players")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": count})
	}
}

func GetPlayerHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid player id", http.StatusBadRequest)
			return
		}

		player, err := svc.Player(r.Context(), id)
		if err != nil {
			writeError(w, err, "Failed to get player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func DeletePlayersHandler(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to delete all players")
		if err := svc.DeletePlayers(r.Context()); err != nil {
			writeError(w, err, "Failed to delete players")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
