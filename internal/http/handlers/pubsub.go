package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/processor"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
)

// pushMessage is the envelope Pub/Sub push subscriptions POST to us.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data      string `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
}

// MatchReportedHandler consumes match-reported events and hands them to the
// processor for announcement.
func MatchReportedHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match reported message", "body", string(bodyBytes))

		var pubsubMsg pushMessage
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var event pubsub.MatchReported
		if err := pubsubClient.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to decode match reported event", "error", err, "messageID", pubsubMsg.Message.MessageID)
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		if err := proc.ProcessMatchReported(r.Context(), event, IsDryRunFromContext(r)); err != nil {
			if errors.Is(err, processor.ErrAnnounceFailed) {
				log.Error("Failed to announce match", "error", err, "matchID", event.MatchID)
				http.Error(w, "Failed to announce match", http.StatusBadGateway)
				return
			}
			writeError(w, err, "Failed to process match reported event")
			return
		}
		w.Write([]byte("OK"))
	}
}
