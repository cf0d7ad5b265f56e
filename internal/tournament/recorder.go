package tournament

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
)

// MatchRecorder persists match results and keeps player counters in step.
type MatchRecorder struct {
	store   Store
	metrics metrics.Metrics
	pubsub  pubsub.PubSubClient
}

func NewMatchRecorder(store Store, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *MatchRecorder {
	return &MatchRecorder{
		store:   store,
		metrics: metrics,
		pubsub:  pubsub,
	}
}

// Report records a match between winnerID and loserID. For a draw the order
// of the two ids carries no meaning. The match insert and both counter
// updates are committed together or not at all.
func (r *MatchRecorder) Report(ctx context.Context, winnerID, loserID int64, outcome Outcome) (Match, error) {
	if !outcome.Valid() {
		return Match{}, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
	if winnerID == loserID {
		return Match{}, fmt.Errorf("%w: player %d cannot play against themselves", ErrInvalidPlayerReference, winnerID)
	}

	match := Match{
		Player1ID: winnerID,
		Player2ID: loserID,
		Winner:    winnerID,
	}
	deltaDraws := 0
	if outcome == OutcomeDraw {
		match.Winner = DrawWinner
		match.Draw = true
		deltaDraws = 1
	}

	err := r.store.RunInTx(ctx, func(tx Tx) error {
		for _, id := range []int64{winnerID, loserID} {
			exists, err := tx.PlayerExists(ctx, id)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("%w: player %d does not exist", ErrInvalidPlayerReference, id)
			}
		}

		id, err := tx.InsertMatch(ctx, match)
		if err != nil {
			return err
		}
		match.ID = id

		for _, id := range []int64{winnerID, loserID} {
			if err := tx.UpdateCounters(ctx, id, 1, deltaDraws); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Match{}, err
	}

	log.Info("Recorded match", "matchID", match.ID, "player1", winnerID, "player2", loserID, "outcome", outcome)
	r.metrics.IncMatchesReported(string(outcome))
	r.publish(match)
	return match, nil
}

func (r *MatchRecorder) publish(match Match) {
	event := pubsub.MatchReported{
		EventID:    uuid.NewString(),
		MatchID:    match.ID,
		Player1ID:  match.Player1ID,
		Player2ID:  match.Player2ID,
		Winner:     match.Winner,
		Draw:       match.Draw,
		ReportedAt: time.Now().Unix(),
	}
	if err := r.pubsub.SendMessage(pubsub.EventMatchReported, event); err != nil {
		log.Error("Failed to publish match reported event", "error", err, "matchID", match.ID)
	}
}
