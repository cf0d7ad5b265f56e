package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// New creates a new Processor.
func New(tournament Tournament, notifier Notifier) *Processor {
	return &Processor{
		tournament: tournament,
		notifier:   notifier,
	}
}

// ProcessMatchReported announces a reported match followed by the updated
// standings. A failed result message does not stop the standings; a failed
// standings message is returned wrapped in ErrAnnounceFailed.
func (p *Processor) ProcessMatchReported(ctx context.Context, event pubsub.MatchReported, dryRun bool) error {
	log.Info("Processing match reported event", "eventID", event.EventID, "matchID", event.MatchID)

	if err := p.announceResult(ctx, event, dryRun); err != nil {
		return err
	}

	rows, err := p.tournament.Standings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get standings: %w", err)
	}
	if err := p.notifier.SendStandings(rows, dryRun); err != nil {
		return fmt.Errorf("%w: standings: %w", ErrAnnounceFailed, err)
	}
	return nil
}

func (p *Processor) announceResult(ctx context.Context, event pubsub.MatchReported, dryRun bool) error {
	player1, err1 := p.tournament.Player(ctx, event.Player1ID)
	player2, err2 := p.tournament.Player(ctx, event.Player2ID)
	if err := errors.Join(err1, err2); err != nil {
		if errors.Is(err, tournament.ErrStoreUnavailable) {
			return fmt.Errorf("failed to look up players: %w", err)
		}
		// Players were reset after the event was published.
		log.Warn("Skipping result for unknown players", "matchID", event.MatchID, "error", err)
		return nil
	}

	match := tournament.Match{
		ID:        event.MatchID,
		Player1ID: event.Player1ID,
		Player2ID: event.Player2ID,
		Winner:    event.Winner,
		Draw:      event.Draw,
	}
	if err := p.notifier.SendMatchResult(match, player1.Name, player2.Name, dryRun); err != nil {
		log.Error("Failed to announce match result", "error", err, "matchID", event.MatchID)
	}
	return nil
}
