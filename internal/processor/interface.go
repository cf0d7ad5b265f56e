package processor

import (
	"context"

	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// Tournament defines the tournament reads required by the processor.
type Tournament interface {
	Player(ctx context.Context, id int64) (tournament.Player, error)
	Standings(ctx context.Context) ([]tournament.StandingRow, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
