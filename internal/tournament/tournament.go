package tournament

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
)

// Tournament wires the standings, pairing and recording components over a
// single Store.
type Tournament struct {
	store     Store
	metrics   metrics.Metrics
	standings *StandingsComputer
	pairings  *PairingGenerator
	recorder  *MatchRecorder
}

var _ Service = (*Tournament)(nil)

// New creates a Tournament.
func New(store Store, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Tournament {
	standings := NewStandingsComputer(store)
	return &Tournament{
		store:     store,
		metrics:   metrics,
		standings: standings,
		pairings:  NewPairingGenerator(standings, metrics),
		recorder:  NewMatchRecorder(store, metrics, pubsub),
	}
}

func (t *Tournament) RegisterPlayer(ctx context.Context, name string) (Player, error) {
	player, err := t.store.InsertPlayer(ctx, name)
	if err != nil {
		return Player{}, err
	}
	t.metrics.IncPlayersRegistered()
	return player, nil
}

func (t *Tournament) CountPlayers(ctx context.Context) (int, error) {
	return t.store.Count(ctx, KindPlayers)
}

// DeleteMatches removes every match. Player counters are left untouched.
func (t *Tournament) DeleteMatches(ctx context.Context) error {
	log.Info("Deleting all matches")
	return t.store.DeleteAll(ctx, KindMatches)
}

// DeletePlayers removes every player and, through the foreign keys, their matches.
func (t *Tournament) DeletePlayers(ctx context.Context) error {
	log.Info("Deleting all players")
	return t.store.DeleteAll(ctx, KindPlayers)
}

func (t *Tournament) Standings(ctx context.Context) ([]StandingRow, error) {
	return t.standings.Standings(ctx)
}

func (t *Tournament) ReportMatch(ctx context.Context, winnerID, loserID int64, outcome Outcome) (Match, error) {
	return t.recorder.Report(ctx, winnerID, loserID, outcome)
}

func (t *Tournament) SwissPairings(ctx context.Context) ([]Pairing, error) {
	return t.pairings.Pairings(ctx)
}

func (t *Tournament) Player(ctx context.Context, id int64) (Player, error) {
	return t.store.GetPlayer(ctx, id)
}

func (t *Tournament) Players(ctx context.Context) ([]Player, error) {
	return t.store.ListPlayers(ctx)
}

func (t *Tournament) Matches(ctx context.Context) ([]Match, error) {
	return t.store.ListMatches(ctx)
}
