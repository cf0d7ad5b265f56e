package tournament

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
)

// PairingGenerator produces next-round pairings from the current standings.
type PairingGenerator struct {
	standings *StandingsComputer
	metrics   metrics.Metrics
}

func NewPairingGenerator(standings *StandingsComputer, metrics metrics.Metrics) *PairingGenerator {
	return &PairingGenerator{
		standings: standings,
		metrics:   metrics,
	}
}

// Pairings pairs every player with a neighbour of equal or nearest win count.
func (g *PairingGenerator) Pairings(ctx context.Context) ([]Pairing, error) {
	rows, err := g.standings.Standings(ctx)
	if err != nil {
		return nil, err
	}

	pairs, err := PairAdjacent(rows)
	if err != nil {
		if errors.Is(err, ErrOddPlayerCount) {
			g.metrics.IncPairingFailures()
		}
		return nil, err
	}

	g.metrics.IncPairingsGenerated()
	log.Info("Generated swiss pairings", "players", len(rows), "pairs", len(pairs))
	return pairs, nil
}

// PairAdjacent pairs rows (0,1), (2,3), ... of an already ranked slice.
func PairAdjacent(rows []StandingRow) ([]Pairing, error) {
	if len(rows)%2 != 0 {
		return nil, fmt.Errorf("%w: %d players registered", ErrOddPlayerCount, len(rows))
	}

	pairs := make([]Pairing, 0, len(rows)/2)
	for i := 0; i < len(rows); i += 2 {
		first, second := rows[i], rows[i+1]
		pairs = append(pairs, Pairing{
			ID1:   first.ID,
			Name1: first.Name,
			ID2:   second.ID,
			Name2: second.Name,
		})
	}
	return pairs, nil
}
