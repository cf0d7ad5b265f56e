package tournament

import (
	"cmp"
	"context"
	"slices"
)

// StandingsComputer derives the ranked standings from match history.
type StandingsComputer struct {
	store Store
}

func NewStandingsComputer(store Store) *StandingsComputer {
	return &StandingsComputer{store: store}
}

// Standings returns every registered player ranked by wins, highest first.
// Players with equal wins keep registration order.
func (c *StandingsComputer) Standings(ctx context.Context) ([]StandingRow, error) {
	rows, err := c.store.AggregateStandings(ctx)
	if err != nil {
		return nil, err
	}
	rankByWins(rows)
	return rows, nil
}

func rankByWins(rows []StandingRow) {
	slices.SortStableFunc(rows, func(a, b StandingRow) int {
		return cmp.Compare(b.Wins, a.Wins)
	})
}
