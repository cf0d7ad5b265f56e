package tournament

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standingRows(wins ...int) []StandingRow {
	out := make([]StandingRow, len(wins))
	for i, w := range wins {
		out[i] = StandingRow{ID: int64(i + 1), Name: string(rune('A' + i)), Wins: w, Matches: 3}
	}
	return out
}

func TestPairAdjacent(t *testing.T) {
	t.Run("pairs consecutive rows", func(t *testing.T) {
		pairs, err := PairAdjacent(standingRows(3, 2, 2, 1, 1, 0))
		require.NoError(t, err)
		assert.Equal(t, []Pairing{
			{ID1: 1, Name1: "A", ID2: 2, Name2: "B"},
			{ID1: 3, Name1: "C", ID2: 4, Name2: "D"},
			{ID1: 5, Name1: "E", ID2: 6, Name2: "F"},
		}, pairs)
	})

	t.Run("odd count is rejected", func(t *testing.T) {
		pairs, err := PairAdjacent(standingRows(1, 1, 0))
		assert.ErrorIs(t, err, ErrOddPlayerCount)
		assert.Nil(t, pairs)
	})

	t.Run("empty field yields no pairs", func(t *testing.T) {
		pairs, err := PairAdjacent(nil)
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})
}

func TestRankByWins_IsStable(t *testing.T) {
	in := []StandingRow{
		{ID: 1, Wins: 0},
		{ID: 2, Wins: 2},
		{ID: 3, Wins: 1},
		{ID: 4, Wins: 2},
		{ID: 5, Wins: 0},
	}
	rankByWins(in)

	ids := make([]int64, len(in))
	for i, r := range in {
		ids[i] = r.ID
	}
	assert.Equal(t, []int64{2, 4, 3, 1, 5}, ids)
}

func TestStandingsComputer_RanksUnorderedStore(t *testing.T) {
	mock := NewMock()
	mock.AggregateStandingsFunc = func(ctx context.Context) ([]StandingRow, error) {
		return standingRows(0, 1, 3, 1), nil
	}

	got, err := NewStandingsComputer(mock).Standings(context.Background())
	require.NoError(t, err)

	wins := make([]int, len(got))
	for i, r := range got {
		wins[i] = r.Wins
	}
	assert.Equal(t, []int{3, 1, 1, 0}, wins)
	assert.Equal(t, int64(2), got[1].ID, "ties keep the store's registration order")
}

func TestPairingGenerator_Metrics(t *testing.T) {
	mock := NewMock()
	m := metrics.NewMock()
	gen := NewPairingGenerator(NewStandingsComputer(mock), m)

	mock.AggregateStandingsFunc = func(ctx context.Context) ([]StandingRow, error) {
		return standingRows(1, 0), nil
	}
	_, err := gen.Pairings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, m.PairingsGenerated())

	mock.AggregateStandingsFunc = func(ctx context.Context) ([]StandingRow, error) {
		return standingRows(1, 0, 0), nil
	}
	_, err = gen.Pairings(context.Background())
	assert.ErrorIs(t, err, ErrOddPlayerCount)
	assert.Equal(t, 1, m.PairingFailures())
}

func TestPairingGenerator_StoreUnavailable(t *testing.T) {
	mock := NewMock()
	mock.AggregateStandingsFunc = func(ctx context.Context) ([]StandingRow, error) {
		return nil, unavailable("aggregate standings", errors.New("connection refused"))
	}
	m := metrics.NewMock()

	pairs, err := NewPairingGenerator(NewStandingsComputer(mock), m).Pairings(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, pairs)
	assert.Equal(t, 0, m.PairingFailures())
}
