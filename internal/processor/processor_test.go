package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTournament serves players and standings from memory.
type fakeTournament struct {
	players      map[int64]tournament.Player
	standings    []tournament.StandingRow
	standingsErr error
	playerErr    error
}

func (f *fakeTournament) Player(ctx context.Context, id int64) (tournament.Player, error) {
	if f.playerErr != nil {
		return tournament.Player{}, f.playerErr
	}
	p, ok := f.players[id]
	if !ok {
		return tournament.Player{}, tournament.ErrPlayerNotFound
	}
	return p, nil
}

func (f *fakeTournament) Standings(ctx context.Context) ([]tournament.StandingRow, error) {
	return f.standings, f.standingsErr
}

func newFake() *fakeTournament {
	return &fakeTournament{
		players: map[int64]tournament.Player{
			1: {ID: 1, Name: "Player 1"},
			2: {ID: 2, Name: "Player 2"},
		},
		standings: []tournament.StandingRow{
			{ID: 1, Name: "Player 1", Wins: 1, Matches: 1},
			{ID: 2, Name: "Player 2", Wins: 0, Matches: 1},
		},
	}
}

func TestProcessor_ProcessMatchReported(t *testing.T) {
	event := pubsub.MatchReported{EventID: "e1", MatchID: 7, Player1ID: 1, Player2ID: 2, Winner: 1}

	t.Run("announces result then standings", func(t *testing.T) {
		notif := notifier.NewMock()
		p := New(newFake(), notif)

		require.NoError(t, p.ProcessMatchReported(context.Background(), event, true))

		require.Len(t, notif.SendMatchResultCalls, 1)
		call := notif.SendMatchResultCalls[0]
		assert.Equal(t, int64(7), call.Match.ID)
		assert.Equal(t, "Player 1", call.Player1)
		assert.Equal(t, "Player 2", call.Player2)
		assert.True(t, call.DryRun)

		require.Len(t, notif.SendStandingsCalls, 1)
		assert.Len(t, notif.SendStandingsCalls[0].Rows, 2)
	})

	t.Run("unknown players skip the result only", func(t *testing.T) {
		notif := notifier.NewMock()
		fake := newFake()
		delete(fake.players, 2)
		p := New(fake, notif)

		require.NoError(t, p.ProcessMatchReported(context.Background(), event, false))
		assert.Empty(t, notif.SendMatchResultCalls)
		assert.Len(t, notif.SendStandingsCalls, 1)
	})

	t.Run("result failure does not block standings", func(t *testing.T) {
		notif := notifier.NewMock()
		notif.SendMatchResultFunc = func(tournament.Match, string, string, bool) error {
			return errors.New("slack is down")
		}
		p := New(newFake(), notif)

		require.NoError(t, p.ProcessMatchReported(context.Background(), event, false))
		assert.Len(t, notif.SendStandingsCalls, 1)
	})

	t.Run("standings failure is an announce error", func(t *testing.T) {
		notif := notifier.NewMock()
		notif.SendStandingsFunc = func([]tournament.StandingRow, bool) error {
			return errors.New("slack is down")
		}
		p := New(newFake(), notif)

		err := p.ProcessMatchReported(context.Background(), event, false)
		assert.ErrorIs(t, err, ErrAnnounceFailed)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		notif := notifier.NewMock()
		fake := newFake()
		fake.playerErr = tournament.ErrStoreUnavailable
		p := New(fake, notif)

		err := p.ProcessMatchReported(context.Background(), event, false)
		assert.ErrorIs(t, err, tournament.ErrStoreUnavailable)
		assert.Empty(t, notif.SendStandingsCalls)
	})
}
