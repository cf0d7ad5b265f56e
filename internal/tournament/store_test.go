package tournament_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RunInTxRollsBack(t *testing.T) {
	env := setupTournament(t)
	ctx := context.Background()
	p := register(t, env.svc, "A", "B")

	boom := errors.New("boom")
	err := env.store.RunInTx(ctx, func(tx tournament.Tx) error {
		if _, err := tx.InsertMatch(ctx, tournament.Match{Player1ID: p[0].ID, Player2ID: p[1].ID, Winner: p[0].ID}); err != nil {
			return err
		}
		if err := tx.UpdateCounters(ctx, p[0].ID, 1, 0); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := env.store.Count(ctx, tournament.KindMatches)
	require.NoError(t, err)
	assert.Zero(t, count)

	got, err := env.store.GetPlayer(ctx, p[0].ID)
	require.NoError(t, err)
	assert.Zero(t, got.MatchesPlayed)
}

func TestStore_UpdateCountersUnknownPlayer(t *testing.T) {
	env := setupTournament(t)
	ctx := context.Background()

	err := env.store.RunInTx(ctx, func(tx tournament.Tx) error {
		exists, err := tx.PlayerExists(ctx, 7)
		require.NoError(t, err)
		assert.False(t, exists)
		return tx.UpdateCounters(ctx, 7, 1, 0)
	})
	assert.ErrorIs(t, err, tournament.ErrInvalidPlayerReference)
}

func TestStore_RejectsUnknownKind(t *testing.T) {
	env := setupTournament(t)
	ctx := context.Background()

	_, err := env.store.Count(ctx, tournament.EntityKind("sqlite_master"))
	assert.Error(t, err)
	assert.Error(t, env.store.DeleteAll(ctx, tournament.EntityKind("sqlite_master")))
}

func TestStore_ListMatchesMarksDraws(t *testing.T) {
	env := setupTournament(t)
	ctx := context.Background()
	p := register(t, env.svc, "A", "B")

	_, err := env.svc.ReportMatch(ctx, p[0].ID, p[1].ID, tournament.OutcomeWinLoss)
	require.NoError(t, err)
	_, err = env.svc.ReportMatch(ctx, p[0].ID, p[1].ID, tournament.OutcomeDraw)
	require.NoError(t, err)

	matches, err := env.store.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.False(t, matches[0].Draw)
	assert.True(t, matches[1].Draw)
	assert.Equal(t, tournament.DrawWinner, matches[1].Winner)
}
