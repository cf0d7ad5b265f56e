package tournament

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
)

// store handles all database operations for the tournament.
type store struct {
	db *sqlx.DB
	mu sync.RWMutex
}

var _ Store = (*store)(nil)

// NewStore creates a Store backed by db. Queries are written with '?'
// placeholders and rebound for the driver in use.
func NewStore(db *sqlx.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) InsertPlayer(ctx context.Context, name string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := Player{Name: name}
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`INSERT INTO players (name) VALUES (?) RETURNING id`), name).Scan(&player.ID)
	if err != nil {
		return Player{}, unavailable("insert player", err)
	}

	log.Info("Registered player", "playerID", player.ID, "name", name)
	return player, nil
}

func (s *store) GetPlayer(ctx context.Context, id int64) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var player Player
	err := s.db.GetContext(ctx, &player, s.db.Rebind(`
		SELECT id, name, matches_played, draws_encountered
		FROM players
		WHERE id = ?
	`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Player{}, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
		}
		return Player{}, unavailable("get player", err)
	}
	return player, nil
}

func (s *store) ListPlayers(ctx context.Context) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := []Player{}
	err := s.db.SelectContext(ctx, &players, `
		SELECT id, name, matches_played, draws_encountered
		FROM players
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, unavailable("list players", err)
	}
	return players, nil
}

func (s *store) ListMatches(ctx context.Context) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []Match{}
	err := s.db.SelectContext(ctx, &matches, `
		SELECT id, player_1_id, player_2_id, winner
		FROM matches
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, unavailable("list matches", err)
	}
	for i := range matches {
		matches[i].Draw = matches[i].IsDraw()
	}
	return matches, nil
}

func (s *store) DeleteAll(ctx context.Context, kind EntityKind) error {
	table, err := kind.table()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table)
	if err != nil {
		return unavailable("delete "+table, err)
	}
	deleted, _ := res.RowsAffected()
	log.Info("Deleted all rows", "table", table, "count", deleted)
	return nil
}

func (s *store) Count(ctx context.Context, kind EntityKind) (int, error) {
	table, err := kind.table()
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT count(*) FROM "+table); err != nil {
		return 0, unavailable("count "+table, err)
	}
	return count, nil
}

func (s *store) AggregateStandings(ctx context.Context) ([]StandingRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []StandingRow{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, name, wins, matches
		FROM player_standings
		ORDER BY wins DESC, id ASC
	`)
	if err != nil {
		return nil, unavailable("aggregate standings", err)
	}
	return rows, nil
}

func (s *store) RunInTx(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return unavailable("begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(&storeTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return unavailable("commit transaction", err)
	}
	return nil
}

// storeTx implements Tx on top of an open transaction. It must not touch the
// parent handle: SQLite runs with a single connection.
type storeTx struct {
	tx *sqlx.Tx
}

func (t *storeTx) PlayerExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := t.tx.QueryRowxContext(ctx, t.tx.Rebind("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)"), id).Scan(&exists)
	if err != nil {
		return false, unavailable("check player", err)
	}
	return exists, nil
}

func (t *storeTx) InsertMatch(ctx context.Context, match Match) (int64, error) {
	var id int64
	err := t.tx.QueryRowxContext(ctx, t.tx.Rebind(`
		INSERT INTO matches (player_1_id, player_2_id, winner)
		VALUES (?, ?, ?)
		RETURNING id
	`), match.Player1ID, match.Player2ID, match.Winner).Scan(&id)
	if err != nil {
		return 0, unavailable("insert match", err)
	}
	return id, nil
}

func (t *storeTx) UpdateCounters(ctx context.Context, playerID int64, deltaMatches, deltaDraws int) error {
	res, err := t.tx.ExecContext(ctx, t.tx.Rebind(`
		UPDATE players
		SET matches_played = matches_played + ?,
			draws_encountered = draws_encountered + ?
		WHERE id = ?
	`), deltaMatches, deltaDraws, playerID)
	if err != nil {
		return unavailable("update player counters", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return unavailable("update player counters", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: player %d does not exist", ErrInvalidPlayerReference, playerID)
	}
	return nil
}
