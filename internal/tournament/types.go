package tournament

import "fmt"

// DrawWinner is stored in matches.winner when a match ends without a winner.
const DrawWinner int64 = -1

// Outcome is the result kind of a reported match.
type Outcome string

const (
	OutcomeWinLoss Outcome = "WIN_LOSS"
	OutcomeDraw    Outcome = "DRAW"
)

func (o Outcome) Valid() bool {
	return o == OutcomeWinLoss || o == OutcomeDraw
}

// EntityKind names a persisted record type for bulk operations.
type EntityKind string

const (
	KindPlayers EntityKind = "players"
	KindMatches EntityKind = "matches"
)

func (k EntityKind) table() (string, error) {
	switch k {
	case KindPlayers, KindMatches:
		return string(k), nil
	}
	return "", fmt.Errorf("unknown entity kind %q", k)
}

// Player is a registered tournament participant. MatchesPlayed and
// DrawsEncountered are denormalized counters maintained by the match recorder.
type Player struct {
	ID               int64  `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	MatchesPlayed    int    `db:"matches_played" json:"matches_played"`
	DrawsEncountered int    `db:"draws_encountered" json:"draws_encountered"`
}

// Match is an immutable record of one game between two players.
type Match struct {
	ID        int64 `db:"id" json:"id"`
	Player1ID int64 `db:"player_1_id" json:"player_1_id"`
	Player2ID int64 `db:"player_2_id" json:"player_2_id"`
	Winner    int64 `db:"winner" json:"winner"`
	Draw      bool  `db:"-" json:"draw"`
}

func (m Match) IsDraw() bool {
	return m.Winner == DrawWinner
}

// StandingRow is a player's aggregated record, derived from match history.
type StandingRow struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Wins    int    `db:"wins" json:"wins"`
	Matches int    `db:"matches" json:"matches"`
}

// Pairing is one next-round match-up; the higher-ranked player comes first.
type Pairing struct {
	ID1   int64  `json:"id1"`
	Name1 string `json:"name1"`
	ID2   int64  `json:"id2"`
	Name2 string `json:"name2"`
}
