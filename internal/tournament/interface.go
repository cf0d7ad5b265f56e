package tournament

import "context"

// Store is the persistence collaborator of the tournament. Implementations
// report transport failures wrapped in ErrStoreUnavailable.
type Store interface {
	InsertPlayer(ctx context.Context, name string) (Player, error)
	GetPlayer(ctx context.Context, id int64) (Player, error)
	ListPlayers(ctx context.Context) ([]Player, error)
	ListMatches(ctx context.Context) ([]Match, error)
	DeleteAll(ctx context.Context, kind EntityKind) error
	Count(ctx context.Context, kind EntityKind) (int, error)
	// AggregateStandings returns one row per player ordered by wins
	// descending, then by registration order.
	AggregateStandings(ctx context.Context) ([]StandingRow, error)
	// RunInTx runs fn in a single transaction, committing only if fn
	// returns nil.
	RunInTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the set of writes that must happen atomically when a match is recorded.
type Tx interface {
	PlayerExists(ctx context.Context, id int64) (bool, error)
	InsertMatch(ctx context.Context, match Match) (int64, error)
	UpdateCounters(ctx context.Context, playerID int64, deltaMatches, deltaDraws int) error
}

// Service is the surface front ends (HTTP, CLI) call into.
type Service interface {
	RegisterPlayer(ctx context.Context, name string) (Player, error)
	CountPlayers(ctx context.Context) (int, error)
	DeleteMatches(ctx context.Context) error
	DeletePlayers(ctx context.Context) error
	Standings(ctx context.Context) ([]StandingRow, error)
	ReportMatch(ctx context.Context, winnerID, loserID int64, outcome Outcome) (Match, error)
	SwissPairings(ctx context.Context) ([]Pairing, error)

	Player(ctx context.Context, id int64) (Player, error)
	Players(ctx context.Context) ([]Player, error)
	Matches(ctx context.Context) ([]Match, error)
}
