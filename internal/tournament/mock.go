package tournament

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// Unset spies return zero values. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	InsertPlayerFunc       func(ctx context.Context, name string) (Player, error)
	GetPlayerFunc          func(ctx context.Context, id int64) (Player, error)
	ListPlayersFunc        func(ctx context.Context) ([]Player, error)
	ListMatchesFunc        func(ctx context.Context) ([]Match, error)
	DeleteAllFunc          func(ctx context.Context, kind EntityKind) error
	CountFunc              func(ctx context.Context, kind EntityKind) (int, error)
	AggregateStandingsFunc func(ctx context.Context) ([]StandingRow, error)
	RunInTxFunc            func(ctx context.Context, fn func(tx Tx) error) error

	// Call records
	InsertPlayerCalls []string
	DeleteAllCalls    []EntityKind
	RunInTxCalls      int
}

var _ Store = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) InsertPlayer(ctx context.Context, name string) (Player, error) {
	m.mu.Lock()
	m.InsertPlayerCalls = append(m.InsertPlayerCalls, name)
	m.mu.Unlock()
	if m.InsertPlayerFunc != nil {
		return m.InsertPlayerFunc(ctx, name)
	}
	return Player{Name: name}, nil
}

func (m *MockStore) GetPlayer(ctx context.Context, id int64) (Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, id)
	}
	return Player{}, ErrPlayerNotFound
}

func (m *MockStore) ListPlayers(ctx context.Context) ([]Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(ctx)
	}
	return []Player{}, nil
}

func (m *MockStore) ListMatches(ctx context.Context) ([]Match, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx)
	}
	return []Match{}, nil
}

func (m *MockStore) DeleteAll(ctx context.Context, kind EntityKind) error {
	m.mu.Lock()
	m.DeleteAllCalls = append(m.DeleteAllCalls, kind)
	m.mu.Unlock()
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, kind)
	}
	return nil
}

func (m *MockStore) Count(ctx context.Context, kind EntityKind) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, kind)
	}
	return 0, nil
}

func (m *MockStore) AggregateStandings(ctx context.Context) ([]StandingRow, error) {
	if m.AggregateStandingsFunc != nil {
		return m.AggregateStandingsFunc(ctx)
	}
	return []StandingRow{}, nil
}

func (m *MockStore) RunInTx(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	m.RunInTxCalls++
	m.mu.Unlock()
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return nil
}
