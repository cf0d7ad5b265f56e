package notifier

import (
	"sync"

	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendStandingsFunc   func(rows []tournament.StandingRow, dryRun bool) error
	SendPairingsFunc    func(pairs []tournament.Pairing, dryRun bool) error
	SendMatchResultFunc func(match tournament.Match, player1, player2 string, dryRun bool) error

	// Call records
	SendStandingsCalls   []SendStandingsCall
	SendPairingsCalls    []SendPairingsCall
	SendMatchResultCalls []SendMatchResultCall
}

type SendStandingsCall struct {
	Rows   []tournament.StandingRow
	DryRun bool
}

type SendPairingsCall struct {
	Pairs  []tournament.Pairing
	DryRun bool
}

type SendMatchResultCall struct {
	Match            tournament.Match
	Player1, Player2 string
	DryRun           bool
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = nil
	m.SendPairingsCalls = nil
	m.SendMatchResultCalls = nil
}

func (m *Mock) SendStandings(rows []tournament.StandingRow, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, SendStandingsCall{Rows: rows, DryRun: dryRun})
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(rows, dryRun)
	}
	return nil
}

func (m *Mock) SendPairings(pairs []tournament.Pairing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPairingsCalls = append(m.SendPairingsCalls, SendPairingsCall{Pairs: pairs, DryRun: dryRun})
	if m.SendPairingsFunc != nil {
		return m.SendPairingsFunc(pairs, dryRun)
	}
	return nil
}

func (m *Mock) SendMatchResult(match tournament.Match, player1, player2 string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, SendMatchResultCall{Match: match, Player1: player1, Player2: player2, DryRun: dryRun})
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(match, player1, player2, dryRun)
	}
	return nil
}
