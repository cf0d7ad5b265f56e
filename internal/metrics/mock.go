package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	playersRegistered int
	matchesReported   map[string]int
	pairingsGenerated int
	pairingFailures   int
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		matchesReported: make(map[string]int),
	}
}

func (m *Mock) IncPlayersRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersRegistered++
}

func (m *Mock) IncMatchesReported(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesReported[outcome]++
}

func (m *Mock) IncPairingsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairingsGenerated++
}

func (m *Mock) IncPairingFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairingFailures++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PlayersRegistered returns the number of times IncPlayersRegistered was called.
func (m *Mock) PlayersRegistered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersRegistered
}

// MatchesReported returns how many matches were reported with the given outcome.
func (m *Mock) MatchesReported(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesReported[outcome]
}

func (m *Mock) PairingsGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pairingsGenerated
}

func (m *Mock) PairingFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pairingFailures
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
