package notifier

import "github.com/mauv0809/swiss-tournament/internal/tournament"

// Notifier sends tournament announcements to a chat channel. It keeps the
// rest of the application independent of the chat provider.
type Notifier interface {
	SendStandings(rows []tournament.StandingRow, dryRun bool) error
	SendPairings(pairs []tournament.Pairing, dryRun bool) error
	SendMatchResult(match tournament.Match, player1, player2 string, dryRun bool) error
}
