package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/slack-go/slack"
)

// slackClient is the subset of slack.Client the notifier uses.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts tournament announcements to a Slack channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics)
}

// NewNotifierWithAPI creates a Notifier around an existing client.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

func (s *Notifier) SendStandings(rows []tournament.StandingRow, dryRun bool) error {
	return s.sendMessage(formatStandings(rows), dryRun)
}

func (s *Notifier) SendPairings(pairs []tournament.Pairing, dryRun bool) error {
	return s.sendMessage(formatPairings(pairs), dryRun)
}

func (s *Notifier) SendMatchResult(match tournament.Match, player1, player2 string, dryRun bool) error {
	return s.sendMessage(formatMatchResult(match, player1, player2), dryRun)
}

func plainSection(text string) slack.Block {
	return slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil)
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

// formatStandings renders the ranked table, one section per player.
func formatStandings(rows []tournament.StandingRow) slack.Message {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "🏆 Tournament Standings 🏆", true, false)),
	}

	if len(rows) == 0 {
		blocks = append(blocks, plainSection("No players registered yet."))
		return slack.NewBlockMessage(blocks...)
	}

	for i, row := range rows {
		rank := i + 1
		text := fmt.Sprintf("%d. %s %s\n> Wins: %d | Matches: %d", rank, medal(rank), row.Name, row.Wins, row.Matches)
		blocks = append(blocks, plainSection(text))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatPairings renders the next round, one section per table.
func formatPairings(pairs []tournament.Pairing) slack.Message {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "♟️ Next Round Pairings ♟️", true, false)),
	}

	if len(pairs) == 0 {
		blocks = append(blocks, plainSection("Nobody to pair."))
		return slack.NewBlockMessage(blocks...)
	}

	for i, pair := range pairs {
		text := fmt.Sprintf("Table %d: %s vs %s", i+1, pair.Name1, pair.Name2)
		blocks = append(blocks, plainSection(text))
	}
	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject("plain_text", fmt.Sprintf("%d matches to play", len(pairs)), true, false)))
	return slack.NewBlockMessage(blocks...)
}

func formatMatchResult(match tournament.Match, player1, player2 string) slack.Message {
	var text string
	if match.IsDraw() {
		text = fmt.Sprintf("%s and %s played a draw.", player1, player2)
	} else {
		text = fmt.Sprintf("%s beat %s.", player1, player2)
	}
	return slack.NewBlockMessage(
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "Match reported", true, false)),
		plainSection(text),
	)
}
