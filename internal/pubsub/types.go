package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchReported EventType = "match-reported"
)

// MatchReported is published after a match result has been committed.
type MatchReported struct {
	EventID    string `msgpack:"event_id" json:"event_id"`
	MatchID    int64  `msgpack:"match_id" json:"match_id"`
	Player1ID  int64  `msgpack:"player_1_id" json:"player_1_id"`
	Player2ID  int64  `msgpack:"player_2_id" json:"player_2_id"`
	Winner     int64  `msgpack:"winner" json:"winner"`
	Draw       bool   `msgpack:"draw" json:"draw"`
	ReportedAt int64  `msgpack:"reported_at" json:"reported_at"`
}
