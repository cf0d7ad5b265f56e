package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_MatchReported(t *testing.T) {
	event := MatchReported{
		EventID:    "evt-1",
		MatchID:    7,
		Player1ID:  1,
		Player2ID:  2,
		Winner:     -1,
		Draw:       true,
		ReportedAt: 1700000000,
	}

	data, err := Encode(event)
	require.NoError(t, err)

	var decoded MatchReported
	require.NoError(t, NewDisabled().ProcessMessage(data, &decoded))
	assert.Equal(t, event, decoded)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	var decoded MatchReported
	err := Decode([]byte{0xc1}, &decoded)
	assert.Error(t, err)
}

func TestDisabled_SendMessageDropsEvent(t *testing.T) {
	err := NewDisabled().SendMessage(EventMatchReported, MatchReported{MatchID: 1})
	assert.NoError(t, err)
}
