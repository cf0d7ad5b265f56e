package pubsub

import "github.com/charmbracelet/log"

// disabled is used when no GCP project is configured. Events are dropped.
type disabled struct{}

func NewDisabled() PubSubClient {
	return disabled{}
}

func (disabled) SendMessage(topic EventType, data any) error {
	log.Debug("Pub/Sub disabled, dropping event", "topic", topic)
	return nil
}

func (disabled) ProcessMessage(data []byte, returnValue any) error {
	return Decode(data, returnValue)
}
