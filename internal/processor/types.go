package processor

import "errors"

// Processor turns tournament events into channel announcements.
type Processor struct {
	tournament Tournament
	notifier   Notifier
}

// ErrAnnounceFailed wraps a notifier failure, as opposed to a store failure.
var ErrAnnounceFailed = errors.New("announcement failed")
