package tournament

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable wraps any failure talking to the backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidPlayerReference is returned when a match names an unknown
	// player, or the same player twice.
	ErrInvalidPlayerReference = errors.New("invalid player reference")
	// ErrOddPlayerCount is returned when pairings are requested for an odd field.
	ErrOddPlayerCount = errors.New("odd number of players")
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidOutcome = errors.New("invalid match outcome")
)

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", ErrStoreUnavailable, op, err)
}
