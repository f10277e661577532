package dispatch

import "errors"

var (
	// ErrCallbackRequired is returned when a dispatcher is created without a callback.
	ErrCallbackRequired = errors.New("callback required")

	// ErrInvalidDelay is returned for a negative quiescence interval.
	ErrInvalidDelay = errors.New("delay must not be negative")
)
