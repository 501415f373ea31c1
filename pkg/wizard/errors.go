package wizard

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("wizard: aborted")
	// ErrCancelled is returned when the user declines to submit at review.
	ErrCancelled = errors.New("wizard: booking cancelled")
)
