// Package clip provides the timestamp parsing and clip-command synthesis core.
package clip

import (
	"fmt"
	"time"
)

// Public constants (alphabetical)

// ValidationReason identifies why a time range was rejected.
type ValidationReason int

const (
	// NegativeStart indicates that one of the supplied durations was negative.
	// The parser never produces negative durations, but the validator does not
	// trust its caller.
	NegativeStart ValidationReason = iota

	// NonPositiveDuration indicates a reversed or zero-length range. Both are
	// rejected identically; a clip must be strictly longer than zero.
	NonPositiveDuration

	// ExceedsSourceDuration indicates the requested end lies beyond the known
	// length of the source media.
	ExceedsSourceDuration
)

// Public types (alphabetical)

// ParseError reports timestamp text that matches none of the accepted
// grammars, or that matched a clock grammar with an out-of-range component.
// It always carries the original input for user-facing diagnostics.
type ParseError struct {
	// Input is the original text as supplied by the caller, before trimming.
	Input string
}

// Error describes the failure and lists the accepted grammars so the message
// is actionable without consulting documentation.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time format %q (expected H:MM:SS, M:SS, 1h30m45s, or seconds)", e.Input)
}

// ValidationError reports a well-parsed but ill-formed time range.
// It carries the offending values for user-facing diagnostics.
type ValidationError struct {
	// Reason identifies which validation rule was violated.
	Reason ValidationReason

	// Start is the requested start of the range.
	Start time.Duration

	// End is the requested end of the range.
	End time.Duration

	// Source is the known source media length. It is only meaningful when
	// Reason is ExceedsSourceDuration.
	Source time.Duration
}

// Error describes the failure in terms of the values the caller supplied.
func (e *ValidationError) Error() string {
	switch e.Reason {
	case NegativeStart:
		return fmt.Sprintf("negative time value (start %s, end %s)", e.Start, e.End)
	case ExceedsSourceDuration:
		return fmt.Sprintf("end time %s exceeds source duration %s", formatSeconds(e.End), formatSeconds(e.Source))
	default:
		return fmt.Sprintf("end time (%s) must be after start time (%s)", formatSeconds(e.End), formatSeconds(e.Start))
	}
}
