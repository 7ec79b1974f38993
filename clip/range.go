// Package clip provides the timestamp parsing and clip-command synthesis core.
package clip

import "time"

// Public functions (alphabetical)

// ValidateRange checks a (start, end) pair for well-formedness and returns a
// TimeRange with its clip duration cached. It fails with a *ValidationError
// of reason NegativeStart when either input is negative (the parser never
// produces negative durations, but the validator does not trust its caller),
// and of reason NonPositiveDuration when end <= start. Reversed and
// zero-length ranges are rejected identically.
//
// No upper bound is imposed here; bounding against the actual media length
// is done by ValidateRangeWithSource when a probe has supplied one.
func ValidateRange(start, end time.Duration) (*TimeRange, error) {
	if start < 0 || end < 0 {
		return nil, &ValidationError{Reason: NegativeStart, Start: start, End: end}
	}
	if end <= start {
		return nil, &ValidationError{Reason: NonPositiveDuration, Start: start, End: end}
	}
	return &TimeRange{Start: start, End: end, ClipDuration: end - start}, nil
}

// ValidateRangeWithSource validates like ValidateRange and additionally
// rejects ranges extending past the known source length with a
// *ValidationError of reason ExceedsSourceDuration. The bound is inclusive:
// a clip ending exactly at end-of-media is accepted.
func ValidateRangeWithSource(start, end, source time.Duration) (*TimeRange, error) {
	r, err := ValidateRange(start, end)
	if err != nil {
		return nil, err
	}
	if end > source {
		return nil, &ValidationError{Reason: ExceedsSourceDuration, Start: start, End: end, Source: source}
	}
	return r, nil
}
