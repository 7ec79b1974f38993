// Package clip provides the timestamp parsing and clip-command synthesis core
// used by every surface of cliphound. It turns free-form timestamp text into
// validated time ranges and emits the exact FFmpeg argument vector for a
// stream-copy trim, without performing any I/O or execution itself.
package clip

import (
	"fmt"
	"time"
)

// Private constants (alphabetical)
const (
	// defaultTimeout is the standard timeout for FFmpeg helper invocations
	// (version checks and probing). Trim execution itself is not bounded by
	// this value; callers control it through their context.
	defaultTimeout = 30 * time.Second

	// errorPrefix is used as a prefix for all error messages from this package.
	// This ensures consistent error formatting across the package.
	errorPrefix = "clip: "
)

// Public constants (alphabetical)
const (
	// DefaultContainer is the extension of the container every clip is written
	// to. Clips are always muxed into MP4 by the stream-copy path regardless
	// of the input container, so outputs are uniformly playable.
	DefaultContainer = ".mp4"

	// DefaultOutputDir is the directory clips are written to when the caller
	// does not override it.
	DefaultOutputDir = "downloads"

	// FallbackAudioBitrate is the bitrate used when audio must be re-encoded
	// to AAC because the source audio codec cannot be stream-copied into MP4.
	FallbackAudioBitrate = "128k"
)

// Public functions (alphabetical)

// FormatError creates a standardized error message with the package prefix.
// It ensures all errors from this package have a consistent format and can be
// easily identified as originating from the clip package.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}

// GetDefaultTimeout returns the standard timeout duration for FFmpeg helper
// operations. Applications can use this when creating contexts for probing.
func GetDefaultTimeout() time.Duration {
	return defaultTimeout
}
