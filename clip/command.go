// Package clip provides the timestamp parsing and clip-command synthesis core.
package clip

import (
	"strconv"
	"strings"
	"time"
)

// Private functions (alphabetical)

// formatSeconds renders a duration as a minimal decimal seconds token for the
// FFmpeg command line: "90" for whole seconds, "5.5" for fractional ones.
// The rendering is deterministic so identical requests always synthesize
// byte-identical argument vectors.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// Public functions (alphabetical)

// BuildArgs produces the argument vector instructing FFmpeg to seek to the
// range start, read for exactly the clip duration, stream-copy both audio
// and video into outputPath, overwrite any existing file there, and shift
// timestamps so the output starts at zero:
//
//	-i <input> -ss <start> -t <duration> -c copy -avoid_negative_ts make_zero -y <output>
//
// The token order is a compatibility contract with FFmpeg and must not be
// reordered. Seeking is specified after the input on purpose: it favors fast
// engine-side seeking at a small accuracy cost around non-keyframe
// boundaries, which is the accepted tradeoff for copy-mode trimming.
//
// The result is a flat sequence of discrete tokens for a process argument
// vector. Never join it into a single shell string for execution; paths with
// spaces stay intact only as discrete tokens.
func BuildArgs(inputPath, outputPath string, r *TimeRange) []string {
	return []string{
		"-i", inputPath,
		"-ss", formatSeconds(r.Start),
		"-t", formatSeconds(r.ClipDuration),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		"-y", outputPath,
	}
}

// BuildFallbackArgs produces the argument vector for the retry path used
// when the source audio codec cannot be stream-copied into the output
// container: video is still copied, audio is re-encoded to AAC at
// FallbackAudioBitrate. The runner switches to it only after sniffing an
// audio-related failure from a primary attempt.
func BuildFallbackArgs(inputPath, outputPath string, r *TimeRange) []string {
	return []string{
		"-i", inputPath,
		"-ss", formatSeconds(r.Start),
		"-t", formatSeconds(r.ClipDuration),
		"-c:v", "copy",
		"-c:a", "aac",
		"-b:a", FallbackAudioBitrate,
		"-avoid_negative_ts", "make_zero",
		"-y", outputPath,
	}
}

// CommandString renders an argument vector as a single "ffmpeg ..." line for
// display and logging. The result is informational only and must never be
// handed to a shell; execution always uses the discrete token vector.
func CommandString(args []string) string {
	return "ffmpeg " + strings.Join(args, " ")
}
