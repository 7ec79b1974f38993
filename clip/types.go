// Package clip provides the timestamp parsing and clip-command synthesis core.
package clip

import "time"

// Private types (alphabetical)

// ffprobeFormatInfo represents the "format" object of FFprobe's JSON output.
// Only the fields the prober consumes are declared.
type ffprobeFormatInfo struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}

// ffprobeOutput represents the top-level JSON document returned by FFprobe
// when invoked with -show_format and -show_streams.
type ffprobeOutput struct {
	Format  ffprobeFormatInfo   `json:"format"`
	Streams []ffprobeStreamInfo `json:"streams"`
}

// ffprobeStreamInfo represents a single entry of the "streams" array of
// FFprobe's JSON output.
type ffprobeStreamInfo struct {
	Index     int    `json:"index"`
	CodecType string `json:"codec_type"`
	CodecName string `json:"codec_name"`
}

// Public types (alphabetical)

// ClipPlan is the fully resolved, side-effect-free result of planning a clip.
// It is immutable once produced and safe to serialize, log, or display
// without re-deriving. The planner produces it; the caller owns it and
// decides whether and how to execute it.
type ClipPlan struct {
	// InputPath is the source media file exactly as supplied by the request.
	InputPath string `json:"input_file"`

	// OutputPath is the derived destination file, including the output
	// directory the planner was configured with.
	OutputPath string `json:"output_file"`

	// Range is the validated time range the plan covers.
	Range TimeRange `json:"range"`

	// Args is the ordered FFmpeg argument vector. It is always a flat
	// sequence of discrete tokens suitable for exec.Command; it is never a
	// pre-joined shell string.
	Args []string `json:"args"`

	// Command is a display-only joined rendering of the FFmpeg invocation.
	// It must never be handed to a shell.
	Command string `json:"command"`
}

// ClipRequest is the raw, untrusted input to the planner. All fields are
// free-form text exactly as received from the caller surface.
type ClipRequest struct {
	// InputFile is the path or name of the source media file.
	InputFile string `json:"input_file"`

	// StartTime is the requested clip start in any accepted timestamp grammar.
	StartTime string `json:"start_time"`

	// EndTime is the requested clip end in any accepted timestamp grammar.
	EndTime string `json:"end_time"`
}

// ExecResult describes the outcome of executing a clip plan.
type ExecResult struct {
	// OutputPath is the file the clip was written to.
	OutputPath string

	// SizeBytes is the size of the written clip, or zero when it could not
	// be determined.
	SizeBytes int64

	// UsedAudioFallback is true when the primary stream-copy attempt failed
	// on the audio codec and the clip was produced by the AAC fallback.
	UsedAudioFallback bool
}

// FFmpegInfo contains information about the FFmpeg installation.
type FFmpegInfo struct {
	// Installed is true if FFmpeg is found on the system.
	Installed bool

	// Path is the full path to the FFmpeg executable.
	Path string

	// FFprobePath is the full path to the FFprobe executable, derived from
	// the FFmpeg location.
	FFprobePath string

	// Version is the detected FFmpeg version, or "unknown".
	Version string
}

// MediaInfo holds the probe results the clipper cares about: the length of
// the source and a coarse count of its streams.
type MediaInfo struct {
	// Duration is the total length of the source media.
	Duration time.Duration

	// VideoStreams is the number of video streams in the container.
	VideoStreams int

	// AudioStreams is the number of audio streams in the container.
	AudioStreams int

	// FormatName is the demuxer name reported by FFprobe (e.g. "mov,mp4,m4a").
	FormatName string
}

// Planner combines parsing, validation, naming, and command synthesis into a
// single pure planning operation. Every caller surface (CLI, native process
// spawner, wasm binding) goes through the same Plan method, which guarantees
// identical plans for identical requests. The zero value plans into
// DefaultOutputDir with the DefaultContainer extension.
type Planner struct {
	// OutputDir is the directory the output path is rooted in. Empty means
	// DefaultOutputDir.
	OutputDir string

	// Container is the output extension including the dot. Empty means
	// DefaultContainer. It is configuration passed in explicitly; the planner
	// reads no ambient state.
	Container string
}

// Prober extracts media information from files using FFprobe.
type Prober struct {
	// FFprobePath is the path to the FFprobe executable.
	FFprobePath string
}

// Runner executes clip plans against the FFmpeg binary. It is the execution
// collaborator: everything that spawns processes, reads stderr, or touches
// the filesystem lives here, outside the pure planning core.
type Runner struct {
	// AudioFallback enables the AAC re-encode retry when the primary
	// stream-copy attempt fails on the source audio codec.
	AudioFallback bool

	// FFmpegPath is the path to the FFmpeg executable.
	FFmpegPath string

	// ShowProgress enables the terminal spinner while FFmpeg runs.
	ShowProgress bool
}

// TimeRange is a validated ordered pair of durations with a strictly positive
// difference. It is constructed only by ValidateRange; the clip duration is
// computed once at construction and cached.
type TimeRange struct {
	// Start is the beginning of the range, measured from the start of the media.
	Start time.Duration `json:"start"`

	// End is the end of the range. Always strictly greater than Start.
	End time.Duration `json:"end"`

	// ClipDuration is End - Start, cached at construction.
	ClipDuration time.Duration `json:"clip_duration"`
}
