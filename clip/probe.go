// Package clip provides the timestamp parsing and clip-command synthesis core.
package clip

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"time"
)

// Public functions (alphabetical)

// NewProber creates a Prober from detected FFmpeg information. It fails when
// FFmpeg (and therefore FFprobe) is not available on the system.
func NewProber(info *FFmpegInfo) (*Prober, error) {
	if info == nil || !info.Installed {
		return nil, FormatError("ffmpeg not available")
	}
	return &Prober{FFprobePath: info.FFprobePath}, nil
}

// Private methods (alphabetical)

// parseProbeOutput converts FFprobe's JSON document into a MediaInfo.
func (p *Prober) parseProbeOutput(data []byte) (*MediaInfo, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, FormatError("error parsing ffprobe output: %w", err)
	}

	info := &MediaInfo{FormatName: out.Format.FormatName}

	if out.Format.Duration != "" {
		seconds, err := strconv.ParseFloat(out.Format.Duration, 64)
		if err != nil {
			return nil, FormatError("error parsing media duration %q: %w", out.Format.Duration, err)
		}
		info.Duration = time.Duration(seconds * float64(time.Second))
	}

	for _, stream := range out.Streams {
		switch stream.CodecType {
		case "video":
			info.VideoStreams++
		case "audio":
			info.AudioStreams++
		}
	}

	return info, nil
}

// Public methods (alphabetical)

// Probe extracts the duration and stream layout of a media file using
// FFprobe's JSON output. The result supplies the optional source-duration
// bound used by PlanWithSource and the stream summary shown by the CLI.
func (p *Prober) Probe(ctx context.Context, filePath string) (*MediaInfo, error) {
	cmd := exec.CommandContext(
		ctx,
		p.FFprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		filePath,
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, FormatError("error probing %s: %w", filePath, err)
	}

	return p.parseProbeOutput(output)
}
