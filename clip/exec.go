// Package clip provides the timestamp parsing and clip-command synthesis core.
// This file is the execution collaborator: it spawns the external engine for
// a plan the pure core produced.
package clip

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Private variables (alphabetical)

// audioErrorIndicators are stderr fragments that identify a stream-copy
// failure caused by the source audio codec. Only these failures trigger the
// AAC fallback; any other engine failure is surfaced verbatim.
var audioErrorIndicators = []string{
	"codec not currently supported in container",
	"could not find codec parameters for stream",
	"invalid codec tag",
	"audio codec",
	"stream copy",
	"does not support codec",
}

// Private functions (alphabetical)

// isAudioError reports whether FFmpeg's stderr output points at an
// audio-codec problem rather than a general failure.
func isAudioError(stderr string) bool {
	lowered := strings.ToLower(stderr)
	for _, indicator := range audioErrorIndicators {
		if strings.Contains(lowered, indicator) {
			return true
		}
	}
	return false
}

// spinWhile renders an indeterminate spinner until the returned stop
// function is called. It returns a no-op stop function when progress display
// is disabled.
func spinWhile(description string, enabled bool) func() {
	if !enabled {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(10),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	return func() {
		close(done)
		_ = bar.Finish()
	}
}

// Public functions (alphabetical)

// NewRunner creates a Runner from detected FFmpeg information. It fails when
// FFmpeg is not available on the system.
func NewRunner(info *FFmpegInfo) (*Runner, error) {
	if info == nil || !info.Installed {
		return nil, FormatError("ffmpeg not available")
	}
	return &Runner{FFmpegPath: info.Path, AudioFallback: true}, nil
}

// Private methods (alphabetical)

// run invokes FFmpeg once with the given argument vector, returning the
// captured stderr alongside any execution error.
func (r *Runner) run(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, r.FFmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// Public methods (alphabetical)

// Execute runs a clip plan against FFmpeg. It verifies the input file
// exists, creates the output directory, and invokes the engine with the
// plan's argument vector. When the primary stream-copy attempt fails with an
// audio-codec error, it retries once with the AAC fallback arguments; every
// other failure is returned with the engine's stderr attached.
//
// Execution is entirely outside the planning core: cancelling ctx stops the
// engine, and the plan itself is never mutated.
func (r *Runner) Execute(ctx context.Context, plan *ClipPlan) (*ExecResult, error) {
	if _, err := os.Stat(plan.InputPath); err != nil {
		return nil, FormatError("input file not found: %s", plan.InputPath)
	}
	if dir := filepath.Dir(plan.OutputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, FormatError("error creating output directory: %w", err)
		}
	}

	stop := spinWhile("Clipping", r.ShowProgress)
	stderr, err := r.run(ctx, plan.Args)
	stop()

	result := &ExecResult{OutputPath: plan.OutputPath}

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !r.AudioFallback || !isAudioError(stderr) {
			return nil, FormatError("ffmpeg failed: %s", strings.TrimSpace(stderr))
		}

		// The audio codec cannot be stream-copied into MP4; retry once with
		// AAC re-encoding while still copying video.
		fallbackArgs := BuildFallbackArgs(plan.InputPath, plan.OutputPath, &plan.Range)
		stop = spinWhile("Clipping (AAC fallback)", r.ShowProgress)
		stderr, err = r.run(ctx, fallbackArgs)
		stop()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, FormatError("ffmpeg failed even with audio fallback: %s", strings.TrimSpace(stderr))
		}
		result.UsedAudioFallback = true
	}

	if info, statErr := os.Stat(plan.OutputPath); statErr == nil {
		result.SizeBytes = info.Size()
	}

	return result, nil
}
