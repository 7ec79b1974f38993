// Package clip provides the timestamp parsing and clip-command synthesis core.
// This file locates the external trimming engine; everything in it concerns
// the execution boundary, not the pure planning core.
package clip

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Private variables (alphabetical)

// ffmpegVersionRegex extracts the numeric version (e.g. 6.1.1) from FFmpeg's
// version banner, tolerating git "n" prefixes.
var ffmpegVersionRegex = regexp.MustCompile(`(?i)version\s+n?(\d+\.\d+(?:\.\d+)?)`)

// Private functions (alphabetical)

// checkFFmpegExistence searches for the ffmpeg executable, first in PATH and
// then in common installation directories for the current operating system.
func checkFFmpegExistence() (string, bool) {
	if path, err := exec.LookPath("ffmpeg"); err == nil {
		return path, true
	}

	for _, path := range getCommonInstallPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// getCommonInstallPaths returns common FFmpeg installation paths for the
// current operating system, used when the executable is not in PATH.
func getCommonInstallPaths() []string {
	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}

	switch runtime.GOOS {
	case "windows":
		paths := []string{
			filepath.Join("C:", "Program Files", "FFmpeg", "bin", execName),
			filepath.Join("C:", "Program Files (x86)", "FFmpeg", "bin", execName),
			filepath.Join("C:", "FFmpeg", "bin", execName),
		}
		if programFiles := os.Getenv("ProgramFiles"); programFiles != "" {
			paths = append(paths, filepath.Join(programFiles, "FFmpeg", "bin", execName))
		}
		return paths
	case "darwin":
		return []string{
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "local", "bin", execName),
			filepath.Join("/opt", "homebrew", "bin", execName),
		}
	default:
		return []string{
			filepath.Join("/usr", "bin", execName),
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "ffmpeg", "bin", execName),
		}
	}
}

// parseVersionOutput extracts the version number from FFmpeg's -version
// output, returning "unknown" when none can be found.
func parseVersionOutput(output string) string {
	if m := ffmpegVersionRegex.FindStringSubmatch(output); len(m) >= 2 {
		return m[1]
	}

	// Fallback: split the first line around " version ".
	lines := strings.SplitN(output, "\n", 2)
	parts := strings.Split(lines[0], " version ")
	if len(parts) > 1 {
		fields := strings.Fields(parts[1])
		if len(fields) > 0 {
			return strings.TrimPrefix(fields[0], "n")
		}
	}

	return "unknown"
}

// Public functions (alphabetical)

// FFprobePathFor derives the FFprobe location from an FFmpeg location.
// FFprobe ships alongside FFmpeg in every standard distribution, so the
// companion path holds both for auto-detected installations and for paths
// the user configured by hand.
func FFprobePathFor(ffmpegPath string) string {
	name := "ffprobe"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(filepath.Dir(ffmpegPath), name)
}

// FindFFmpeg locates the FFmpeg installation on the system and identifies
// its version and the companion FFprobe path. When FFmpeg cannot be found it
// returns an FFmpegInfo with Installed set to false and no error; the caller
// decides whether a missing engine is fatal.
func FindFFmpeg(ctx context.Context) (*FFmpegInfo, error) {
	ffmpegPath, found := checkFFmpegExistence()
	if !found {
		return &FFmpegInfo{Installed: false, Version: "unknown"}, nil
	}

	cmd := exec.CommandContext(ctx, ffmpegPath, "-version")
	output, err := cmd.Output()
	if err != nil {
		return &FFmpegInfo{Installed: false, Path: ffmpegPath, Version: "unknown"},
			FormatError("error getting FFmpeg version: %w", err)
	}

	return &FFmpegInfo{
		Installed:   true,
		Path:        ffmpegPath,
		FFprobePath: FFprobePathFor(ffmpegPath),
		Version:     parseVersionOutput(string(output)),
	}, nil
}
