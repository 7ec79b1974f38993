// Package main provides the entry point for the cliphound application.
// It turns free-form timestamp text into an exact FFmpeg stream-copy
// invocation and runs it, producing a trimmed clip of the input media.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/urfave/cli/v2"

	"github.com/torre76/cliphound/clip"
	"github.com/torre76/cliphound/config"
)

// Private constants (alphabetical)

const (
	// acceptedGrammars lists the timestamp formats shown in parse error
	// diagnostics and flag usage text.
	acceptedGrammars = "H:MM:SS, M:SS, 1h30m45s, or plain seconds (e.g. 90)"
)

// Public constants (alphabetical)
// None currently defined

// Private variables (alphabetical)
// None currently defined

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'main.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// applyFFmpegOverride replaces the detected FFmpeg location with a configured
// one, deriving the companion FFprobe path so probing keeps working even when
// auto-detection found nothing. An empty path leaves the detection result
// untouched.
func applyFFmpegOverride(info *clip.FFmpegInfo, path string) {
	if path == "" {
		return
	}
	info.Installed = true
	info.Path = path
	info.FFprobePath = clip.FFprobePathFor(path)
}

// formatHumanReadableSize formats a size in bytes to a human-readable form.
func formatHumanReadableSize(bytes int64) string {
	const (
		_          = iota
		KB float64 = 1 << (10 * iota)
		MB
		GB
	)

	switch {
	case bytes < 1000:
		return fmt.Sprintf("%d bytes", bytes)
	case float64(bytes) < 1000*KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	case float64(bytes) < 1000*MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	}
}

// printBanner prints the application banner at the start of a run.
func printBanner() {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	regularStyle := color.New(color.Reset)

	regularStyle.Println(strings.Repeat("=", 60))
	summaryStyle.Println("🎬 CLIPHOUND")
	regularStyle.Println("   Timestamp-driven video clipping with FFmpeg stream copy")
	regularStyle.Println(strings.Repeat("=", 60))
	fmt.Println()
}

// printMediaSummary prints the probed stream layout of the input file with
// proper pluralization.
func printMediaSummary(fileName string, info *clip.MediaInfo) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	pluralizeClient := pluralize.NewClient()

	summaryStyle.Println("📊 SOURCE MEDIA")
	regularStyle.Println("----------------")
	regularStyle.Printf("🎬 Working on: ")
	valueStyle.Printf("%s\n", filepath.Base(fileName))
	regularStyle.Printf("⏱️ Length: ")
	valueStyle.Printf("%s\n", clip.FormatTimeReadable(info.Duration))
	regularStyle.Printf("🎞️ %d ", info.VideoStreams)
	valueStyle.Printf("%s", pluralizeClient.Pluralize("video stream", info.VideoStreams, false))
	regularStyle.Printf(", %d ", info.AudioStreams)
	valueStyle.Printf("%s\n", pluralizeClient.Pluralize("audio stream", info.AudioStreams, false))
	fmt.Println()
}

// printPlan prints a resolved clip plan without executing it.
func printPlan(plan *clip.ClipPlan) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Println("✂️ CLIP PLAN")
	regularStyle.Println("----------------")
	regularStyle.Printf("Input: ")
	valueStyle.Printf("%s\n", plan.InputPath)
	regularStyle.Printf("Output: ")
	valueStyle.Printf("%s\n", plan.OutputPath)
	regularStyle.Printf("Range: ")
	valueStyle.Printf("%s → %s (%s)\n",
		clip.FormatTimeReadable(plan.Range.Start),
		clip.FormatTimeReadable(plan.Range.End),
		plan.Range.ClipDuration)
	regularStyle.Printf("Command: ")
	valueStyle.Printf("%s\n", plan.Command)
}

// promptFor asks the user for a value interactively when the corresponding
// flag was not supplied. Surrounding quotes are stripped as a convenience for
// drag-and-dropped paths.
func promptFor(message string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(answer), `"'`), nil
}

// renderPlanError prints a planning failure with the offending input and the
// accepted grammar set, so the user can fix the request without consulting
// documentation.
func renderPlanError(err error) {
	errorStyle := color.New(color.FgRed)
	regularStyle := color.New(color.Reset)

	var parseErr *clip.ParseError
	var validationErr *clip.ValidationError

	switch {
	case errors.As(err, &parseErr):
		errorStyle.Printf("❌ Could not understand timestamp %q\n", parseErr.Input)
		regularStyle.Printf("   Accepted formats: %s\n", acceptedGrammars)
	case errors.As(err, &validationErr):
		errorStyle.Printf("❌ Invalid time range: %v\n", validationErr)
	default:
		errorStyle.Printf("❌ Error: %v\n", err)
	}
}

// versionPrinter replaces the default urfave/cli version output with the
// styled build information block.
func versionPrinter(_ *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("🐾 ClipHound %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// Public functions (alphabetical)

// ClipCommand implements the default command: it resolves the requested
// range into a clip plan and, unless --dry-run was given, executes it with
// FFmpeg.
func ClipCommand(c *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)

	printBanner()

	inputFile := c.Args().Get(0)
	startText := c.String("start")
	endText := c.String("end")

	// Fall back to interactive prompts for anything not supplied as a flag,
	// matching the behavior users expect from a double-clicked binary.
	var err error
	if inputFile == "" {
		if inputFile, err = promptFor("Video file path:"); err != nil {
			return err
		}
	}
	if inputFile == "" {
		return fmt.Errorf("no input file provided")
	}
	if startText == "" {
		if startText, err = promptFor("Start time (e.g. 36:07 or 2167):"); err != nil {
			return err
		}
		if startText == "" {
			startText = "0"
		}
	}
	if endText == "" {
		if endText, err = promptFor("End time (e.g. 37:19 or 2239):"); err != nil {
			return err
		}
	}
	if endText == "" {
		return fmt.Errorf("end time is required")
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if c.IsSet("dir") {
		outputDir = c.String("dir")
	}

	ctx := c.Context
	detectCtx, cancel := context.WithTimeout(ctx, clip.GetDefaultTimeout())
	ffmpegInfo, err := clip.FindFFmpeg(detectCtx)
	cancel()
	if err != nil {
		return err
	}
	applyFFmpegOverride(ffmpegInfo, cfg.FFmpegPath)

	planner := &clip.Planner{OutputDir: outputDir}
	request := clip.ClipRequest{InputFile: inputFile, StartTime: startText, EndTime: endText}

	// Probe the source when possible so the range can be bounded against the
	// real media length. A failed probe downgrades to unbounded planning.
	var plan *clip.ClipPlan
	var planErr error
	if prober, proberErr := clip.NewProber(ffmpegInfo); proberErr == nil {
		probeCtx, cancelProbe := context.WithTimeout(ctx, clip.GetDefaultTimeout())
		mediaInfo, probeErr := prober.Probe(probeCtx, inputFile)
		cancelProbe()
		if probeErr == nil {
			printMediaSummary(inputFile, mediaInfo)
			plan, planErr = planner.PlanWithSource(request, mediaInfo.Duration)
		} else {
			plan, planErr = planner.Plan(request)
		}
	} else {
		plan, planErr = planner.Plan(request)
	}
	if planErr != nil {
		renderPlanError(planErr)
		return planErr
	}

	if c.Bool("dry-run") {
		printPlan(plan)
		return nil
	}

	if !ffmpegInfo.Installed {
		return fmt.Errorf("ffmpeg not found; install it or set ffmpeg_path in %s", config.DefaultPath())
	}

	regularStyle.Printf("🔧 Using FFmpeg at ")
	valueStyle.Printf("%s", ffmpegInfo.Path)
	regularStyle.Printf(" (version ")
	valueStyle.Printf("%s", ffmpegInfo.Version)
	regularStyle.Printf(")\n\n")

	runner, err := clip.NewRunner(ffmpegInfo)
	if err != nil {
		return err
	}
	runner.ShowProgress = !c.Bool("quiet")
	runner.AudioFallback = cfg.AudioFallback

	started := time.Now()
	result, err := runner.Execute(ctx, plan)
	if err != nil {
		return err
	}

	fmt.Println()
	successStyle.Println("✅ SUCCESS!")
	regularStyle.Printf("📁 Clip saved: ")
	valueStyle.Printf("%s\n", result.OutputPath)
	if result.SizeBytes > 0 {
		regularStyle.Printf("📊 Size: ")
		valueStyle.Printf("%s\n", formatHumanReadableSize(result.SizeBytes))
	}
	regularStyle.Printf("⏱️ Clip duration: ")
	valueStyle.Printf("%s\n", plan.Range.ClipDuration)
	if result.UsedAudioFallback {
		regularStyle.Println("🔊 Audio was re-encoded to AAC (source codec not copyable)")
	}
	regularStyle.Printf("🏁 Finished in %s\n", time.Since(started).Round(time.Millisecond))

	return nil
}

// main is the entry point of the application.
// It parses command-line arguments, validates input, and starts the clip.
func main() {
	// Override the default version printer
	cli.VersionPrinter = versionPrinter

	app := &cli.App{
		Name:  "cliphound",
		Usage: "A tool for cutting clips out of video files",
		Description: "ClipHound accepts human-friendly timestamps (" + acceptedGrammars + "), " +
			"validates the requested range, and trims the clip with an FFmpeg stream copy " +
			"(no re-encoding), so cuts complete in seconds.",
		Authors: []*cli.Author{
			{
				Name: "Gian Luca Dalla Torre",
			},
		},
		Version:   Version,
		Action:    ClipCommand,
		ArgsUsage: "VIDEO_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "Clip start time (" + acceptedGrammars + ")",
			},
			&cli.StringFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "Clip end time (" + acceptedGrammars + ")",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory where to write the clip",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file",
				Value: config.DefaultPath(),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the resolved clip plan without executing FFmpeg",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Disable the progress spinner",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
