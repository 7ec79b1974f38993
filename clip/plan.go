// Package clip provides the timestamp parsing and clip-command synthesis core.
package clip

import (
	"path/filepath"
	"time"
)

// Private methods (alphabetical)

// container returns the configured output extension, falling back to the
// canonical copy-mode container.
func (p *Planner) container() string {
	if p.Container != "" {
		return p.Container
	}
	return DefaultContainer
}

// outputDir returns the configured output directory, falling back to the
// package default.
func (p *Planner) outputDir() string {
	if p.OutputDir != "" {
		return p.OutputDir
	}
	return DefaultOutputDir
}

// plan is the single planning sequence shared by Plan and PlanWithSource.
// A non-positive source means no bound is known.
func (p *Planner) plan(req ClipRequest, source time.Duration) (*ClipPlan, error) {
	start, err := ParseTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseTime(req.EndTime)
	if err != nil {
		return nil, err
	}

	var r *TimeRange
	if source > 0 {
		r, err = ValidateRangeWithSource(start, end, source)
	} else {
		r, err = ValidateRange(start, end)
	}
	if err != nil {
		return nil, err
	}

	outputPath := filepath.Join(p.outputDir(), outputNameExt(req.InputFile, r, p.container()))
	args := BuildArgs(req.InputFile, outputPath, r)

	return &ClipPlan{
		InputPath:  req.InputFile,
		OutputPath: outputPath,
		Range:      *r,
		Args:       args,
		Command:    CommandString(args),
	}, nil
}

// Public methods (alphabetical)

// Plan resolves a raw clip request into a fully specified clip plan: both
// timestamps parsed, the range validated, the output name derived, and the
// FFmpeg argument vector synthesized. It performs no I/O and never executes
// anything; the returned plan is a value the caller owns.
//
// The sequence is fixed: start text is parsed before end text, so when both
// are malformed the start failure is the one reported. The first failure of
// any stage is surfaced verbatim as a *ParseError or *ValidationError and no
// plan is produced.
//
// Plan is deterministic and reentrant. Identical requests yield identical
// plans no matter which caller surface submitted them, which is what lets
// the CLI, the native process layer, and the wasm binding share one
// planning path.
func (p *Planner) Plan(req ClipRequest) (*ClipPlan, error) {
	return p.plan(req, 0)
}

// PlanWithSource plans like Plan but additionally bounds the range against a
// known source media length, as supplied by a probe. Requests whose end lies
// beyond the source fail with a *ValidationError of reason
// ExceedsSourceDuration.
func (p *Planner) PlanWithSource(req ClipRequest, source time.Duration) (*ClipPlan, error) {
	return p.plan(req, source)
}
