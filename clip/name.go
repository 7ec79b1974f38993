// Package clip provides the timestamp parsing and clip-command synthesis core.
package clip

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Private functions (alphabetical)

// formatStamp renders a duration for use inside an output file name. The
// short form is zero-padded "MM-SS"; when withHours is set the form becomes
// "HH-MM-SS". Sub-second precision is intentionally dropped, so two ranges
// differing only in fractions collapse to the same name. Collision handling
// belongs to the caller's filesystem semantics, not to this layer.
func formatStamp(d time.Duration, withHours bool) string {
	total := int(d.Seconds())
	if withHours {
		return fmt.Sprintf("%02d-%02d-%02d", total/3600, (total%3600)/60, total%60)
	}
	return fmt.Sprintf("%02d-%02d", total/60, total%60)
}

// outputNameExt is OutputName with the container extension passed in
// explicitly. The planner uses it so the extension is configuration handed
// to the generator rather than ambient state.
func outputNameExt(inputName string, r *TimeRange, ext string) string {
	base := filepath.Base(inputName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "clip"
	}

	withHours := r.Start >= time.Hour || r.End >= time.Hour
	return fmt.Sprintf("%s_clip_%s_to_%s%s",
		stem,
		formatStamp(r.Start, withHours),
		formatStamp(r.End, withHours),
		ext)
}

// Public functions (alphabetical)

// FormatTimeReadable renders a duration for display as "MM:SS", or
// "HH:MM:SS" when the duration reaches one hour.
func FormatTimeReadable(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// OutputName derives a deterministic, collision-resistant output file name
// from an input name and a validated range:
//
//	{stem}_clip_{start}_to_{end}.mp4
//
// The stem is the input name up to its final extension separator (the whole
// name when there is none). Endpoints are rendered as zero-padded "MM-SS",
// switching to "HH-MM-SS" for both endpoints when either one has a nonzero
// hour component, so names stay short for the common case yet sort correctly
// for long media. The extension is always the canonical copy-mode container,
// never derived from the input.
func OutputName(inputName string, r *TimeRange) string {
	return outputNameExt(inputName, r, DefaultContainer)
}
