// Package clip provides the timestamp parsing and clip-command synthesis core.
package clip

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Private constants (alphabetical)

const (
	// maxParseSeconds bounds the total time a parsed timestamp may represent.
	// Components large enough to exceed it cannot describe real media and
	// would overflow time.Duration's nanosecond representation, producing a
	// negative duration; they are rejected as out of range instead.
	maxParseSeconds = 1 << 30
)

// Private variables (alphabetical)

// bareSecondsRegex matches a plain non-negative number interpreted directly
// as seconds (e.g. "90" or "45.5"). A leading sign is not part of the
// grammar, so negative input fails to match.
var bareSecondsRegex = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// clockHoursRegex matches the H:MM:SS[.fraction] grammar. Hours take one or
// more digits and are unbounded; minutes and seconds take exactly two digits
// and are range-checked separately so an out-of-range component is reported
// as a format error rather than silently reinterpreted.
var clockHoursRegex = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})(?:\.(\d+))?$`)

// clockMinutesRegex matches the M:SS[.fraction] grammar. Minutes are the
// leading component and therefore unbounded; seconds take exactly two digits
// and must be below 60.
var clockMinutesRegex = regexp.MustCompile(`^(\d+):(\d{2})(?:\.(\d+))?$`)

// unitRegex matches the unit-suffixed compound grammar: any combination of
// Nh, Nm, and Ns in descending unit order, optionally space-separated, with a
// fraction allowed only on the seconds component (e.g. "1h30m45s", "5m",
// "1h 30m", "2.5s"). All components are optional in the pattern; the parser
// requires at least one to be present.
var unitRegex = regexp.MustCompile(`^(?:(\d+)h)?(?:\s*(\d+)m)?(?:\s*(\d+(?:\.\d+)?)s)?$`)

// Private functions (alphabetical)

// combineClock converts parsed clock components into a duration. The frac
// argument is the raw digit run after the decimal point, or empty.
func combineClock(hours, minutes, seconds int, frac string) time.Duration {
	total := time.Duration(hours*3600+minutes*60+seconds) * time.Second
	return total + fractionDuration(frac)
}

// fractionDuration converts the digit run after a decimal point into a
// sub-second duration. An empty run contributes nothing.
func fractionDuration(frac string) time.Duration {
	if frac == "" {
		return 0
	}
	f, err := strconv.ParseFloat("0."+frac, 64)
	if err != nil {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}

// parseClock parses text committed to one of the clock grammars. Text
// containing a colon never falls through to the unit or bare grammars; a
// malformed or out-of-range clock value is a parse error. The unbounded
// leading component is capped so the combined duration cannot overflow.
func parseClock(text, original string) (time.Duration, error) {
	if m := clockHoursRegex.FindStringSubmatch(text); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil || hours > maxParseSeconds/3600 {
			return 0, &ParseError{Input: original}
		}
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		if minutes >= 60 || seconds >= 60 {
			return 0, &ParseError{Input: original}
		}
		return combineClock(hours, minutes, seconds, m[4]), nil
	}

	if m := clockMinutesRegex.FindStringSubmatch(text); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err != nil || minutes > maxParseSeconds/60 {
			return 0, &ParseError{Input: original}
		}
		seconds, _ := strconv.Atoi(m[2])
		if seconds >= 60 {
			return 0, &ParseError{Input: original}
		}
		return combineClock(0, minutes, seconds, m[3]), nil
	}

	return 0, &ParseError{Input: original}
}

// parseUnits parses the unit-suffixed compound grammar. It reports whether
// the text matched the grammar at all; a match with no components present is
// treated as no match so the bare-seconds grammar gets its turn. Components
// too large to represent as a duration are likewise treated as no match, and
// the caller reports the text as unparseable.
func parseUnits(text string) (time.Duration, bool) {
	m := unitRegex.FindStringSubmatch(text)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return 0, false
	}

	var total time.Duration
	if m[1] != "" {
		hours, err := strconv.Atoi(m[1])
		if err != nil || hours > maxParseSeconds/3600 {
			return 0, false
		}
		total += time.Duration(hours) * time.Hour
	}
	if m[2] != "" {
		minutes, err := strconv.Atoi(m[2])
		if err != nil || minutes > maxParseSeconds/60 {
			return 0, false
		}
		total += time.Duration(minutes) * time.Minute
	}
	if m[3] != "" {
		seconds, err := strconv.ParseFloat(m[3], 64)
		if err != nil || seconds > maxParseSeconds {
			return 0, false
		}
		total += time.Duration(seconds * float64(time.Second))
	}
	return total, true
}

// Public functions (alphabetical)

// ParseTime converts free-form timestamp text into a non-negative duration.
// Surrounding whitespace is trimmed before matching. Grammars are tried in a
// fixed precedence order, and the first matching grammar wins:
//
//  1. H:MM:SS[.fraction] clock form
//  2. M:SS[.fraction] clock form
//  3. unit-suffixed compound form (1h30m45s, 5m, 90s, 1h 30m 45s)
//  4. bare seconds (90, 45.5)
//
// Text matching none of the grammars, matching a clock grammar with a
// minutes or seconds component of 60 or more, or carrying any component too
// large to represent as a duration, fails with a *ParseError carrying the
// original text. The parser is pure and stateless: no locale, timezone, or
// global configuration affects its output, and it never produces a negative
// duration.
func ParseTime(text string) (time.Duration, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &ParseError{Input: text}
	}

	// A colon commits the text to the clock grammars; there is no fallthrough
	// past a partial clock match.
	if strings.Contains(trimmed, ":") {
		return parseClock(trimmed, text)
	}

	if d, ok := parseUnits(trimmed); ok {
		return d, nil
	}

	if bareSecondsRegex.MatchString(trimmed) {
		seconds, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || seconds > maxParseSeconds {
			return 0, &ParseError{Input: text}
		}
		return time.Duration(seconds * float64(time.Second)), nil
	}

	return 0, &ParseError{Input: text}
}
