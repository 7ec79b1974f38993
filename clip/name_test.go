package clip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// NameTestSuite defines a test suite for output name generation and time
// formatting.
type NameTestSuite struct {
	suite.Suite
}

// mustRange builds a validated range or fails the test.
func (s *NameTestSuite) mustRange(start, end time.Duration) *TimeRange {
	r, err := ValidateRange(start, end)
	require.NoError(s.T(), err)
	return r
}

// TestOutputName tests the {stem}_clip_{MM-SS}_to_{MM-SS}.mp4 contract.
func (s *NameTestSuite) TestOutputName() {
	testCases := []struct {
		name     string
		input    string
		start    time.Duration
		end      time.Duration
		expected string
	}{
		{
			name:     "basic",
			input:    "test_video.mp4",
			start:    90 * time.Second,
			end:      165 * time.Second,
			expected: "test_video_clip_01-30_to_02-45.mp4",
		},
		{
			name:     "extension_normalized_to_mp4",
			input:    "lecture.mkv",
			start:    125 * time.Second,
			end:      190 * time.Second,
			expected: "lecture_clip_02-05_to_03-10.mp4",
		},
		{
			name:     "no_extension",
			input:    "recording",
			start:    time.Second,
			end:      2 * time.Second,
			expected: "recording_clip_00-01_to_00-02.mp4",
		},
		{
			name:     "directory_stripped",
			input:    "/media/source/test_video.mp4",
			start:    90 * time.Second,
			end:      165 * time.Second,
			expected: "test_video_clip_01-30_to_02-45.mp4",
		},
		{
			name:     "hours_included_when_either_endpoint_reaches_an_hour",
			input:    "movie.mp4",
			start:    30 * time.Minute,
			end:      time.Hour + time.Minute + time.Second,
			expected: "movie_clip_00-30-00_to_01-01-01.mp4",
		},
		{
			name:     "minutes_stay_flat_below_an_hour",
			input:    "movie.mp4",
			start:    55 * time.Minute,
			end:      59 * time.Minute,
			expected: "movie_clip_55-00_to_59-00.mp4",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			name := OutputName(tc.input, s.mustRange(tc.start, tc.end))
			assert.Equal(s.T(), tc.expected, name)
		})
	}
}

// TestOutputNameFractionalCollapse tests the documented behavior that ranges
// differing only in sub-second fractions collapse to the same name.
func (s *NameTestSuite) TestOutputNameFractionalCollapse() {
	exact := s.mustRange(90*time.Second, 165*time.Second)
	fractional := s.mustRange(90*time.Second+300*time.Millisecond, 165*time.Second+900*time.Millisecond)

	assert.Equal(s.T(), OutputName("video.mp4", exact), OutputName("video.mp4", fractional))
}

// TestFormatTimeReadable tests the display formatting of durations.
func (s *NameTestSuite) TestFormatTimeReadable() {
	testCases := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{
			name:     "minutes_and_seconds",
			input:    150 * time.Second,
			expected: "02:30",
		},
		{
			name:     "hours_rollover",
			input:    3661 * time.Second,
			expected: "01:01:01",
		},
		{
			name:     "zero",
			input:    0,
			expected: "00:00",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			assert.Equal(s.T(), tc.expected, FormatTimeReadable(tc.input))
		})
	}
}

// TestNameSuite runs the name generation test suite.
func TestNameSuite(t *testing.T) {
	suite.Run(t, new(NameTestSuite))
}
