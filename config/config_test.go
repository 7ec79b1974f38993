package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite defines a test suite for configuration loading and saving.
type ConfigTestSuite struct {
	suite.Suite
	tempDir string // Temporary directory for test files
}

// SetupSuite prepares the test environment by creating a temporary directory.
func (s *ConfigTestSuite) SetupSuite() {
	tempDir, err := os.MkdirTemp("", "cliphound-config-test")
	require.NoError(s.T(), err)
	s.tempDir = tempDir
}

// TearDownSuite cleans up the test environment by removing the temporary directory.
func (s *ConfigTestSuite) TearDownSuite() {
	os.RemoveAll(s.tempDir)
}

// TestLoadMissingFile tests that a missing configuration file yields the
// defaults rather than an error.
func (s *ConfigTestSuite) TestLoadMissingFile() {
	cfg, err := Load(filepath.Join(s.tempDir, "does-not-exist.yaml"))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), Default(), cfg)
	assert.Equal(s.T(), "downloads", cfg.OutputDir)
	assert.True(s.T(), cfg.AudioFallback)
}

// TestSaveAndLoad tests a full round trip through the YAML file.
func (s *ConfigTestSuite) TestSaveAndLoad() {
	path := filepath.Join(s.tempDir, "config.yaml")
	original := &Config{
		OutputDir:     "/media/clips",
		FFmpegPath:    "/opt/ffmpeg/bin/ffmpeg",
		AudioFallback: true,
	}

	require.NoError(s.T(), Save(original, path))

	loaded, err := Load(path)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), original, loaded)
}

// TestLoadPartialFile tests that unspecified fields fall back to defaults.
func (s *ConfigTestSuite) TestLoadPartialFile() {
	path := filepath.Join(s.tempDir, "partial.yaml")
	require.NoError(s.T(), os.WriteFile(path, []byte("ffmpeg_path: /usr/bin/ffmpeg\n"), 0644))

	cfg, err := Load(path)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "/usr/bin/ffmpeg", cfg.FFmpegPath)
	assert.Equal(s.T(), "downloads", cfg.OutputDir, "missing output_dir falls back to default")
}

// TestLoadInvalidYAML tests that malformed files are reported.
func (s *ConfigTestSuite) TestLoadInvalidYAML() {
	path := filepath.Join(s.tempDir, "broken.yaml")
	require.NoError(s.T(), os.WriteFile(path, []byte("output_dir: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(s.T(), err)
}

// TestConfigSuite runs the configuration test suite.
func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
