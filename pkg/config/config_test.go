package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/rescache/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.Settings.CacheDir)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.OutputFormat)
	assert.Empty(t, cfg.Settings.ProgressListener)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromReader(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		expectError error
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			yaml: `
settings:
  cache_dir: /var/cache/rescache
  progress_listener: fancy
  log_level: debug
  output_format: json
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/var/cache/rescache", cfg.Settings.CacheDir)
				assert.Equal(t, "fancy", cfg.Settings.ProgressListener)
				assert.Equal(t, "debug", cfg.Settings.LogLevel)
				assert.Equal(t, "json", cfg.Settings.OutputFormat)
			},
		},
		{
			name: "partial config gets defaults",
			yaml: `
settings:
  cache_dir: /var/cache/rescache
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/var/cache/rescache", cfg.Settings.CacheDir)
				assert.Equal(t, "info", cfg.Settings.LogLevel)
				assert.Equal(t, "text", cfg.Settings.OutputFormat)
			},
		},
		{
			name: "empty config is all defaults",
			yaml: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig().Settings, cfg.Settings)
			},
		},
		{
			name:        "invalid yaml",
			yaml:        "settings: [not a mapping",
			expectError: errors.ErrConfigParse,
		},
		{
			name: "invalid log level",
			yaml: `
settings:
  log_level: shout
`,
			expectError: errors.ErrConfigValidation,
		},
		{
			name: "invalid output format",
			yaml: `
settings:
  output_format: xml
`,
			expectError: errors.ErrConfigValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfigFromReader(strings.NewReader(tt.yaml))

			if tt.expectError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Settings, cfg.Settings)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "settings:\n  cache_dir: /srv/cache\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/cache", cfg.Settings.CacheDir)
	})
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.CacheDir = "/srv/cache"
	cfg.Settings.ProgressListener = "silent"
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Settings, loaded.Settings)
}

func TestSaveConfigEmptyPath(t *testing.T) {
	assert.ErrorIs(t, DefaultConfig().SaveConfig(""), errors.ErrEmptyConfigPath)
}
