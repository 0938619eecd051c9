// Package config provides configuration management for rescache. It
// handles loading, validating and saving application settings from
// YAML files and provides sensible defaults when no file exists.
package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/rescache/pkg/errors"
	"github.com/glorpus-work/rescache/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// CacheDir is the root directory for derived cache paths.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// ProgressListener names a custom progress listener registered by
	// the embedding application; empty selects the default indicator.
	ProgressListener string `yaml:"progress_listener,omitempty"`

	// Output settings
	LogLevel     string `yaml:"log_level"`     // error, warn, info, debug
	OutputFormat string `yaml:"output_format"` // text, json
}

// ConfigFileName is the default configuration file name.
const ConfigFileName = "config.yaml"

var validLogLevels = []string{"error", "warn", "warning", "info", "debug"}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	cacheDir, err := fsutil.GetCacheDir()
	if err != nil {
		// Fallback to a relative cache dir if the user dirs are unknown
		cacheDir = "cache"
	}

	return &Config{
		Settings: Settings{
			CacheDir:     cacheDir,
			LogLevel:     "info",
			OutputFormat: "text",
		},
	}
}

// DefaultConfigPath returns the path of the config file inside the
// platform config directory.
func DefaultConfigPath() (string, error) {
	configDir, err := fsutil.GetConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// LoadConfig loads configuration from a file. A missing file yields
// the default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves configuration to a file, creating parent
// directories as needed.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return os.WriteFile(path, data, fsutil.FileModeSecure)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.Settings.LogLevel) {
		return errors.Wrapf(errors.ErrConfigValidation, "unknown log level %q", c.Settings.LogLevel)
	}
	if c.Settings.OutputFormat != "text" && c.Settings.OutputFormat != "json" {
		return errors.Wrapf(errors.ErrConfigValidation, "unknown output format %q", c.Settings.OutputFormat)
	}
	return nil
}

// applyDefaults fills unset fields with their default values.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Settings.CacheDir == "" {
		c.Settings.CacheDir = defaults.Settings.CacheDir
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
}
