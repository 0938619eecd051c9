// Package cli implements the rescache commands. It is an external
// caller of the core packages: nothing in here is required to embed
// the library.
package cli

import (
	"github.com/glorpus-work/rescache/internal/logger"
	"github.com/glorpus-work/rescache/pkg/config"
)

// Global CLI flag bindings, set by the root command.
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
)

// loadConfig loads the configuration addressed by the global flags and
// initializes the process logger from it.
func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	initLogger(cfg)
	return cfg, nil
}

func initLogger(cfg *config.Config) {
	level := cfg.Settings.LogLevel
	if Verbose != nil && *Verbose {
		level = "debug"
	}

	format := cfg.Settings.OutputFormat
	if OutputFormat != nil && *OutputFormat != "" {
		format = *OutputFormat
	}

	if format == "json" {
		logger.InitLogger(level, logger.FormatJSON)
	} else {
		logger.InitLogger(level, logger.FormatText)
	}
}
