// Package errors defines the sentinel errors shared across rescache
// and small helpers for wrapping them with context.
package errors

import "fmt"

// Common error types.
var (
	// Input validation errors.
	ErrNilLocation    = fmt.Errorf("resource location cannot be nil")
	ErrEmptyRoot      = fmt.Errorf("cache root directory cannot be empty")
	ErrInvalidVersion = fmt.Errorf("invalid resource version")

	// Resolution errors.
	ErrUnresolved = fmt.Errorf("resource could not be resolved to a cache file")

	// Listener errors.
	ErrUnknownListener = fmt.Errorf("no listener registered for identifier")

	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")

	// Cache errors.
	ErrCacheInfo      = fmt.Errorf("failed to get cache info")
	ErrCacheDirectory = fmt.Errorf("cache directory cannot be empty")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
