package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/glorpus-work/rescache/pkg/platform"
)

const (
	// AppName is the name of the application used in paths
	AppName = "rescache"
)

// GetCacheDir returns the platform-specific cache directory for the application
// On Linux: ~/.cache/rescache/
// On macOS: ~/Library/Caches/rescache/
// On Windows: %LOCALAPPDATA%\rescache\cache\
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// GetConfigDir returns the platform-specific configuration directory
// On Linux: ~/.config/rescache/
// On macOS: ~/Library/Application Support/rescache/
// On Windows: %LOCALAPPDATA%\rescache\
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case platform.OSWindows:
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", errors.New("LOCALAPPDATA environment variable not set")
		}
		return filepath.Join(localAppData, AppName), nil

	case platform.OSDarwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppName), nil

	default: // Linux, BSD, etc.
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, AppName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}
}
