// Package paths resolves configuration and cache directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDir is the per-application subdirectory name used on every platform.
const appDir = "rift"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "RIFT_CONFIG_DIR"
	EnvCacheDir  = "RIFT_CACHE_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	userCacheDir  func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	userCacheDir:  os.UserCacheDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/rift (fallback ~/.config/rift)
// macOS:   ~/Library/Application Support/rift
// Windows: %APPDATA%/rift
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDir), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDir), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDir), nil
	}
}

// DefaultCacheDir returns the platform-specific default cache directory.
//
// Linux:   $XDG_CACHE_HOME/rift (fallback ~/.cache/rift)
// macOS:   ~/Library/Caches/rift
// Windows: %LocalAppData%/rift
func DefaultCacheDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, appDir), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".cache", appDir), nil
	default:
		dir, err := platformDir.userCacheDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDir), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > RIFT_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveCacheDir returns the cache directory following the precedence
// chain: flag > configYAMLValue > RIFT_CACHE_DIR env > DefaultCacheDir().
//
// configYAMLValue is the cache.dir value loaded from config.yaml, empty
// when the file does not set one.
func ResolveCacheDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvCacheDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultCacheDir()
}
