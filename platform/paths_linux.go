//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

// xdgDir returns $env, or ~/<fallback> when it is unset or relative.
func xdgDir(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// UserConfigPath returns $XDG_CONFIG_HOME or ~/.config.
func UserConfigPath() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// UserCachePath returns $XDG_CACHE_HOME or ~/.cache.
func UserCachePath() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

// UserLogsPath returns $XDG_STATE_HOME or ~/.local/state, where logs belong
// under the XDG base directory layout.
func UserLogsPath() (string, error) {
	return xdgDir("XDG_STATE_HOME", ".local", "state")
}
