//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

func libraryDir(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", name), nil
}

// UserConfigPath returns ~/Library/Application Support.
func UserConfigPath() (string, error) {
	return libraryDir("Application Support")
}

// UserCachePath returns ~/Library/Caches.
func UserCachePath() (string, error) {
	return libraryDir("Caches")
}

// UserLogsPath returns ~/Library/Logs.
func UserLogsPath() (string, error) {
	return libraryDir("Logs")
}
