//go:build !windows && !linux && !darwin

package platform

import (
	"os"
	"path/filepath"
)

func UserConfigPath() (string, error) {
	return os.UserConfigDir()
}

func UserCachePath() (string, error) {
	return os.UserCacheDir()
}

func UserLogsPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}
