//go:build windows

package platform

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// UserConfigPath returns the roaming app data folder.
// Example: C:\Users\<user>\AppData\Roaming
func UserConfigPath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, 0)
}

// UserCachePath returns the local app data folder.
// Example: C:\Users\<user>\AppData\Local
func UserCachePath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0)
}

// UserLogsPath returns the folder that holds per-application log folders.
// Example: C:\Users\<user>\AppData\Local\Logs
func UserLogsPath() (string, error) {
	local, err := UserCachePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(local, "Logs"), nil
}
