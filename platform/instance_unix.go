//go:build linux || darwin

package platform

import (
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"
)

func lockPath(name string) string {
	cacheDir, err := UserCachePath()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, name+".lock")
}

// AcquireSingleInstance tries to take an exclusive flock on <cache>/<name>.lock.
// Returns a release function and true if the lock was acquired.
// Returns nil and false if another instance already holds the lock.
func AcquireSingleInstance(name string) (release func(), ok bool) {
	path := lockPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, false
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, false
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		return nil, false
	}

	file.Truncate(0)
	file.WriteString(strconv.Itoa(os.Getpid()))

	// The file is left in place: unlinking it would let a process that
	// opened the old inode lock it while a newcomer locks a fresh file.
	return func() {
		file.Truncate(0)
		unix.Flock(int(file.Fd()), unix.LOCK_UN)
		file.Close()
	}, true
}

// IsSingleInstanceRunning reports whether another process holds the lock.
// It does not take the lock.
func IsSingleInstanceRunning(name string) bool {
	file, err := os.OpenFile(lockPath(name), os.O_RDONLY, 0)
	if err != nil {
		return false
	}
	defer file.Close()

	if err := unix.Flock(int(file.Fd()), unix.LOCK_SH|unix.LOCK_NB); err != nil {
		return true
	}
	unix.Flock(int(file.Fd()), unix.LOCK_UN)
	return false
}
