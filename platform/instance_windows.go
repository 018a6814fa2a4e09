//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// mutexName scopes the lock to the current session so each logged-in user
// gets their own window.
func mutexName(name string) (*uint16, error) {
	return windows.UTF16PtrFromString(`Local\` + name)
}

// AcquireSingleInstance tries to acquire a named mutex to prevent multiple instances.
// Returns a release function and true if the lock was acquired.
// Returns nil and false if another instance already holds the lock.
func AcquireSingleInstance(name string) (release func(), ok bool) {
	p, err := mutexName(name)
	if err != nil {
		return func() {}, true
	}

	handle, err := windows.CreateMutex(nil, false, p)
	if err == windows.ERROR_ALREADY_EXISTS {
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		return nil, false
	}
	if err != nil {
		// Fail open: a broken mutex must not block the window.
		return func() {}, true
	}

	return func() { windows.CloseHandle(handle) }, true
}

// IsSingleInstanceRunning reports whether another process holds the mutex.
// It does not take the lock.
func IsSingleInstanceRunning(name string) bool {
	p, err := mutexName(name)
	if err != nil {
		return false
	}

	handle, err := windows.OpenMutex(windows.SYNCHRONIZE, false, p)
	if err != nil {
		return false
	}
	windows.CloseHandle(handle)
	return true
}
