//go:build linux || darwin

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// OSVersion returns the kernel name and release, e.g. "Linux 6.8.0".
func OSVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	return unix.ByteSliceToString(uts.Sysname[:]) + " " + unix.ByteSliceToString(uts.Release[:])
}

// CheckWebViewSupport always succeeds; the web view comes from the system
// toolkit here.
func CheckWebViewSupport() error {
	return nil
}
