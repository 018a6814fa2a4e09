//go:build !windows && !linux && !darwin

package platform

// AcquireSingleInstance always succeeds on systems without a lock primitive.
func AcquireSingleInstance(name string) (release func(), ok bool) {
	return func() {}, true
}

// IsSingleInstanceRunning always reports false on systems without a lock primitive.
func IsSingleInstanceRunning(name string) bool {
	return false
}
