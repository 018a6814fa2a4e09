//go:build !windows

package about

// nativeFallback has no native dialog to fall back to here.
func nativeFallback(title, text string, cause error) error {
	return cause
}
