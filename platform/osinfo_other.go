//go:build !windows && !linux && !darwin

package platform

import "runtime"

func OSVersion() string {
	return runtime.GOOS
}

func CheckWebViewSupport() error {
	return nil
}
