//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	productTypeDomainController = 2
	productTypeServer           = 3
)

type osVersionInfoEx struct {
	OSVersionInfoSize uint32
	MajorVersion      uint32
	MinorVersion      uint32
	BuildNumber       uint32
	PlatformId        uint32
	CSDVersion        [128]uint16
	ServicePackMajor  uint16
	ServicePackMinor  uint16
	SuiteMask         uint16
	ProductType       byte
	Reserved          byte
}

var procRtlGetVersion = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")

// rtlGetVersion reports the real OS version; GetVersionEx lies to
// unmanifested binaries.
func rtlGetVersion() osVersionInfoEx {
	var info osVersionInfoEx
	info.OSVersionInfoSize = uint32(unsafe.Sizeof(info))
	procRtlGetVersion.Call(uintptr(unsafe.Pointer(&info))) //nolint:errcheck
	return info
}

// OSVersion returns a human-readable OS version, e.g. "Windows 10.0 (Build 19045)".
func OSVersion() string {
	info := rtlGetVersion()
	s := fmt.Sprintf("Windows %d.%d (Build %d)", info.MajorVersion, info.MinorVersion, info.BuildNumber)
	if isServer(info) {
		s += " Server"
	}
	return s
}

func isServer(info osVersionInfoEx) bool {
	return info.ProductType == productTypeServer || info.ProductType == productTypeDomainController
}

// WebViewVersionError means the OS is too old for the WebView2 runtime.
type WebViewVersionError struct {
	IsServer bool
	Current  string
}

func (e *WebViewVersionError) Error() string {
	if e.IsServer {
		return "Windows Server 2016 or later required, running " + e.Current
	}
	return "Windows 10 version 1709 or later required, running " + e.Current
}

// CheckWebViewSupport reports whether the OS can host the web view the
// About window is drawn in: Windows 10 1709 (build 16299) or Windows
// Server 2016 (build 14393).
func CheckWebViewSupport() error {
	info := rtlGetVersion()
	server := isServer(info)

	minBuild := uint32(16299)
	if server {
		minBuild = 14393
	}

	if info.MajorVersion > 10 || (info.MajorVersion == 10 && info.BuildNumber >= minBuild) {
		return nil
	}
	return &WebViewVersionError{IsServer: server, Current: OSVersion()}
}
