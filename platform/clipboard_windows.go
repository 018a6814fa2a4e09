//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard            = user32.NewProc("OpenClipboard")
	procCloseClipboard           = user32.NewProc("CloseClipboard")
	procEmptyClipboard           = user32.NewProc("EmptyClipboard")
	procGetClipboardData         = user32.NewProc("GetClipboardData")
	procSetClipboardData         = user32.NewProc("SetClipboardData")
	procRegisterClipboardFormatW = user32.NewProc("RegisterClipboardFormatW")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
)

const gmemMoveable = 0x0002

func newClipboard(ClipboardOptions) Clipboard {
	return &win32Clipboard{api: systemAPI()}
}

func systemAPI() win32API {
	return win32API{
		open: func() error {
			if r, _, err := procOpenClipboard.Call(0); r == 0 {
				return err
			}
			return nil
		},
		close: func() {
			procCloseClipboard.Call()
		},
		empty: func() error {
			if r, _, err := procEmptyClipboard.Call(); r == 0 {
				return err
			}
			return nil
		},
		getData: func(format uint32) uintptr {
			h, _, _ := procGetClipboardData.Call(uintptr(format))
			return h
		},
		setData: func(format uint32, h uintptr) error {
			if r, _, err := procSetClipboardData.Call(uintptr(format), h); r == 0 {
				return fmt.Errorf("SetClipboardData failed: %w", err)
			}
			return nil
		},
		register: registerFormat,
		alloc: func(size int) (uintptr, error) {
			h, _, err := procGlobalAlloc.Call(gmemMoveable, uintptr(size))
			if h == 0 {
				return 0, fmt.Errorf("GlobalAlloc failed: %w", err)
			}
			return h, nil
		},
		free: func(h uintptr) {
			procGlobalFree.Call(h)
		},
		lock: func(h uintptr) ([]byte, error) {
			ptr, _, err := procGlobalLock.Call(h)
			if ptr == 0 {
				return nil, fmt.Errorf("GlobalLock failed: %w", err)
			}
			size, _, _ := procGlobalSize.Call(h)
			return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size), nil //nolint:govet // ptr is valid from GlobalLock
		},
		unlock: func(h uintptr) {
			procGlobalUnlock.Call(h)
		},
	}
}

func registerFormat(name string) (uint32, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	r, _, err := procRegisterClipboardFormatW.Call(uintptr(unsafe.Pointer(p)))
	if r == 0 {
		return 0, fmt.Errorf("RegisterClipboardFormat failed: %w", err)
	}
	return uint32(r), nil
}
