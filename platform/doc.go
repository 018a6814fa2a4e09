// Package platform wraps the operating system services the desktop UI needs.
//
// # Clipboard
//
// Clipboard is the platform-neutral interface. NewClipboard returns the
// backend for the running system:
//
//   - Windows: the native clipboard API. Standard format names (CF_DIB,
//     CF_HDROP, ...) map to their fixed IDs, FormatText maps to
//     CF_UNICODETEXT and any other identifier is registered with the OS.
//   - macOS: pbcopy / pbpaste, text only.
//   - Linux: wl-clipboard, xclip or xsel with MIME targets, falling back to
//     atotto/clipboard for text.
//   - Everything else: atotto/clipboard, text only.
//
// Writes never stop at the first bad format:
//
//	err := platform.NewClipboard().PutFormats([]platform.Format{
//	    platform.TextFormat("9bee8941b5 my-network"),
//	    {Identifier: "ZeroTierNetworkID", Data: []byte("9bee8941b5")},
//	})
//	var fe *platform.FormatError
//	if errors.As(err, &fe) {
//	    log.Printf("format %s was skipped: %v", fe.Identifier, fe.Err)
//	}
//
// # Single Instance
//
// AcquireSingleInstance keeps a second About window from opening:
//
//	release, ok := platform.AcquireSingleInstance("ZeroTier.DesktopUI.About")
//	if !ok {
//	    return
//	}
//	defer release()
package platform
