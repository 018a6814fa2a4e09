//go:build windows

package about

import (
	"github.com/crafted-tech/ztdesktop/internal/logging"
	"github.com/crafted-tech/ztdesktop/platform"

	"github.com/crafted-tech/webframe"
)

// nativeFallback shows the About text in a native message box when the
// WebView2 window could not be created.
func nativeFallback(title, text string, cause error) error {
	if err := platform.CheckWebViewSupport(); err != nil {
		logging.Warn().Err(err).Msg("this Windows version cannot host WebView2")
	} else if status := webframe.CheckWebView2Runtime(""); !status.Installed {
		logging.Warn().Err(cause).Msg("WebView2 runtime is not installed")
	}
	webframe.ShowInfoDialog(title, text)
	return nil
}
