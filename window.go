package ztdesktop

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/crafted-tech/ztdesktop/internal/logging"

	"github.com/crafted-tech/webframe"
	"github.com/crafted-tech/webframe/types"
)

// frameOps are the webframe calls a Window makes. Tests replace them.
type frameOps struct {
	load      func(html string)
	show      func()
	run       func()
	quit      func()
	destroy   func()
	evalAsync func(script string)
}

// Window is a native window that shows one HTML page at a time and blocks
// until the user dismisses it.
type Window struct {
	ops        frameOps
	config     Config
	responseCh chan messageResponse
	darkMode   bool

	mu        sync.Mutex
	quitOnMsg bool // Whether to quit the event loop when a message is received
	actions   map[string]func() error
}

// messageResponse represents a message received from JavaScript.
type messageResponse struct {
	Type   string         `json:"type"`
	Button string         `json:"button"`
	Data   map[string]any `json:"data"`
}

// New creates a hidden window. The first Show* call makes it visible.
func New(opts ...Option) (*Window, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var w *Window

	resizable := cfg.Resizable == nil || *cfg.Resizable
	wv, err := webframe.New(types.Config{
		Title:       cfg.Title,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Resizable:   resizable,
		StartHidden: true,
		OnClose: func() {
			if w != nil {
				w.deliver(messageResponse{Type: "window_close", Button: string(Close)})
			}
		},
	})
	if err != nil {
		return nil, err
	}

	w = newWindow(cfg, frameOps{
		load:      func(html string) { wv.LoadHTML(html) },
		show:      func() { wv.Show() },
		run:       func() { wv.Run() },
		quit:      func() { wv.Quit() },
		destroy:   func() { wv.Destroy() },
		evalAsync: func(script string) { wv.EvaluateScriptAsync(script) },
	})

	switch {
	case cfg.Theme == nil, *cfg.Theme == ThemeSystem:
		w.darkMode = wv.IsDarkMode()
	case *cfg.Theme == ThemeDark:
		w.darkMode = true
	}
	logging.Debug().Str("theme", themeOf(cfg).String()).Bool("dark", w.darkMode).Msg("window created")

	wv.SetFrameAppearance(types.FrameAppearance{
		TitleBar:         wv.GetHeaderBarColor(),
		BackdropTitleBar: wv.GetBackdropHeaderBarColor(),
	})

	if cfg.Theme == nil || *cfg.Theme == ThemeSystem {
		wv.OnThemeChange(func(isDark bool) {
			w.mu.Lock()
			w.darkMode = isDark
			w.mu.Unlock()

			wv.SetFrameAppearance(types.FrameAppearance{
				TitleBar:         wv.GetHeaderBarColor(),
				BackdropTitleBar: wv.GetBackdropHeaderBarColor(),
			})
			w.ops.evalAsync(themeScript(isDark))
		})
	}

	wv.AddMessageHandler(w.handleMessage)

	return w, nil
}

func newWindow(cfg Config, ops frameOps) *Window {
	return &Window{
		ops:        ops,
		config:     cfg,
		responseCh: make(chan messageResponse, 1),
	}
}

func themeOf(cfg Config) ThemeMode {
	if cfg.Theme == nil {
		return ThemeSystem
	}
	return *cfg.Theme
}

func themeScript(dark bool) string {
	theme := "light"
	if dark {
		theme = "dark"
	}
	return `document.documentElement.setAttribute('data-theme', '` + theme + `')`
}

// Close releases the window's resources.
func (w *Window) Close() {
	if w.ops.destroy != nil {
		w.ops.destroy()
	}
}

// Quit ends the page currently shown, as if the user closed the window.
func (w *Window) Quit() {
	w.deliver(messageResponse{Type: "quit", Button: string(Close)})
}

func (w *Window) handleMessage(message string) {
	var resp messageResponse
	if err := json.Unmarshal([]byte(message), &resp); err != nil {
		logging.Debug().Err(err).Msg("dropping malformed page message")
		return
	}

	switch resp.Type {
	case "page_ready":
		return
	case "action":
		w.runAction(resp.Button)
		return
	}

	w.deliver(resp)
}

// runAction runs a page action on the UI thread and reports the outcome to
// the page without leaving it.
func (w *Window) runAction(id string) {
	w.mu.Lock()
	run, ok := w.actions[id]
	w.mu.Unlock()
	if !ok {
		logging.Debug().Str("action", id).Msg("no handler for page action")
		return
	}

	err := run()
	if err != nil {
		logging.Warn().Str("action", id).Err(err).Msg("page action failed")
	}

	icon := GetIcon("check")
	if err != nil {
		icon = GetIcon("error")
	}
	// EvaluateScriptAsync: the message handler runs on the UI thread.
	w.ops.evalAsync("window.flowActionDone(" + strconv.Quote(id) + ", " +
		strconv.FormatBool(err == nil) + ", " + strconv.Quote(icon) + ")")
}

// deliver hands a terminating message to ShowPage and stops the event loop.
func (w *Window) deliver(resp messageResponse) {
	w.mu.Lock()
	select {
	case w.responseCh <- resp:
	default:
		logging.Debug().Str("button", resp.Button).Msg("response already pending, dropping message")
	}
	shouldQuit := w.quitOnMsg
	w.mu.Unlock()
	if shouldQuit {
		w.ops.quit()
	}
}

// ShowPage displays a page and runs the event loop until the user clicks a
// non-action button or closes the window.
func (w *Window) ShowPage(page Page) Response {
	w.mu.Lock()
	// A close or quit that arrived between pages ends this one at once.
	// Stale clicks from an earlier page are dropped.
	select {
	case msg := <-w.responseCh:
		if msg.Type == "quit" || msg.Type == "window_close" {
			w.mu.Unlock()
			return Response{Button: msg.Button, Data: msg.Data}
		}
	default:
	}
	dark := w.darkMode
	w.actions = make(map[string]func() error, len(page.Actions))
	for _, a := range page.Actions {
		if a.Button != nil && a.Run != nil {
			w.actions[a.Button.ID] = a.Run
		}
	}
	w.quitOnMsg = true
	w.mu.Unlock()

	w.ops.load(renderPage(page, dark, w.config.PrimaryColorLight, w.config.PrimaryColorDark))
	w.ops.show()
	w.ops.run()

	w.mu.Lock()
	w.quitOnMsg = false
	w.actions = nil
	w.mu.Unlock()

	select {
	case msg := <-w.responseCh:
		return Response{Button: msg.Button, Data: msg.Data}
	default:
		// The loop ended without a message, e.g. the frame was destroyed.
		return Response{Button: string(Close)}
	}
}

// ShowMessage displays a paragraph of text. The default button bar is SimpleOK.
func (w *Window) ShowMessage(title, message string, opts ...PageOption) Response {
	return w.ShowPage(applyPageConfig(title, message, SimpleOK(), opts))
}

// ShowText displays text in a read-only, scrollable text area. The default
// button bar is SimpleOK.
func (w *Window) ShowText(title string, text TextBlock, opts ...PageOption) Response {
	return w.ShowPage(applyPageConfig(title, text, SimpleOK(), opts))
}
