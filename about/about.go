// Package about shows the ZeroTier Desktop UI About window: a read-only
// text area with the product, license and credits, an Ok button and a
// Copy button.
package about

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/crafted-tech/ztdesktop"
	"github.com/crafted-tech/ztdesktop/internal/logging"
	"github.com/crafted-tech/ztdesktop/platform"
)

// InstanceName identifies the About window's single-instance lock.
const InstanceName = "ZeroTier.DesktopUI.About"

// ErrAlreadyOpen is returned by Run when another About window is showing.
var ErrAlreadyOpen = errors.New("about window is already open")

// Credit names a third-party project shipped with the product.
type Credit struct {
	Project string
	URL     string
	Authors string
	Note    string // optional, e.g. "Apache 2.0 license"
}

// Info is the content of the About window.
type Info struct {
	Product   string
	Copyright string
	License   string
	SourceURL string
	Credits   []Credit
}

// DefaultInfo returns the About content of the ZeroTier Desktop UI.
func DefaultInfo() Info {
	return Info{
		Product:   "ZeroTier Desktop UI",
		Copyright: "(c)2021-2022 ZeroTier, Inc.",
		License:   "Released under the terms of the Mozilla Public License V2.0 (MPL)",
		SourceURL: "https://github.com/zerotier/DesktopUI",
		Credits: []Credit{
			{Project: "webframe", URL: "https://github.com/crafted-tech/webframe", Authors: "Crafted Tech"},
			{Project: "cobra", URL: "https://github.com/spf13/cobra", Authors: "Steve Francia and the Cobra authors", Note: "Apache 2.0 license"},
			{Project: "zerolog", URL: "https://github.com/rs/zerolog", Authors: "Olivier Poitrey", Note: "MIT license"},
			{Project: "color", URL: "https://github.com/fatih/color", Authors: "Fatih Arslan", Note: "MIT license"},
			{Project: "clipboard", URL: "https://github.com/atotto/clipboard", Authors: "Ato Araki", Note: "BSD license"},
			{Project: "yaml", URL: "https://gopkg.in/yaml.v3", Authors: "Canonical Ltd.", Note: "MIT and Apache 2.0 licenses"},
			{Project: "x/sys", URL: "https://golang.org/x/sys", Authors: "The Go Authors", Note: "BSD license"},
		},
	}
}

// Text renders the About message shown in the text area.
func (i Info) Text() string {
	var b strings.Builder

	b.WriteString(i.Product + "\n\n")
	b.WriteString(i.Copyright + "\n")
	b.WriteString(i.License + "\n")
	b.WriteString("Source URL: " + i.SourceURL + "\n")

	if len(i.Credits) > 0 {
		b.WriteString("\nThe following additional open source code was used in this software:\n\n")
		for _, c := range i.Credits {
			source := c.URL
			if source == "" {
				source = c.Project
			}
			b.WriteString(" * " + source + " by " + c.Authors)
			if c.Note != "" {
				b.WriteString(" (" + c.Note + ")")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Config configures Run. Zero fields take their defaults.
type Config struct {
	Info      Info
	Title     string
	Width     int
	Height    int
	Theme     ztdesktop.ThemeMode
	Clipboard platform.Clipboard
}

func (c Config) withDefaults() Config {
	if c.Info.Product == "" {
		c.Info = DefaultInfo()
	}
	if c.Title == "" {
		c.Title = "About ZeroTier UI"
	}
	if c.Width <= 0 {
		c.Width = 500
	}
	if c.Height <= 0 {
		c.Height = 300
	}
	if c.Clipboard == nil {
		c.Clipboard = platform.NewClipboard()
	}
	return c
}

// presenter is the part of a ztdesktop.Window that Run drives.
type presenter interface {
	ShowText(title string, text ztdesktop.TextBlock, opts ...ztdesktop.PageOption) ztdesktop.Response
	Quit()
	Close()
}

var (
	acquireInstance = platform.AcquireSingleInstance
	openWindow      = func(cfg Config) (presenter, error) {
		w, err := ztdesktop.New(
			ztdesktop.WithTitle(cfg.Title),
			ztdesktop.WithPixelSize(cfg.Width, cfg.Height),
			ztdesktop.WithResizable(false),
			ztdesktop.WithTheme(cfg.Theme),
		)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	showFallback = nativeFallback
)

// IsOpen reports whether an About window is showing in this user session.
func IsOpen() bool {
	return platform.IsSingleInstanceRunning(InstanceName)
}

// Run shows the About window and blocks until the user dismisses it or ctx
// is done. Only one About window runs per user session; a second Run
// returns ErrAlreadyOpen.
func Run(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()

	release, ok := acquireInstance(InstanceName)
	if !ok {
		return ErrAlreadyOpen
	}
	defer release()

	text := cfg.Info.Text()

	w, err := openWindow(cfg)
	if err != nil {
		if ferr := showFallback(cfg.Title, text, err); ferr != nil {
			return fmt.Errorf("open about window: %w", ferr)
		}
		logging.Warn().Err(err).Msg("about window unavailable, used native dialog")
		return nil
	}
	defer w.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			w.Quit()
		case <-done:
		}
	}()

	copyBtn := ztdesktop.NewButton("Copy", "copy")
	copyBtn.Icon = ztdesktop.GetIcon("copy")

	resp := w.ShowText("", ztdesktop.TextBlock{Text: text},
		ztdesktop.WithAction(copyBtn, func() error {
			if err := cfg.Clipboard.WriteText(text); err != nil {
				logging.Warn().Err(err).Msg("copying about text failed")
				return err
			}
			return nil
		}),
	)

	if err := ctx.Err(); err != nil {
		return err
	}
	logging.Debug().Str("button", resp.Button).Msg("about window dismissed")
	return nil
}

// Dismissed reports whether err from Run is a normal end of the About
// window. ErrAlreadyOpen and a cancelled or expired context count as one.
func Dismissed(err error) bool {
	return err == nil ||
		errors.Is(err, ErrAlreadyOpen) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Main runs the About window until it is dismissed or the process is
// interrupted, then exits: status 0 when Dismissed, 1 on failure.
func Main(cfg Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := Run(ctx, cfg)
	stop()
	os.Exit(exitStatus(err))
}

func exitStatus(err error) int {
	if !Dismissed(err) {
		logging.Error().Err(err).Msg("about window failed")
		return 1
	}
	if errors.Is(err, ErrAlreadyOpen) {
		logging.Info().Msg("about window is already open")
	}
	return 0
}
