//go:build linux

package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/crafted-tech/ztdesktop/internal/logging"

	atotto "github.com/atotto/clipboard"
)

// clipTool describes a clipboard command-line tool. Each invocation owns a
// single target, so only one format survives a write.
type clipTool struct {
	name      string
	copyCmd   string
	pasteCmd  string
	typed     bool // accepts a MIME target
	copyArgs  func(mime string) []string
	pasteArgs []string
}

var clipTools = map[string]clipTool{
	"wl-clipboard": {
		name:      "wl-clipboard",
		copyCmd:   "wl-copy",
		pasteCmd:  "wl-paste",
		typed:     true,
		copyArgs:  func(mime string) []string { return []string{"--type", mime} },
		pasteArgs: []string{"--no-newline", "--type", "text/plain"},
	},
	"xclip": {
		name:      "xclip",
		copyCmd:   "xclip",
		pasteCmd:  "xclip",
		typed:     true,
		copyArgs:  func(mime string) []string { return []string{"-selection", "clipboard", "-t", mime} },
		pasteArgs: []string{"-selection", "clipboard", "-o"},
	},
	"xsel": {
		name:      "xsel",
		copyCmd:   "xsel",
		pasteCmd:  "xsel",
		copyArgs:  func(string) []string { return []string{"--clipboard", "--input"} },
		pasteArgs: []string{"--clipboard", "--output"},
	},
}

type linuxClipboard struct {
	preferred string
	getenv    func(string) string
	lookPath  func(string) (string, error)
	run       func(name string, args []string, stdin io.Reader) ([]byte, error)
}

func newClipboard(o ClipboardOptions) Clipboard {
	return &linuxClipboard{
		preferred: o.LinuxTool,
		getenv:    os.Getenv,
		lookPath:  exec.LookPath,
		run:       runCommand,
	}
}

// runCommand runs a clipboard tool. For pastes the tool's stderr is added
// to the error so ReadText can tell an empty clipboard from a broken one.
// Copy tools fork a selection owner that keeps stderr open, so theirs is
// discarded.
func runCommand(name string, args []string, stdin io.Reader) ([]byte, error) {
	cmd := exec.Command(name, args...)
	if stdin != nil {
		cmd.Stdin = stdin
		return nil, cmd.Run()
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return out, fmt.Errorf("%w: %s", err, msg)
		}
	}
	return out, err
}

// emptyClipboardMessages are what wl-paste and xclip print when the
// clipboard holds nothing they can paste as text.
var emptyClipboardMessages = []string{
	"nothing is copied",
	"no selection",
	"no suitable type",
	"not available",
}

func isEmptyClipboard(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, m := range emptyClipboardMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// tool picks the first installed tool: the configured one, wl-clipboard on
// Wayland sessions, then xclip, xsel and wl-clipboard.
func (c *linuxClipboard) tool() (clipTool, bool) {
	var order []string
	if c.preferred != "" {
		order = append(order, c.preferred)
	}
	if c.getenv("WAYLAND_DISPLAY") != "" {
		order = append(order, "wl-clipboard")
	}
	order = append(order, "xclip", "xsel", "wl-clipboard")

	for _, name := range order {
		t, ok := clipTools[name]
		if !ok {
			continue
		}
		if _, err := c.lookPath(t.copyCmd); err == nil {
			return t, true
		}
	}
	return clipTool{}, false
}

func (c *linuxClipboard) WriteText(text string) error {
	t, ok := c.tool()
	if !ok {
		if err := atotto.WriteAll(text); err != nil {
			return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
		}
		return nil
	}
	return c.write(t, TextFormat(text))
}

func (c *linuxClipboard) write(t clipTool, f Format) error {
	mime, ok := mimeType(f.Identifier)
	if !ok || (!t.typed && !f.IsText()) {
		return ErrUnsupportedFormat
	}
	if _, err := c.run(t.copyCmd, t.copyArgs(mime), bytes.NewReader(f.Data)); err != nil {
		return fmt.Errorf("%s: %w", t.copyCmd, err)
	}
	return nil
}

func (c *linuxClipboard) ReadText() (string, error) {
	t, ok := c.tool()
	if !ok {
		text, err := atotto.ReadAll()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
		}
		if text == "" {
			return "", ErrNoText
		}
		return text, nil
	}

	out, err := c.run(t.pasteCmd, t.pasteArgs, nil)
	if err != nil {
		if isEmptyClipboard(err) {
			return "", fmt.Errorf("%w: %s: %v", ErrNoText, t.pasteCmd, err)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrClipboardUnavailable, t.pasteCmd, err)
	}
	if len(out) == 0 {
		return "", ErrNoText
	}
	return string(out), nil
}

func (c *linuxClipboard) PutFormats(formats []Format) error {
	if len(formats) == 0 {
		return c.WriteText("")
	}

	t, ok := c.tool()
	typed := ok && t.typed
	pick := pickFormat(formats, typed)

	var errs []error
	for i, f := range formats {
		var err error
		switch {
		case i != pick:
			err = ErrUnsupportedFormat
			if _, known := mimeType(f.Identifier); known && typed && pick >= 0 {
				err = fmt.Errorf("%w: %s holds a single format", ErrUnsupportedFormat, t.name)
			}
		case !ok:
			err = c.WriteText(string(f.Data))
		default:
			err = c.write(t, f)
		}
		if err != nil {
			logging.Warn().Str("format", f.Identifier).Err(err).Msg("skipping clipboard format")
			errs = append(errs, &FormatError{Identifier: f.Identifier, Err: err})
		}
	}
	return errors.Join(errs...)
}

// pickFormat returns the index of the format to write: text when present,
// otherwise the first MIME-typed one if the tool accepts targets.
func pickFormat(formats []Format, typed bool) int {
	for i, f := range formats {
		if f.IsText() {
			return i
		}
	}
	if !typed {
		return -1
	}
	for i, f := range formats {
		if _, ok := mimeType(f.Identifier); ok {
			return i
		}
	}
	return -1
}
