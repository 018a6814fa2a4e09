//go:build darwin

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/crafted-tech/ztdesktop/internal/logging"
)

// darwinClipboard shells out to pbcopy and pbpaste, which only carry text.
type darwinClipboard struct{}

func newClipboard(ClipboardOptions) Clipboard {
	return darwinClipboard{}
}

func (darwinClipboard) WriteText(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: pbcopy: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

func (darwinClipboard) ReadText() (string, error) {
	out, err := exec.Command("pbpaste").Output()
	if err != nil {
		return "", fmt.Errorf("%w: pbpaste: %v", ErrClipboardUnavailable, err)
	}
	if len(out) == 0 {
		return "", ErrNoText
	}
	return string(out), nil
}

func (c darwinClipboard) PutFormats(formats []Format) error {
	if len(formats) == 0 {
		return c.WriteText("")
	}

	var errs []error
	wrote := false
	for _, f := range formats {
		if !f.IsText() || wrote {
			err := &FormatError{Identifier: f.Identifier, Err: ErrUnsupportedFormat}
			logging.Warn().Str("format", f.Identifier).Err(err.Err).Msg("skipping clipboard format")
			errs = append(errs, err)
			continue
		}
		if err := c.WriteText(string(f.Data)); err != nil {
			errs = append(errs, &FormatError{Identifier: f.Identifier, Err: err})
			continue
		}
		wrote = true
	}
	return errors.Join(errs...)
}
