//go:build !windows && !linux && !darwin

package platform

import (
	"errors"
	"fmt"

	"github.com/crafted-tech/ztdesktop/internal/logging"

	atotto "github.com/atotto/clipboard"
)

// textClipboard covers the BSDs and other systems through atotto/clipboard,
// which only carries text.
type textClipboard struct{}

func newClipboard(ClipboardOptions) Clipboard {
	return textClipboard{}
}

func (textClipboard) WriteText(text string) error {
	if atotto.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

func (textClipboard) ReadText() (string, error) {
	if atotto.Unsupported {
		return "", ErrClipboardUnavailable
	}
	text, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (c textClipboard) PutFormats(formats []Format) error {
	if len(formats) == 0 {
		return c.WriteText("")
	}

	var errs []error
	wrote := false
	for _, f := range formats {
		var err error
		if f.IsText() && !wrote {
			err = c.WriteText(string(f.Data))
			wrote = err == nil
		} else {
			err = ErrUnsupportedFormat
		}
		if err != nil {
			logging.Warn().Str("format", f.Identifier).Err(err).Msg("skipping clipboard format")
			errs = append(errs, &FormatError{Identifier: f.Identifier, Err: err})
		}
	}
	return errors.Join(errs...)
}
