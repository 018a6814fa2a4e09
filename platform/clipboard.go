package platform

import (
	"errors"
	"fmt"
)

// Well-known format identifiers. Anything else is passed to the OS as-is:
// a standard name (CF_DIB), a MIME type (text/html) or a custom name that
// gets registered on Windows.
const (
	FormatText = "public.utf8-plain-text"
	FormatSVG  = "image/svg+xml"
	FormatPDF  = "com.adobe.pdf"
)

var (
	// ErrClipboardUnavailable means the clipboard could not be opened, or no
	// clipboard tool exists on this system.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrNoText means the clipboard holds no Unicode text.
	ErrNoText = errors.New("clipboard contains no text")

	// ErrInvalidText means the clipboard text was not valid UTF-16.
	ErrInvalidText = errors.New("clipboard text is not valid UTF-16")

	// ErrUnsupportedFormat means the backend cannot store the format.
	ErrUnsupportedFormat = errors.New("clipboard format not supported on this platform")
)

// Format is a clipboard payload tagged with its format identifier.
type Format struct {
	Identifier string
	Data       []byte
}

// TextFormat returns a text payload.
func TextFormat(text string) Format {
	return Format{Identifier: FormatText, Data: []byte(text)}
}

// IsText reports whether the payload is UTF-8 text.
func (f Format) IsText() bool {
	return f.Identifier == FormatText
}

// FormatError records a format that could not be written.
type FormatError struct {
	Identifier string
	Err        error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("clipboard format %q: %v", e.Identifier, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Clipboard reads and writes the system clipboard.
//
// PutFormats replaces the clipboard contents. Formats that fail are logged and
// skipped; the returned error joins one *FormatError per skipped format.
type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
	PutFormats(formats []Format) error
}

// ClipboardOptions configures NewClipboard.
type ClipboardOptions struct {
	// LinuxTool is "wl-clipboard", "xclip", "xsel" or empty for auto-detect.
	// Ignored on other systems.
	LinuxTool string
}

// ClipboardOption is a function that configures a Clipboard.
type ClipboardOption func(*ClipboardOptions)

// WithLinuxTool selects the clipboard command-line tool on Linux.
func WithLinuxTool(name string) ClipboardOption {
	return func(o *ClipboardOptions) {
		o.LinuxTool = name
	}
}

// LinuxTools lists the tool names accepted by WithLinuxTool.
var LinuxTools = []string{"wl-clipboard", "xclip", "xsel"}

// NewClipboard returns the clipboard backend for the running system.
func NewClipboard(opts ...ClipboardOption) Clipboard {
	var o ClipboardOptions
	for _, opt := range opts {
		opt(&o)
	}
	return newClipboard(o)
}

// CopyToClipboard copies the given text to the system clipboard.
func CopyToClipboard(text string) error {
	return NewClipboard().WriteText(text)
}

// ReadClipboard returns the text currently on the system clipboard.
func ReadClipboard() (string, error) {
	return NewClipboard().ReadText()
}
