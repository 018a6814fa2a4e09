package platform

import (
	"fmt"
	"sort"
	"strings"
)

// cfUnicodeText is the Windows format ID of NUL-terminated UTF-16 text.
const cfUnicodeText = 13

// standardFormats maps the Windows predefined clipboard format names to their
// IDs. https://learn.microsoft.com/en-us/windows/win32/dataxchg/standard-clipboard-formats
var standardFormats = map[string]uint32{
	"CF_TEXT":            1,
	"CF_BITMAP":          2,
	"CF_METAFILEPICT":    3,
	"CF_SYLK":            4,
	"CF_DIF":             5,
	"CF_TIFF":            6,
	"CF_OEMTEXT":         7,
	"CF_DIB":             8,
	"CF_PALETTE":         9,
	"CF_PENDATA":         10,
	"CF_RIFF":            11,
	"CF_WAVE":            12,
	"CF_UNICODETEXT":     cfUnicodeText,
	"CF_ENHMETAFILE":     14,
	"CF_HDROP":           15,
	"CF_LOCALE":          16,
	"CF_DIBV5":           17,
	"CF_OWNERDISPLAY":    0x0080,
	"CF_DSPTEXT":         0x0081,
	"CF_DSPBITMAP":       0x0082,
	"CF_DSPMETAFILEPICT": 0x0083,
	"CF_DSPENHMETAFILE":  0x008E,
	"CF_PRIVATEFIRST":    0x0200,
	"CF_PRIVATELAST":     0x02FF,
	"CF_GDIOBJFIRST":     0x0300,
	"CF_GDIOBJLAST":      0x03FF,
}

// StandardFormat is a named Windows clipboard format.
type StandardFormat struct {
	Name string
	ID   uint32
}

// StandardFormatID returns the ID of a predefined Windows clipboard format.
func StandardFormatID(name string) (uint32, bool) {
	id, ok := standardFormats[name]
	return id, ok
}

// StandardFormats returns the predefined Windows formats ordered by ID.
func StandardFormats() []StandardFormat {
	out := make([]StandardFormat, 0, len(standardFormats))
	for name, id := range standardFormats {
		out = append(out, StandardFormat{Name: name, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// resolveFormatID turns an identifier into a Windows format ID: standard
// names first, then the text identifier, then register for everything else.
func resolveFormatID(identifier string, register func(string) (uint32, error)) (uint32, error) {
	if id, ok := standardFormats[identifier]; ok {
		return id, nil
	}
	if identifier == FormatText {
		return cfUnicodeText, nil
	}
	if identifier == "" {
		return 0, fmt.Errorf("empty format identifier")
	}
	if strings.ContainsRune(identifier, 0) {
		return 0, fmt.Errorf("NUL byte in format identifier %q", identifier)
	}
	return register(identifier)
}

// mimeType maps an identifier to the MIME target used by X11/Wayland tools.
func mimeType(identifier string) (string, bool) {
	switch {
	case identifier == FormatText:
		return "text/plain;charset=utf-8", true
	case strings.Contains(identifier, "/"):
		return identifier, true
	default:
		return "", false
	}
}
