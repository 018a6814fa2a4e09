package platform

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

// encodeUTF16Z encodes s as UTF-16 with a trailing NUL. Interior NULs are
// kept; readers stop at the first one.
func encodeUTF16Z(s string) []uint16 {
	units := utf16.Encode([]rune(s))
	return append(units, 0)
}

// utf16Bytes lays units out little-endian, the in-memory order on Windows.
func utf16Bytes(units []uint16) []byte {
	b := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[i*2:], u)
	}
	return b
}

// decodeUTF16Z decodes units up to the first NUL (or the end of the slice).
// It fails on unpaired surrogates instead of substituting U+FFFD.
func decodeUTF16Z(units []uint16) (string, bool) {
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}

	buf := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case utf16.IsSurrogate(rune(u)):
			if u >= 0xDC00 || i+1 >= len(units) {
				return "", false
			}
			r := utf16.DecodeRune(rune(u), rune(units[i+1]))
			if r == utf8.RuneError {
				return "", false
			}
			buf = utf8.AppendRune(buf, r)
			i++
		default:
			buf = utf8.AppendRune(buf, rune(u))
		}
	}
	return string(buf), true
}
