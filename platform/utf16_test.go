package platform

import (
	"bytes"
	"testing"
)

func TestEncodeUTF16Z(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []uint16
	}{
		{"empty", "", []uint16{0}},
		{"ascii", "Ok", []uint16{'O', 'k', 0}},
		{"bmp", "é", []uint16{0x00E9, 0}},
		{"surrogate pair", "😀", []uint16{0xD83D, 0xDE00, 0}},
		{"interior NUL kept", "a\x00b", []uint16{'a', 0, 'b', 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeUTF16Z(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("encodeUTF16Z(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("encodeUTF16Z(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestUTF16BytesLittleEndian(t *testing.T) {
	got := utf16Bytes([]uint16{0x0041, 0xD83D, 0})
	want := []byte{0x41, 0x00, 0x3D, 0xD8, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("utf16Bytes = % x, want % x", got, want)
	}
}

func TestDecodeUTF16Z(t *testing.T) {
	tests := []struct {
		name   string
		in     []uint16
		want   string
		wantOK bool
	}{
		{"empty", nil, "", true},
		{"only terminator", []uint16{0}, "", true},
		{"stops at NUL", []uint16{'h', 'i', 0, 'x'}, "hi", true},
		{"no terminator", []uint16{'h', 'i'}, "hi", true},
		{"surrogate pair", []uint16{0xD83D, 0xDE00, 0}, "😀", true},
		{"replacement char is valid", []uint16{0xFFFD, 0}, "�", true},
		{"lone high surrogate", []uint16{0xD83D, 'a', 0}, "", false},
		{"high surrogate at end", []uint16{'a', 0xD83D}, "", false},
		{"lone low surrogate", []uint16{0xDE00, 0}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeUTF16Z(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("decodeUTF16Z(%v) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUTF16RoundTripStopsAtInteriorNUL(t *testing.T) {
	got, ok := decodeUTF16Z(encodeUTF16Z("network\x00hidden"))
	if !ok || got != "network" {
		t.Errorf("round trip = (%q, %v), want (\"network\", true)", got, ok)
	}
}
