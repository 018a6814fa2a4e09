//go:build linux

package platform

import (
	"errors"
	"io"
	"os/exec"
	"reflect"
	"testing"
)

type call struct {
	name  string
	args  []string
	stdin string
}

type fakeSystem struct {
	installed map[string]bool
	env       map[string]string
	output    []byte
	runErr    error
	calls     []call
}

func (s *fakeSystem) clipboard(preferred string) *linuxClipboard {
	return &linuxClipboard{
		preferred: preferred,
		getenv:    func(k string) string { return s.env[k] },
		lookPath: func(name string) (string, error) {
			if s.installed[name] {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		},
		run: func(name string, args []string, stdin io.Reader) ([]byte, error) {
			c := call{name: name, args: args}
			if stdin != nil {
				b, _ := io.ReadAll(stdin)
				c.stdin = string(b)
			}
			s.calls = append(s.calls, c)
			return s.output, s.runErr
		},
	}
}

func installed(names ...string) map[string]bool {
	m := make(map[string]bool)
	for _, n := range names {
		m[n] = true
	}
	return m
}

func TestLinuxToolSelection(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		installed map[string]bool
		env       map[string]string
		want      string
		wantOK    bool
	}{
		{"xclip before xsel", "", installed("xclip", "xsel", "wl-copy"), nil, "xclip", true},
		{"wayland session prefers wl-clipboard", "", installed("xclip", "wl-copy"), map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, "wl-clipboard", true},
		{"preferred tool wins", "xsel", installed("xclip", "xsel"), nil, "xsel", true},
		{"missing preferred falls through", "xsel", installed("xclip"), nil, "xclip", true},
		{"unknown preferred ignored", "pbcopy", installed("xsel"), nil, "xsel", true},
		{"wl-clipboard as last resort", "", installed("wl-copy"), nil, "wl-clipboard", true},
		{"nothing installed", "", installed(), nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeSystem{installed: tt.installed, env: tt.env}
			tool, ok := sys.clipboard(tt.preferred).tool()
			if ok != tt.wantOK || tool.name != tt.want {
				t.Errorf("tool() = (%q, %v), want (%q, %v)", tool.name, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLinuxWriteText(t *testing.T) {
	sys := &fakeSystem{installed: installed("xclip")}

	if err := sys.clipboard("").WriteText("9bee8941b5"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	want := []call{{
		name:  "xclip",
		args:  []string{"-selection", "clipboard", "-t", "text/plain;charset=utf-8"},
		stdin: "9bee8941b5",
	}}
	if !reflect.DeepEqual(sys.calls, want) {
		t.Errorf("calls = %+v, want %+v", sys.calls, want)
	}
}

func TestLinuxWriteTextToolFailure(t *testing.T) {
	sys := &fakeSystem{installed: installed("xsel"), runErr: errors.New("exit status 1")}

	if err := sys.clipboard("").WriteText("x"); err == nil {
		t.Fatal("WriteText() error = nil, want failure")
	}
}

func TestLinuxReadText(t *testing.T) {
	tests := []struct {
		name     string
		output   []byte
		runErr   error
		want     string
		wantErr  error
		wantArgs []string
	}{
		{
			name:     "text",
			output:   []byte("hello"),
			want:     "hello",
			wantArgs: []string{"--no-newline", "--type", "text/plain"},
		},
		{
			name:     "empty clipboard",
			output:   nil,
			wantErr:  ErrNoText,
			wantArgs: []string{"--no-newline", "--type", "text/plain"},
		},
		{
			name:     "tool reports nothing copied",
			runErr:   errors.New("exit status 1: Nothing is copied"),
			wantErr:  ErrNoText,
			wantArgs: []string{"--no-newline", "--type", "text/plain"},
		},
		{
			name:     "tool reports no text type",
			runErr:   errors.New("exit status 1: No suitable type of content copied"),
			wantErr:  ErrNoText,
			wantArgs: []string{"--no-newline", "--type", "text/plain"},
		},
		{
			name:     "tool cannot reach the display",
			runErr:   errors.New("exit status 1: Failed to connect to a Wayland server"),
			wantErr:  ErrClipboardUnavailable,
			wantArgs: []string{"--no-newline", "--type", "text/plain"},
		},
		{
			name:     "tool killed without a message",
			runErr:   errors.New("signal: killed"),
			wantErr:  ErrClipboardUnavailable,
			wantArgs: []string{"--no-newline", "--type", "text/plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeSystem{
				installed: installed("wl-copy"),
				output:    tt.output,
				runErr:    tt.runErr,
			}
			got, err := sys.clipboard("").ReadText()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil || got != tt.want {
				t.Errorf("ReadText() = (%q, %v), want (%q, nil)", got, err, tt.want)
			}
			if len(sys.calls) != 1 || sys.calls[0].name != "wl-paste" || !reflect.DeepEqual(sys.calls[0].args, tt.wantArgs) {
				t.Errorf("calls = %+v", sys.calls)
			}
		})
	}
}

func TestLinuxPutFormats(t *testing.T) {
	tests := []struct {
		name        string
		installed   map[string]bool
		formats     []Format
		wantCalls   []call
		wantSkipped []string
	}{
		{
			name:      "text wins over svg",
			installed: installed("xclip"),
			formats: []Format{
				{Identifier: FormatSVG, Data: []byte("<svg/>")},
				TextFormat("hi"),
			},
			wantCalls: []call{{
				name:  "xclip",
				args:  []string{"-selection", "clipboard", "-t", "text/plain;charset=utf-8"},
				stdin: "hi",
			}},
			wantSkipped: []string{FormatSVG},
		},
		{
			name:      "first typed format without text",
			installed: installed("wl-copy"),
			formats: []Format{
				{Identifier: "CF_DIB", Data: []byte{1, 2}},
				{Identifier: FormatSVG, Data: []byte("<svg/>")},
				{Identifier: "text/html", Data: []byte("<b>hi</b>")},
			},
			wantCalls: []call{{
				name:  "wl-copy",
				args:  []string{"--type", "image/svg+xml"},
				stdin: "<svg/>",
			}},
			wantSkipped: []string{"CF_DIB", "text/html"},
		},
		{
			name:        "xsel carries text only",
			installed:   installed("xsel"),
			formats:     []Format{{Identifier: FormatSVG, Data: []byte("<svg/>")}},
			wantSkipped: []string{FormatSVG},
		},
		{
			name:      "empty list clears the clipboard",
			installed: installed("xsel"),
			formats:   nil,
			wantCalls: []call{{
				name: "xsel",
				args: []string{"--clipboard", "--input"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeSystem{installed: tt.installed}
			err := sys.clipboard("").PutFormats(tt.formats)

			if !reflect.DeepEqual(sys.calls, tt.wantCalls) {
				t.Errorf("calls = %+v, want %+v", sys.calls, tt.wantCalls)
			}

			var skipped []string
			for _, e := range unwrapJoined(err) {
				var fe *FormatError
				if !errors.As(e, &fe) {
					t.Fatalf("error %v is not a *FormatError", e)
				}
				if !errors.Is(fe, ErrUnsupportedFormat) {
					t.Errorf("skipped %s with %v, want ErrUnsupportedFormat", fe.Identifier, fe.Err)
				}
				skipped = append(skipped, fe.Identifier)
			}
			if !reflect.DeepEqual(skipped, tt.wantSkipped) {
				t.Errorf("skipped = %v, want %v", skipped, tt.wantSkipped)
			}
		})
	}
}

func TestIsEmptyClipboard(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"exit status 1: Nothing is copied", true},
		{"exit status 1: No selection", true},
		{"exit status 1: Error: target STRING not available", true},
		{"exit status 1: Error: Can't open display: (null)", false},
		{"exit status 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := isEmptyClipboard(errors.New(tt.msg)); got != tt.want {
				t.Errorf("isEmptyClipboard(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestRunCommandReportsStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	_, err := runCommand("sh", []string{"-c", "echo 'Nothing is copied' >&2; exit 1"}, nil)
	if err == nil {
		t.Fatal("runCommand() error = nil, want exit failure")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("runCommand() error %v does not wrap *exec.ExitError", err)
	}
	if !isEmptyClipboard(err) {
		t.Errorf("runCommand() error %q lost the tool's message", err)
	}

	out, err := runCommand("sh", []string{"-c", "printf hello"}, nil)
	if err != nil || string(out) != "hello" {
		t.Errorf("runCommand() = (%q, %v), want (\"hello\", nil)", out, err)
	}
}
