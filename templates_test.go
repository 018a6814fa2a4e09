package ztdesktop

import (
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	tests := []struct {
		name     string
		page     Page
		dark     bool
		contains []string
		excludes []string
	}{
		{
			name: "message is escaped",
			page: Page{Title: "A & B", Content: "<b>bold</b>"},
			contains: []string{
				`<h1 class="flow-title">A &amp; B</h1>`,
				`<p class="flow-message">&lt;b&gt;bold&lt;/b&gt;</p>`,
				`data-theme="light"`,
			},
			excludes: []string{"<b>bold</b>"},
		},
		{
			name: "text block is read-only",
			page: Page{Content: TextBlock{Text: "line 1\n<script>x</script>", Monospace: true}},
			dark: true,
			contains: []string{
				`<textarea class="flow-textarea monospace" readonly`,
				"line 1\n&lt;script&gt;x&lt;/script&gt;</textarea>",
				`data-theme="dark"`,
			},
			excludes: []string{"<script>x</script>"},
		},
		{
			name: "buttons and actions",
			page: Page{
				ButtonBar: SimpleOK(),
				Actions:   []Action{{Button: NewButton("Copy", "copy")}},
			},
			contains: []string{
				`class="btn btn-primary" data-kind="button" data-button="ok"`,
				`class="btn btn-default" data-kind="action" data-button="copy"`,
				`<div class="flow-footer">`,
			},
		},
		{
			name:     "no footer without buttons",
			page:     Page{Content: "plain"},
			excludes: []string{`<div class="flow-footer">`},
		},
		{
			name:     "named icon",
			page:     Page{Icon: "info"},
			contains: []string{`<div class="flow-icon icon-info"><svg`},
		},
		{
			name:     "unknown icon name is ignored",
			page:     Page{Icon: "bogus"},
			excludes: []string{`<div class="flow-icon`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderPage(tt.page, tt.dark, "", "")
			for _, s := range tt.contains {
				if !strings.Contains(html, s) {
					t.Errorf("renderPage() missing %q", s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(html, s) {
					t.Errorf("renderPage() should not contain %q", s)
				}
			}
		})
	}
}

func TestRenderPagePrimaryColor(t *testing.T) {
	html := renderPage(Page{}, false, "200 70% 50%", "200 70% 60%")

	if !strings.Contains(html, "--primary: 200 70% 50%;") {
		t.Error("missing light primary color override")
	}
	if !strings.Contains(html, `[data-theme="dark"] {`+"\n    --primary: 200 70% 60%;") {
		t.Error("missing dark primary color override")
	}
}

func TestRenderButton(t *testing.T) {
	tests := []struct {
		name string
		btn  *Button
		want []string
	}{
		{
			name: "disabled",
			btn:  &Button{Label: "Next", ID: "next"},
			want: []string{"btn-disabled", " disabled>"},
		},
		{
			name: "danger",
			btn:  &Button{Label: "Delete", ID: "del", Enabled: true, Style: ButtonDanger},
			want: []string{"btn-destructive"},
		},
		{
			name: "icon only uses label as title",
			btn:  &Button{Label: "Copy", ID: "copy", Enabled: true, Icon: "<svg/>", IconOnly: true},
			want: []string{`title="Copy"`, `<span class="btn-icon-wrap"><svg/></span></button>`},
		},
		{
			name: "escaped id",
			btn:  &Button{Label: "x", ID: `a"b`, Enabled: true},
			want: []string{`data-button="a&#34;b"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderButton(tt.btn, "button")
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("renderButton() = %q, missing %q", got, s)
				}
			}
		})
	}

	if got := renderButton(nil, "button"); got != "" {
		t.Errorf("renderButton(nil) = %q, want empty", got)
	}
}
