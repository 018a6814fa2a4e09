package ztdesktop

import "testing"

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in     string
		want   ThemeMode
		wantOK bool
	}{
		{"", ThemeSystem, true},
		{"system", ThemeSystem, true},
		{"dark", ThemeDark, true},
		{"light", ThemeLight, true},
		{"Dark", ThemeSystem, false},
		{"blue", ThemeSystem, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTheme(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseTheme(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := defaultConfig()
	for _, opt := range []Option{
		WithTitle("About"),
		WithPixelSize(500, 300),
		WithResizable(false),
		WithTheme(ThemeDark),
		WithPrimaryColor("1 2% 3%", "4 5% 6%"),
	} {
		opt(&cfg)
	}

	if cfg.Title != "About" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Width != "500" || cfg.Height != "300" {
		t.Errorf("size = %sx%s, want 500x300", cfg.Width, cfg.Height)
	}
	if cfg.Resizable == nil || *cfg.Resizable {
		t.Error("Resizable should be false")
	}
	if themeOf(cfg) != ThemeDark {
		t.Errorf("theme = %v, want dark", themeOf(cfg))
	}
	if cfg.PrimaryColorLight != "1 2% 3%" || cfg.PrimaryColorDark != "4 5% 6%" {
		t.Error("primary colors not set")
	}
	if themeOf(defaultConfig()) != ThemeSystem {
		t.Error("default theme should be system")
	}
}
