package ztdesktop

import "strconv"

// ThemeMode specifies the color theme for the UI.
type ThemeMode int

const (
	ThemeSystem ThemeMode = iota // Auto-detect from OS (default)
	ThemeDark                    // Force dark mode
	ThemeLight                   // Force light mode
)

// ParseTheme maps "system", "dark" or "light" to a ThemeMode.
func ParseTheme(s string) (ThemeMode, bool) {
	switch s {
	case "", "system":
		return ThemeSystem, true
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	default:
		return ThemeSystem, false
	}
}

func (m ThemeMode) String() string {
	switch m {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "system"
	}
}

// Config holds the configuration for creating a new Window.
type Config struct {
	Title             string     // Window title
	Width             string     // Window width spec: "40em", "500", "80%"
	Height            string     // Window height spec: "30em", "300", "70%"
	Resizable         *bool      // nil or true = resizable, false = fixed size
	Theme             *ThemeMode // nil = system (auto-detect)
	PrimaryColorLight string     // HSL values for light mode, e.g., "217 91% 50%"
	PrimaryColorDark  string     // HSL values for dark mode, e.g., "217 91% 60%"
}

// Option is a function that configures a Window.
type Option func(*Config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithSize sets the window dimensions.
// Accepts dimension specs like "40em", "500", "500px", or "80%".
func WithSize(width, height string) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithPixelSize sets the window dimensions in pixels.
func WithPixelSize(width, height int) Option {
	return WithSize(strconv.Itoa(width), strconv.Itoa(height))
}

// WithResizable sets whether the window can be resized.
// If not called, the window is resizable.
func WithResizable(resizable bool) Option {
	return func(c *Config) {
		c.Resizable = &resizable
	}
}

// WithTheme sets the color theme mode.
func WithTheme(mode ThemeMode) Option {
	return func(c *Config) {
		c.Theme = &mode
	}
}

// WithPrimaryColor sets custom primary color for light and dark modes.
// Colors are HSL values without the hsl() wrapper, e.g., "200 70% 50%".
func WithPrimaryColor(light, dark string) Option {
	return func(c *Config) {
		c.PrimaryColorLight = light
		c.PrimaryColorDark = dark
	}
}

func defaultConfig() Config {
	return Config{
		Title:  "ZeroTier",
		Width:  "40em",
		Height: "30em",
	}
}
