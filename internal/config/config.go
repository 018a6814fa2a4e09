// Package config loads the ztdesktop YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/crafted-tech/ztdesktop"
	"github.com/crafted-tech/ztdesktop/internal/errors"
	"github.com/crafted-tech/ztdesktop/platform"

	"gopkg.in/yaml.v3"
)

const (
	// EnvLogLevel overrides log_level from the config file.
	EnvLogLevel = "ZTDESKTOP_LOG_LEVEL"

	// AutoLogFile as log_file logs to DefaultLogFile.
	AutoLogFile = "auto"
)

// Config holds the complete configuration.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	LogFile   string          `yaml:"log_file,omitempty"` // path, "auto" or empty for console only
	About     AboutConfig     `yaml:"about"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
}

type AboutConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
}

type ClipboardConfig struct {
	// LinuxTool is "wl-clipboard", "xclip", "xsel" or empty for auto.
	LinuxTool string `yaml:"linux_tool,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		About: AboutConfig{
			Title:  "About ZeroTier UI",
			Width:  500,
			Height: 300,
			Theme:  "system",
		},
	}
}

// Load loads the configuration from path, or from the default location when
// path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}
		path = p
	}
	return loadFromPath(path)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := platform.UserConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "ztdesktop", "config.yaml"), nil
}

// DefaultLogFile returns the log file used for log_file: auto.
func DefaultLogFile() (string, error) {
	logsDir, err := platform.UserLogsPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(logsDir, "ztdesktop", "ztdesktop.log"), nil
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := Default()

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)

	if cfg.LogFile == AutoLogFile {
		logFile, err := DefaultLogFile()
		if err != nil {
			return nil, errors.ConfigError("failed to resolve the default log file", err)
		}
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.ConfigError("failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.ConfigError("failed to parse config file "+path, err)
	}

	return nil
}

func applyEnvironmentOverrides(cfg *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
}

// Validate checks the values a user can get wrong.
func (c *Config) Validate() error {
	if _, ok := ztdesktop.ParseTheme(c.About.Theme); !ok {
		return errors.ValidationError(fmt.Sprintf("about.theme %q is not one of system, dark, light", c.About.Theme))
	}
	if c.About.Width <= 0 || c.About.Height <= 0 {
		return errors.ValidationError(fmt.Sprintf("about window size %dx%d must be positive", c.About.Width, c.About.Height))
	}
	if c.Clipboard.LinuxTool != "" && !slices.Contains(platform.LinuxTools, c.Clipboard.LinuxTool) {
		return errors.ValidationError(fmt.Sprintf("clipboard.linux_tool %q is not one of %v", c.Clipboard.LinuxTool, platform.LinuxTools))
	}
	return nil
}

// Theme returns the parsed about.theme.
func (c *Config) Theme() ztdesktop.ThemeMode {
	mode, _ := ztdesktop.ParseTheme(c.About.Theme)
	return mode
}
