// Package config loads the optional YAML file that overrides banner defaults.
// Empty fields mean "keep the built-in value"; merging happens in the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-hero/internal/fileutil"
	"github.com/alnah/go-hero/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength  = 4096
	MaxTextLength  = 100 // Anything longer overflows a 1200-unit canvas at 80px
	MaxColorLength = 7   // "#rrggbb"
)

// appDir is the per-user config directory name under os.UserConfigDir.
const appDir = "go-hero"

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config mirrors the YAML file layout.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Text   TextConfig   `yaml:"text"`
	Colors ColorsConfig `yaml:"colors"`
	Assets AssetsConfig `yaml:"assets"`
}

// InputConfig locates the source logo.
type InputConfig struct {
	Path string `yaml:"path,omitempty"`
}

// OutputConfig controls where the banner goes.
type OutputConfig struct {
	Path    string `yaml:"path,omitempty"`
	PNG     bool   `yaml:"png,omitempty"`     // Also rasterize to <path>.png
	Timeout string `yaml:"timeout,omitempty"` // PNG render timeout, e.g. "45s"
}

// TextConfig overrides the banner text.
type TextConfig struct {
	Title    string `yaml:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty"`
}

// ColorsConfig overrides the palette. Hex only.
type ColorsConfig struct {
	Background string `yaml:"background,omitempty"`
	Brand      string `yaml:"brand,omitempty"`
	Text       string `yaml:"text,omitempty"`
}

// AssetsConfig points at a custom template directory.
type AssetsConfig struct {
	BasePath string `yaml:"basePath,omitempty"` // Empty = embedded templates
}

// Validate checks field lengths, colors and the timeout.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"text.title", c.Text.Title, MaxTextLength},
		{"text.subtitle", c.Text.Subtitle, MaxTextLength},
		{"colors.background", c.Colors.Background, MaxColorLength},
		{"colors.brand", c.Colors.Brand, MaxColorLength},
		{"colors.text", c.Colors.Text, MaxColorLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	for _, l := range lengths[5:] {
		if l.value != "" && !hexColorPattern.MatchString(l.value) {
			return fmt.Errorf("%w: %s %q (must be #rgb or #rrggbb)", ErrInvalidValue, l.field, l.value)
		}
	}

	if c.Output.Timeout != "" {
		d, err := time.ParseDuration(c.Output.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: output.timeout %q (must be a positive duration like 30s)", ErrInvalidValue, c.Output.Timeout)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as-is; otherwise it is
// searched in SearchPaths order. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// ./name.yaml, ./name.yml, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
