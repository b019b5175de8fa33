package hero

import (
	"fmt"
	"regexp"
)

// Canvas dimensions in SVG user units. Fixed: social previews are 1200x630.
const (
	Width  = 1200
	Height = 630
)

// Default brand values.
const (
	DefaultBackgroundColor = "#16161b"
	DefaultBrandColor      = "#0000ff"
	DefaultTextColor       = "#ffffff"
	DefaultFontFamily      = "Orbitron"
	DefaultTitle           = "Pinned Casts"
	DefaultSubtitle        = "Dynamic View"
)

// Default paths, relative to the working directory.
const (
	DefaultInputPath  = "public/logo.svg"
	DefaultOutputPath = "public/hero_gen.svg"
)

// Config holds the values interpolated into the banner.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	InputPath       string // Logo SVG to read
	OutputPath      string // Banner SVG to write (created or truncated)
	BackgroundColor string // Full-canvas rect fill
	BrandColor      string // Subtitle fill
	TextColor       string // Title fill
	Title           string
	Subtitle        string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		InputPath:       DefaultInputPath,
		OutputPath:      DefaultOutputPath,
		BackgroundColor: DefaultBackgroundColor,
		BrandColor:      DefaultBrandColor,
		TextColor:       DefaultTextColor,
		Title:           DefaultTitle,
		Subtitle:        DefaultSubtitle,
	}
}

// hexColorPattern matches #rgb and #rrggbb.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks paths and colors.
// Title and subtitle may be empty; the text elements are still emitted.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input", ErrEmptyPath)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output", ErrEmptyPath)
	}

	colors := []struct {
		field string
		value string
	}{
		{"background", c.BackgroundColor},
		{"brand", c.BrandColor},
		{"text", c.TextColor},
	}
	for _, col := range colors {
		if !hexColorPattern.MatchString(col.value) {
			return fmt.Errorf("%w: %s %q (must be #rgb or #rrggbb)", ErrInvalidColor, col.field, col.value)
		}
	}

	return nil
}

// LogoPlacement positions the logo shapes inside the canvas.
// The outer group translates to (X, Y) and scales; the inner group shifts
// by (OffsetX, OffsetY) to recenter the source viewBox.
type LogoPlacement struct {
	X       float64
	Y       float64
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// DefaultLogoPlacement centers a logo drawn in a "-50 -7 200 200" viewBox
// above the title.
func DefaultLogoPlacement() LogoPlacement {
	return LogoPlacement{
		X:       600,
		Y:       220,
		Scale:   1.2,
		OffsetX: -50,
		OffsetY: -50,
	}
}

// TextLine is a positioned text element.
type TextLine struct {
	X       int
	Y       int
	Content string
}

// Document is the data passed to the banner template.
type Document struct {
	Width           int
	Height          int
	BackgroundColor string
	BrandColor      string
	TextColor       string
	FontFamily      string
	Style           string // Extracted logo <style> body, verbatim
	Shapes          string // Extracted logo root content, verbatim
	Logo            LogoPlacement
	Title           TextLine
	Subtitle        TextLine
}

// newDocument combines config and extracted fragments.
func newDocument(cfg Config, frag Fragments) *Document {
	return &Document{
		Width:           Width,
		Height:          Height,
		BackgroundColor: cfg.BackgroundColor,
		BrandColor:      cfg.BrandColor,
		TextColor:       cfg.TextColor,
		FontFamily:      DefaultFontFamily,
		Style:           frag.Style,
		Shapes:          frag.Shapes,
		Logo:            DefaultLogoPlacement(),
		Title:           TextLine{X: Width / 2, Y: 480, Content: cfg.Title},
		Subtitle:        TextLine{X: Width / 2, Y: 560, Content: cfg.Subtitle},
	}
}

// Result describes the files written by a generation run.
type Result struct {
	OutputPath string
	SVG        []byte
	PNGPath    string // Empty when rasterization was not requested
	Fragments  Fragments
	Custom     bool // Template came from the custom asset directory
}
