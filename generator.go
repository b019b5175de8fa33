package hero

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/alnah/go-hero/internal/assets"
	"github.com/alnah/go-hero/internal/fileutil"
)

// DefaultTimeout bounds PNG rendering when no timeout is set.
const DefaultTimeout = 30 * time.Second

// outputPerm is the mode of written banners.
const outputPerm = 0o644

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal settings for Generator.
type generatorConfig struct {
	assetPath string
	template  string // Inline template source, wins over assetPath
	png       bool
	timeout   time.Duration
}

// Generator reads a logo, builds the banner and writes it.
// Create with NewGenerator, call Generate, and Close when done.
type Generator struct {
	cfg        Config
	opts       generatorConfig
	tmpl       *template.Template
	custom     bool
	assetDir   string // Resolved custom template directory, if any
	rasterizer Rasterizer
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithAssetPath loads the banner template from dir/templates/hero.svg.tmpl,
// falling back to the embedded template when the file does not exist.
func WithAssetPath(dir string) Option {
	return func(g *Generator) {
		g.opts.assetPath = dir
	}
}

// WithTemplate uses content as the banner template source.
func WithTemplate(content string) Option {
	return func(g *Generator) {
		g.opts.template = content
	}
}

// WithPNG also renders the banner to PNG next to the SVG output.
func WithPNG(enabled bool) Option {
	return func(g *Generator) {
		g.opts.png = enabled
	}
}

// WithTimeout sets the PNG rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("hero: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.opts.timeout = d
	}
}

// WithRasterizer sets the PNG backend. Implies WithPNG(true).
func WithRasterizer(r Rasterizer) Option {
	return func(g *Generator) {
		g.rasterizer = r
		g.opts.png = true
	}
}

// NewGenerator creates a Generator. The config is validated and the
// template parsed up front so Generate only fails on I/O.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:  DefaultConfig(),
		opts: generatorConfig{timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if g.opts.png {
		if err := checkPNGPath(g.cfg.OutputPath); err != nil {
			return nil, err
		}
	}

	content, custom, err := g.loadTemplate()
	if err != nil {
		return nil, err
	}
	g.tmpl, err = ParseTemplate(content)
	if err != nil {
		return nil, err
	}
	g.custom = custom

	if g.opts.png && g.rasterizer == nil {
		g.rasterizer = NewRodRasterizer(g.opts.timeout)
	}

	return g, nil
}

// pngPath is where the raster copy of an SVG banner is written.
func pngPath(outputPath string) string {
	return fileutil.ReplaceExt(outputPath, ".png")
}

// checkPNGPath rejects output paths whose PNG sibling is the output itself.
// Compared case-insensitively: "hero.PNG" and "hero.png" collide on macOS
// and Windows.
func checkPNGPath(outputPath string) error {
	if strings.EqualFold(pngPath(outputPath), outputPath) {
		return fmt.Errorf("%w: %s (use an .svg output path with --png)", ErrPNGPathConflict, outputPath)
	}
	return nil
}

// loadTemplate resolves the template source: inline, then asset path,
// then embedded.
func (g *Generator) loadTemplate() (content string, custom bool, err error) {
	if g.opts.template != "" {
		return g.opts.template, true, nil
	}

	resolver, err := assets.NewAssetResolver(g.opts.assetPath)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	content, custom, err = resolver.LoadTemplateWithSource(assets.DefaultTemplateName)
	if err != nil {
		return "", false, fmt.Errorf("loading banner template: %w", err)
	}
	g.assetDir = resolver.BasePath()
	return content, custom, nil
}

// Config returns the configuration in use.
func (g *Generator) Config() Config {
	return g.cfg
}

// AssetDir returns the absolute custom template directory, or "" when
// no asset path was set or the template was given inline.
func (g *Generator) AssetDir() string {
	return g.assetDir
}

// Generate reads the logo, writes the banner and, when enabled, its PNG.
// The SVG is written before rasterization, so a PNG failure leaves it
// in place. The output directory must already exist.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.ReadFile(g.cfg.InputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadSource, g.cfg.InputPath, err)
	}

	frag := Extract(string(src))
	svg, err := Render(g.tmpl, newDocument(g.cfg, frag))
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(g.cfg.OutputPath, svg, outputPerm); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWriteOutput, g.cfg.OutputPath, err)
	}

	result := &Result{
		OutputPath: g.cfg.OutputPath,
		SVG:        svg,
		Fragments:  frag,
		Custom:     g.custom,
	}

	if !g.opts.png {
		return result, nil
	}

	png, err := g.rasterizer.Rasterize(ctx, svg, Width, Height)
	if err != nil {
		return result, fmt.Errorf("rendering PNG: %w", err)
	}

	pngOut := pngPath(g.cfg.OutputPath)
	if err := os.WriteFile(pngOut, png, outputPerm); err != nil {
		return result, fmt.Errorf("%w: %s: %w", ErrWriteOutput, pngOut, err)
	}
	result.PNGPath = pngOut

	return result, nil
}

// Close releases the browser used for PNG rendering, if any.
func (g *Generator) Close() error {
	if g.rasterizer != nil {
		return g.rasterizer.Close()
	}
	return nil
}

// Generate writes the banner for cfg with the embedded template.
func Generate(ctx context.Context, cfg Config) (*Result, error) {
	g, err := NewGenerator(WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	defer g.Close()
	return g.Generate(ctx)
}

// Build renders the banner for a logo held in memory, with the embedded
// template. Nothing is read or written.
func Build(src []byte, cfg Config) ([]byte, error) {
	content, err := assets.LoadDefaultTemplate()
	if err != nil {
		return nil, fmt.Errorf("loading banner template: %w", err)
	}
	tmpl, err := ParseTemplate(content)
	if err != nil {
		return nil, err
	}
	return Render(tmpl, newDocument(cfg, Extract(string(src))))
}
