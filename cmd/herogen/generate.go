package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	hero "github.com/alnah/go-hero"
	"github.com/alnah/go-hero/internal/config"
	"github.com/alnah/go-hero/internal/fileutil"
	"github.com/alnah/go-hero/internal/hints"
)

// settings is the fully merged configuration of one run.
type settings struct {
	cfg        hero.Config
	assetPath  string
	png        bool
	timeout    time.Duration
	configPath string // Name or path of the loaded config file, if any
}

// defaultSettings returns the built-in settings.
func defaultSettings() *settings {
	return &settings{
		cfg:     hero.DefaultConfig(),
		timeout: hero.DefaultTimeout,
	}
}

// resolveSettings merges defaults < config file < environment < flags.
func resolveSettings(flags *generateFlags, env *envConfig) (*settings, error) {
	s := defaultSettings()

	name := flags.common.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		fileCfg, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		applyFileConfig(fileCfg, s)
		s.configPath = name
	}

	applyEnvConfig(env, s)

	if err := mergeFlags(flags, s); err != nil {
		return nil, err
	}
	return s, nil
}

// applyFileConfig overlays non-empty config file values on s.
// The file's timeout was validated on load.
func applyFileConfig(c *config.Config, s *settings) {
	if c.Input.Path != "" {
		s.cfg.InputPath = c.Input.Path
	}
	if c.Output.Path != "" {
		s.cfg.OutputPath = c.Output.Path
	}
	if c.Output.PNG {
		s.png = true
	}
	if c.Output.Timeout != "" {
		if d, err := time.ParseDuration(c.Output.Timeout); err == nil {
			s.timeout = d
		}
	}
	if c.Text.Title != "" {
		s.cfg.Title = c.Text.Title
	}
	if c.Text.Subtitle != "" {
		s.cfg.Subtitle = c.Text.Subtitle
	}
	if c.Colors.Background != "" {
		s.cfg.BackgroundColor = c.Colors.Background
	}
	if c.Colors.Brand != "" {
		s.cfg.BrandColor = c.Colors.Brand
	}
	if c.Colors.Text != "" {
		s.cfg.TextColor = c.Colors.Text
	}
	if c.Assets.BasePath != "" {
		s.assetPath = c.Assets.BasePath
	}
}

// mergeFlags applies CLI flags on s. Flags always win.
func mergeFlags(flags *generateFlags, s *settings) error {
	if flags.paths.input != "" {
		s.cfg.InputPath = flags.paths.input
	}
	if flags.paths.output != "" {
		s.cfg.OutputPath = flags.paths.output
	}
	if flags.paths.assetPath != "" {
		s.assetPath = flags.paths.assetPath
	}
	if flags.text.titleSet {
		s.cfg.Title = flags.text.title
	}
	if flags.text.subtitleSet {
		s.cfg.Subtitle = flags.text.subtitle
	}
	if flags.png.enabled {
		s.png = true
	}
	if flags.png.timeout != "" {
		d, err := time.ParseDuration(flags.png.timeout)
		if err != nil {
			return fmt.Errorf("%w: %q (use a duration like 30s or 2m)", ErrInvalidTimeout, flags.png.timeout)
		}
		if d <= 0 {
			return fmt.Errorf("%w: %q must be positive", ErrInvalidTimeout, flags.png.timeout)
		}
		s.timeout = d
	}
	return nil
}

// runGenerate writes the banner and prints the result.
func runGenerate(ctx context.Context, flags *generateFlags, env *Environment) error {
	start := env.Now()
	warnUnknownEnvVars(env.Stderr)

	s, err := resolveSettings(flags, loadEnvConfig())
	if err != nil {
		return err
	}

	opts := []hero.Option{
		hero.WithConfig(s.cfg),
		hero.WithAssetPath(s.assetPath),
		hero.WithTimeout(s.timeout),
	}
	if s.png {
		if env.Rasterizer != nil {
			opts = append(opts, hero.WithRasterizer(env.Rasterizer))
		} else {
			opts = append(opts, hero.WithPNG(true))
		}
	}

	gen, err := hero.NewGenerator(opts...)
	if err != nil {
		return err
	}
	defer gen.Close()

	if flags.common.verbose {
		printSettings(env, s, gen.AssetDir())
	}

	res, err := gen.Generate(ctx)
	if res != nil && !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Generated %s\n", res.OutputPath)
	}
	if err != nil {
		return withHint(err, s)
	}

	if res.PNGPath != "" && !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Generated %s\n", res.PNGPath)
	}

	if flags.common.verbose {
		printStats(env, res, env.Now().Sub(start))
	}
	return nil
}

// withHint appends an actionable hint for common failures.
func withHint(err error, s *settings) error {
	switch {
	case errors.Is(err, hero.ErrReadSource) && errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w%s", err, hints.ForSourceNotFound(s.cfg.InputPath))
	case errors.Is(err, hero.ErrWriteOutput):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, hero.ErrPageLoad):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	case errors.Is(err, hero.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	}
	return err
}

// printSettings writes the merged settings to stderr.
func printSettings(env *Environment, s *settings, assetDir string) {
	if s.configPath != "" {
		fmt.Fprintf(env.Stderr, "Config: %s\n", s.configPath)
	}
	fmt.Fprintf(env.Stderr, "Input: %s\n", s.cfg.InputPath)
	fmt.Fprintf(env.Stderr, "Output: %s\n", s.cfg.OutputPath)
	if assetDir != "" {
		fmt.Fprintf(env.Stderr, "Assets: %s\n", assetDir)
	}
	if s.png {
		fmt.Fprintf(env.Stderr, "PNG: enabled (timeout %s)\n", s.timeout)
	}
}

// printStats writes extraction stats and timing to stderr.
func printStats(env *Environment, res *hero.Result, elapsed time.Duration) {
	source := "embedded"
	if res.Custom {
		source = "custom"
	}
	fmt.Fprintf(env.Stderr, "Template: %s\n", source)
	fmt.Fprintf(env.Stderr, "Style: %d bytes\n", len(res.Fragments.Style))
	fmt.Fprintf(env.Stderr, "Shapes: %d bytes\n", len(res.Fragments.Shapes))
	fmt.Fprintf(env.Stderr, "Banner: %d bytes\n", len(res.SVG))
	fmt.Fprintf(env.Stderr, "Done in %s\n", elapsed.Round(time.Millisecond))
}
