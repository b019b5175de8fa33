// Package hero builds a 1200x630 social-preview banner from a logo SVG.
//
// # Quick Start
//
// Generate with the built-in defaults (public/logo.svg to public/hero_gen.svg):
//
//	res, err := hero.Generate(ctx, hero.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Generated", res.OutputPath)
//
// # How It Works
//
//  1. The logo file is read in full.
//  2. The body of its first <style> element and everything inside its
//     root <svg> element are cut out with regular expressions. Missing
//     markers produce empty fragments, not errors.
//  3. A text/template (with sprig functions) places the fragments on a
//     dark canvas: the logo scaled and centered near the top, the title
//     and subtitle below it.
//  4. The result is written to the output path. Its directory must exist.
//
// No SVG parsing or validation happens. A malformed logo yields a
// malformed banner.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	cfg := hero.DefaultConfig()
//	cfg.Title = "Launch Week"
//	gen, err := hero.NewGenerator(
//	    hero.WithConfig(cfg),
//	    hero.WithAssetPath("./brand"),
//	    hero.WithPNG(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//	res, err := gen.Generate(ctx)
//
// Build renders in memory without touching the filesystem.
//
// # Custom Template
//
// A directory passed to WithAssetPath may provide templates/hero.svg.tmpl.
// When the file is absent the embedded template is used.
//
// # PNG Export
//
// WithPNG renders the written SVG to a .png beside it using headless
// Chrome (go-rod). Rod downloads Chromium on first use. Set
// ROD_BROWSER_BIN to use an installed browser and ROD_NO_SANDBOX=true in
// containers.
package hero
