package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds input/output locations.
type pathFlags struct {
	input     string
	output    string
	assetPath string
}

// textFlags holds banner text overrides. The set fields record whether the
// flag was given, so an explicit empty string still overrides.
type textFlags struct {
	title       string
	subtitle    string
	titleSet    bool
	subtitleSet bool
}

// pngFlags holds raster export flags.
type pngFlags struct {
	enabled bool
	timeout string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common commonFlags
	paths  pathFlags
	text   textFlags
	png    pngFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show extraction stats and timing")
}

// addPathFlags adds input/output flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.input, "input", "i", "", "logo SVG path")
	fs.StringVarP(&f.output, "output", "o", "", "banner SVG path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template directory")
}

// addTextFlags adds banner text flags to a FlagSet.
func addTextFlags(fs *flag.FlagSet, f *textFlags) {
	fs.StringVar(&f.title, "title", "", "title text")
	fs.StringVar(&f.subtitle, "subtitle", "", "subtitle text")
}

// addPNGFlags adds raster export flags to a FlagSet.
func addPNGFlags(fs *flag.FlagSet, f *pngFlags) {
	fs.BoolVar(&f.enabled, "png", false, "also write a PNG via headless Chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PNG timeout for browser start-up and rendering (e.g., 30s, 2m)")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addTextFlags(fs, &f.text)
	addPNGFlags(fs, &f.png)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.text.titleSet = fs.Changed("title")
	f.text.subtitleSet = fs.Changed("subtitle")

	return f, fs.Args(), nil
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json   bool
	config string
	paths  pathFlags
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &doctorFlags{}

	fs.BoolVar(&f.json, "json", false, "output as JSON")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	addPathFlags(fs, &f.paths)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
