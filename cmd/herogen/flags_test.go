package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	t.Run("short and long forms", func(t *testing.T) {
		t.Parallel()

		f, args, err := parseGenerateFlags([]string{
			"-i", "logo.svg", "--output", "hero.svg", "-c", "brand",
			"--title", "Launch", "--asset-path", "./brand", "--png", "-t", "1m", "-q", "-v",
		})
		if err != nil {
			t.Fatalf("parseGenerateFlags() error = %v", err)
		}
		if len(args) != 0 {
			t.Errorf("positional = %v, want none", args)
		}

		if f.paths.input != "logo.svg" || f.paths.output != "hero.svg" || f.paths.assetPath != "./brand" {
			t.Errorf("paths = %+v", f.paths)
		}
		if f.common.config != "brand" || !f.common.quiet || !f.common.verbose {
			t.Errorf("common = %+v", f.common)
		}
		if !f.png.enabled || f.png.timeout != "1m" {
			t.Errorf("png = %+v", f.png)
		}
		if !f.text.titleSet || f.text.title != "Launch" {
			t.Errorf("title = %q set=%v", f.text.title, f.text.titleSet)
		}
		if f.text.subtitleSet {
			t.Error("subtitle should not be marked set")
		}
	})

	t.Run("explicit empty subtitle is set", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseGenerateFlags([]string{"--subtitle="})
		if err != nil {
			t.Fatalf("parseGenerateFlags() error = %v", err)
		}
		if !f.text.subtitleSet || f.text.subtitle != "" {
			t.Errorf("subtitle = %q set=%v, want empty and set", f.text.subtitle, f.text.subtitleSet)
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseGenerateFlags([]string{"-h"})
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want ErrHelp", err)
		}
	})

	t.Run("positional returned", func(t *testing.T) {
		t.Parallel()

		_, args, err := parseGenerateFlags([]string{"extra"})
		if err != nil {
			t.Fatalf("parseGenerateFlags() error = %v", err)
		}
		if len(args) != 1 || args[0] != "extra" {
			t.Errorf("positional = %v, want [extra]", args)
		}
	})
}

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	f, err := parseDoctorFlags([]string{"--json", "-i", "logo.svg", "-c", "brand"})
	if err != nil {
		t.Fatalf("parseDoctorFlags() error = %v", err)
	}
	if !f.json || f.paths.input != "logo.svg" || f.config != "brand" {
		t.Errorf("flags = %+v", f)
	}
}
