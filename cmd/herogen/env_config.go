package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// envConfig holds configuration from HERO_* environment variables.
// Sits between the config file and CLI flags.
type envConfig struct {
	ConfigPath string        // HERO_CONFIG: config file name or path
	Input      string        // HERO_INPUT: logo SVG path
	Output     string        // HERO_OUTPUT: banner SVG path
	AssetPath  string        // HERO_ASSET_PATH: custom template directory
	Timeout    time.Duration // HERO_TIMEOUT: PNG rendering timeout
}

// knownEnvVars lists valid HERO_* environment variables.
var knownEnvVars = map[string]bool{
	"HERO_CONFIG":     true,
	"HERO_INPUT":      true,
	"HERO_OUTPUT":     true,
	"HERO_ASSET_PATH": true,
	"HERO_TIMEOUT":    true,
}

// loadEnvConfig reads HERO_* environment variables.
// An unparseable or non-positive timeout is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("HERO_CONFIG"),
		Input:      os.Getenv("HERO_INPUT"),
		Output:     os.Getenv("HERO_OUTPUT"),
		AssetPath:  os.Getenv("HERO_ASSET_PATH"),
	}

	if timeout := os.Getenv("HERO_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars warns about unrecognized HERO_* variables.
// Catches typos like HERO_OUPUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "HERO_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays set environment values on s.
func applyEnvConfig(env *envConfig, s *settings) {
	if env.Input != "" {
		s.cfg.InputPath = env.Input
	}
	if env.Output != "" {
		s.cfg.OutputPath = env.Output
	}
	if env.AssetPath != "" {
		s.assetPath = env.AssetPath
	}
	if env.Timeout > 0 {
		s.timeout = env.Timeout
	}
}
