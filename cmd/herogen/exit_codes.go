package main

import (
	"errors"
	"os"

	hero "github.com/alnah/go-hero"
	"github.com/alnah/go-hero/internal/config"
)

// Exit codes for herogen.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Banner written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Logo not found, output not writable
	ExitBrowser = 4 // Browser/Chrome errors during --png
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, hero.ErrBrowserConnect) ||
		errors.Is(err, hero.ErrPageLoad) ||
		errors.Is(err, hero.ErrRasterize) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, hero.ErrReadSource) ||
		errors.Is(err, hero.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, hero.ErrEmptyPath) ||
		errors.Is(err, hero.ErrInvalidColor) ||
		errors.Is(err, hero.ErrPNGPathConflict) ||
		errors.Is(err, hero.ErrInvalidAssetPath) ||
		errors.Is(err, hero.ErrTemplateParse) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
