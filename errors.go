package hero

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadSource     = errors.New("failed to read source logo")
	ErrWriteOutput    = errors.New("failed to write banner")
	ErrEmptyPath      = errors.New("path cannot be empty")
	ErrTemplateParse  = errors.New("banner template parsing failed")
	ErrTemplateRender = errors.New("banner template rendering failed")

	// Config validation errors.
	ErrInvalidColor    = errors.New("invalid color")
	ErrPNGPathConflict = errors.New("PNG output would overwrite the SVG banner")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Rasterization errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageLoad       = errors.New("failed to load page")
	ErrRasterize      = errors.New("PNG rendering failed")
)
