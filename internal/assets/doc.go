// Package assets provides the SVG banner templates.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in banner)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first and falls back to
// EmbeddedLoader only when the template is not found, so a custom directory
// may override the banner layout without shipping every template.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.svg.tmpl      # text/template source (e.g., hero.svg.tmpl)
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
