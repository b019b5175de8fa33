package assets

// DefaultTemplateName is the built-in banner layout.
const DefaultTemplateName = "hero"

// TemplateExt is appended to template names when reading files.
const TemplateExt = ".svg.tmpl"

// AssetLoader loads banner templates by name.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without .svg.tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
