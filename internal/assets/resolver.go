package assets

import "errors"

// AssetResolver combines custom and embedded loaders.
// Custom templates win; embedded ones are used when the custom
// directory does not provide the requested name.
type AssetResolver struct {
	custom   *FilesystemLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// An empty customBasePath means embedded templates only.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplateWithSource loads a template, trying the custom loader first,
// and reports whether the content came from the custom directory.
func (r *AssetResolver) LoadTemplateWithSource(name string) (content string, custom bool, err error) {
	if r.custom == nil {
		content, err = r.embedded.LoadTemplate(name)
		return content, false, err
	}

	content, err = r.custom.LoadTemplate(name)
	if err == nil {
		return content, true, nil
	}

	// Validation and I/O errors are not masked by the fallback.
	if !isNotFoundError(err) {
		return "", false, err
	}

	content, err = r.embedded.LoadTemplate(name)
	return content, false, err
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// BasePath returns the absolute custom directory, or "" when only
// embedded templates are used.
func (r *AssetResolver) BasePath() string {
	if r.custom == nil {
		return ""
	}
	return r.custom.BasePath()
}
