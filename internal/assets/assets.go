package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadDefaultTemplate loads the built-in hero banner template.
func LoadDefaultTemplate() (string, error) {
	return defaultLoader.LoadTemplate(DefaultTemplateName)
}
