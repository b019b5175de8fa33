package hero

import "regexp"

// Extraction is pattern-based, not a markup parse. Multiple style regions
// yield the first; nested or self-closing roots are not special-cased.
var (
	stylePattern = regexp.MustCompile(`(?s)<style>(.*?)</style>`)
	rootPattern  = regexp.MustCompile(`(?s)<svg[^>]*>(.*)</svg>`)
)

// Fragments holds the pieces of a logo reused in the banner.
type Fragments struct {
	Style  string
	Shapes string
}

// Extract pulls the style body and root content out of an SVG document.
// Missing markers yield empty strings, never an error.
func Extract(src string) Fragments {
	return Fragments{
		Style:  ExtractStyle(src),
		Shapes: ExtractShapes(src),
	}
}

// ExtractStyle returns the text between the first <style> and </style>.
func ExtractStyle(src string) string {
	return firstGroup(stylePattern, src)
}

// ExtractShapes returns everything between the opening <svg ...> tag and the
// last </svg>. The logo's own <style> element is kept.
func ExtractShapes(src string) string {
	return firstGroup(rootPattern, src)
}

func firstGroup(re *regexp.Regexp, src string) string {
	m := re.FindStringSubmatch(src)
	if m == nil {
		return ""
	}
	return m[1]
}
