package hero

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// funcMap returns sprig's text functions plus xml escaping for text nodes.
// Style and shape fragments are inserted as-is; only user text is escaped.
func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["xml"] = xmlEscape
	return fm
}

// xmlEscape escapes a string for use as SVG character data or attribute value.
func xmlEscape(s string) string {
	var b strings.Builder
	// EscapeText only fails when the writer fails; strings.Builder never does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// ParseTemplate compiles banner template source.
func ParseTemplate(content string) (*template.Template, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty template", ErrTemplateParse)
	}
	tmpl, err := template.New("hero").Funcs(funcMap()).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return tmpl, nil
}

// Render executes the banner template against doc.
func Render(tmpl *template.Template, doc *Document) ([]byte, error) {
	if tmpl == nil || doc == nil {
		return nil, fmt.Errorf("%w: nil template or document", ErrTemplateRender)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.Bytes(), nil
}
