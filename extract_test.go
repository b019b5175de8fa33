package hero

// Notes:
// - Extraction is regex-based: tests pin the exact boundaries, not SVG semantics
// - Style: first match wins, non-greedy, attributes on <style> are not matched
// - Shapes: greedy up to the last </svg>, the logo's own <style> is kept

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestExtractStyle - Style Body Extraction
// ---------------------------------------------------------------------------

func TestExtractStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "single style",
			src:  scenarioLogo,
			want: ".a{fill:red}",
		},
		{
			name: "spans newlines",
			src:  "<svg><style>\n.a {\n  fill: red;\n}\n</style></svg>",
			want: "\n.a {\n  fill: red;\n}\n",
		},
		{
			name: "first of several wins",
			src:  "<svg><style>.first{}</style><g/><style>.second{}</style></svg>",
			want: ".first{}",
		},
		{
			name: "no style element",
			src:  `<svg><path d="M0 0"/></svg>`,
			want: "",
		},
		{
			name: "empty style element",
			src:  "<svg><style></style></svg>",
			want: "",
		},
		{
			name: "style with attributes is not matched",
			src:  `<svg><style type="text/css">.a{}</style></svg>`,
			want: "",
		},
		{
			name: "unclosed style",
			src:  "<svg><style>.a{fill:red}</svg>",
			want: "",
		},
		{
			name: "not svg at all",
			src:  "hello world",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractStyle(tt.src)
			if got != tt.want {
				t.Errorf("ExtractStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtractShapes - Root Content Extraction
// ---------------------------------------------------------------------------

func TestExtractShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "keeps style and shapes",
			src:  scenarioLogo,
			want: `<style>.a{fill:red}</style><path d="M0 0"/>`,
		},
		{
			name: "root attributes span lines",
			src:  "<svg\n  width=\"10\"\n  height=\"10\">\n<rect/>\n</svg>",
			want: "\n<rect/>\n",
		},
		{
			name: "greedy up to the last closing tag",
			src:  "<svg><svg><circle/></svg><rect/></svg>",
			want: "<svg><circle/></svg><rect/>",
		},
		{
			name: "xml prolog is skipped",
			src:  `<?xml version="1.0"?>` + "\n<svg><g/></svg>\n",
			want: "<g/>",
		},
		{
			name: "empty root",
			src:  "<svg></svg>",
			want: "",
		},
		{
			name: "self-closing root has no content",
			src:  "<svg/>",
			want: "",
		},
		{
			name: "missing closing tag",
			src:  "<svg><g/>",
			want: "",
		},
		{
			name: "not svg at all",
			src:  "hello world",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractShapes(tt.src)
			if got != tt.want {
				t.Errorf("ExtractShapes() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtract - Combined Extraction
// ---------------------------------------------------------------------------

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("scenario logo", func(t *testing.T) {
		t.Parallel()

		got := Extract(scenarioLogo)
		want := Fragments{
			Style:  ".a{fill:red}",
			Shapes: `<style>.a{fill:red}</style><path d="M0 0"/>`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("generated fixture", func(t *testing.T) {
		t.Parallel()

		got := Extract(string(logoSVG(t, ".ring{stroke:#00f}")))
		if got.Style != ".ring{stroke:#00f}" {
			t.Errorf("Style = %q, want %q", got.Style, ".ring{stroke:#00f}")
		}
		for _, want := range []string{"<style>.ring{stroke:#00f}</style>", "<circle", `class="ring"`, "<path", `class="slash"`} {
			if !strings.Contains(got.Shapes, want) {
				t.Errorf("Shapes missing %q:\n%s", want, got.Shapes)
			}
		}
		if strings.Contains(got.Shapes, "<svg") || strings.Contains(got.Shapes, "</svg>") {
			t.Errorf("Shapes should not include the root element:\n%s", got.Shapes)
		}
	})

	t.Run("missing markers", func(t *testing.T) {
		t.Parallel()

		if diff := cmp.Diff(Fragments{}, Extract("")); diff != "" {
			t.Errorf("Extract(\"\") mismatch (-want +got):\n%s", diff)
		}
	})
}
