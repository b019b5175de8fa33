package hero

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	svg "github.com/ajstarks/svgo"
)

// scenarioLogo is the smallest logo that exercises both extractions.
const scenarioLogo = `<svg viewBox="-50 -7 200 200"><style>.a{fill:red}</style><path d="M0 0"/></svg>`

// logoSVG draws a logo fixture in a -50 -7 200 200 viewBox.
// An empty css omits the <style> element.
func logoSVG(t testing.TB, css string) []byte {
	t.Helper()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(200, 200, -50, -7, 200, 200)
	if css != "" {
		fmt.Fprintf(canvas.Writer, "<style>%s</style>\n", css)
	}
	canvas.Circle(50, 50, 40, `class="ring"`)
	canvas.Path("M10 10 L90 90", `class="slash"`)
	canvas.End()
	return buf.Bytes()
}

// writeLogo writes content to dir/logo.svg and returns the path.
func writeLogo(t testing.TB, dir string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, "logo.svg")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// testConfig returns the default config with paths inside dir.
func testConfig(dir, input string) Config {
	cfg := DefaultConfig()
	cfg.InputPath = input
	cfg.OutputPath = filepath.Join(dir, "hero_gen.svg")
	return cfg
}

// fakeRasterizer records calls and returns canned PNG bytes.
type fakeRasterizer struct {
	calls  int
	svg    []byte
	width  int
	height int
	output []byte
	err    error
	closed bool
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	f.calls++
	f.svg = svg
	f.width = width
	f.height = height
	if f.err != nil {
		return nil, f.err
	}
	if f.output != nil {
		return f.output, nil
	}
	return []byte("\x89PNG fake"), nil
}

func (f *fakeRasterizer) Close() error {
	f.closed = true
	return nil
}
