package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testLogo is a minimal logo with both extraction markers.
const testLogo = `<svg viewBox="-50 -7 200 200"><style>.a{fill:red}</style><path d="M0 0"/></svg>`

// newTestEnv returns an Environment writing to buffers with a fixed clock.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	fixed := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return fixed },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// setupProject creates dir/public/logo.svg and returns dir.
func setupProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "public"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "public", "logo.svg"), []byte(testLogo), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return dir
}

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// clearHeroEnv unsets HERO_* variables for the duration of the test.
func clearHeroEnv(t *testing.T) {
	t.Helper()

	for name := range knownEnvVars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// fakeRasterizer returns canned PNG bytes without a browser.
type fakeRasterizer struct {
	calls int
	err   error
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("\x89PNG fake"), nil
}

func (f *fakeRasterizer) Close() error { return nil }
