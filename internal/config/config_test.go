package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "test", "", 10, false},
		{"value at limit is valid", "test", "1234567890", 10, false},
		{"value under limit is valid", "test", "12345", 10, false},
		{"value over limit returns error", "test.field", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		wantMsg string
	}{
		{
			name: "empty config is valid",
			cfg:  Config{},
		},
		{
			name: "full config is valid",
			cfg: Config{
				Input:  InputConfig{Path: "assets/logo.svg"},
				Output: OutputConfig{Path: "dist/hero.svg", PNG: true, Timeout: "45s"},
				Text:   TextConfig{Title: "Pinned Casts", Subtitle: "Dynamic View"},
				Colors: ColorsConfig{Background: "#16161b", Brand: "#00f", Text: "#FFFFFF"},
				Assets: AssetsConfig{BasePath: "./brand"},
			},
		},
		{
			name:    "title too long",
			cfg:     Config{Text: TextConfig{Title: strings.Repeat("x", MaxTextLength+1)}},
			wantErr: ErrFieldTooLong,
			wantMsg: "text.title",
		},
		{
			name:    "subtitle too long",
			cfg:     Config{Text: TextConfig{Subtitle: strings.Repeat("x", MaxTextLength+1)}},
			wantErr: ErrFieldTooLong,
			wantMsg: "text.subtitle",
		},
		{
			name:    "path too long",
			cfg:     Config{Output: OutputConfig{Path: strings.Repeat("a", MaxPathLength+1)}},
			wantErr: ErrFieldTooLong,
			wantMsg: "output.path",
		},
		{
			name:    "named color rejected",
			cfg:     Config{Colors: ColorsConfig{Brand: "blue"}},
			wantErr: ErrInvalidValue,
			wantMsg: "colors.brand",
		},
		{
			name:    "missing hash rejected",
			cfg:     Config{Colors: ColorsConfig{Text: "ffffff"}},
			wantErr: ErrInvalidValue,
			wantMsg: "colors.text",
		},
		{
			name:    "bad hex digit rejected",
			cfg:     Config{Colors: ColorsConfig{Background: "#16161g"}},
			wantErr: ErrInvalidValue,
			wantMsg: "colors.background",
		},
		{
			name:    "overlong color is a length error",
			cfg:     Config{Colors: ColorsConfig{Background: "#16161b00"}},
			wantErr: ErrFieldTooLong,
			wantMsg: "colors.background",
		},
		{
			name:    "unparseable timeout",
			cfg:     Config{Output: OutputConfig{Timeout: "soon"}},
			wantErr: ErrInvalidValue,
			wantMsg: "output.timeout",
		},
		{
			name:    "negative timeout",
			cfg:     Config{Output: OutputConfig{Timeout: "-5s"}},
			wantErr: ErrInvalidValue,
			wantMsg: "output.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "brand.yaml")
		content := `input:
  path: assets/logo.svg
output:
  path: dist/hero.svg
  png: true
text:
  title: "Pinned Casts"
  subtitle: "Dynamic View"
colors:
  background: "#16161b"
  brand: "#0000ff"
  text: "#ffffff"
assets:
  basePath: ./brand
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		want := &Config{
			Input:  InputConfig{Path: "assets/logo.svg"},
			Output: OutputConfig{Path: "dist/hero.svg", PNG: true},
			Text:   TextConfig{Title: "Pinned Casts", Subtitle: "Dynamic View"},
			Colors: ColorsConfig{Background: "#16161b", Brand: "#0000ff", Text: "#ffffff"},
			Assets: AssetsConfig{BasePath: "./brand"},
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("partial file leaves other fields empty", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "partial.yaml")
		if err := os.WriteFile(configPath, []byte("text:\n  title: Launch Week\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Text.Title != "Launch Week" {
			t.Errorf("Text.Title = %q, want %q", cfg.Text.Title, "Launch Week")
		}
		if cfg.Text.Subtitle != "" || cfg.Input.Path != "" || cfg.Colors.Brand != "" {
			t.Errorf("unset fields should stay empty, got %+v", cfg)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("text: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "typo.yaml")
		if err := os.WriteFile(configPath, []byte("colours:\n  brand: \"#0000ff\"\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("validation error surfaces", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(configPath, []byte("colors:\n  brand: blue\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("name resolves in current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		if err := os.WriteFile("brand.yml", []byte("text:\n  subtitle: From Name\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig("brand")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Text.Subtitle != "From Name" {
			t.Errorf("Text.Subtitle = %q, want %q", cfg.Text.Subtitle, "From Name")
		}
	})

	t.Run("unknown name lists searched paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("missing-brand-xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "missing-brand-xyz.yaml") {
			t.Errorf("error = %q, want searched paths listed", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("brand")

	if len(paths) < 2 {
		t.Fatalf("SearchPaths() returned %d paths, want at least 2", len(paths))
	}
	if paths[0] != "brand.yaml" || paths[1] != "brand.yml" {
		t.Errorf("SearchPaths() local entries = %v, want brand.yaml, brand.yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, filepath.Join(appDir, "brand")) {
			t.Errorf("user path %q should live under %s", p, appDir)
		}
	}
}
