// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-hero/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors during --png.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	hints = append(hints, "omit --png to write the SVG only")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the PNG render timeout.
func ForTimeout() string {
	return format("on slow machines, raise --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-hero") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSourceNotFound returns a hint when the logo SVG is missing.
// The default input path is relative, so the usual cause is the working directory.
func ForSourceNotFound(path string) string {
	return format("run from the project root or pass --input (looked for " + path + ")")
}

// ForOutputDirectory returns hints for unwritable output locations.
func ForOutputDirectory() string {
	return format("check the parent directory exists and is writable; it is not created automatically")
}

// ForTemplateNotFound returns hints when a custom asset path lacks the template.
func ForTemplateNotFound(name string) string {
	return format("expected {asset-path}/templates/" + name + ".svg.tmpl")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
