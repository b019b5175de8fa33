package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	hero "github.com/alnah/go-hero"
	"github.com/alnah/go-hero/internal/assets"
	"github.com/alnah/go-hero/internal/fileutil"
	"github.com/alnah/go-hero/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Logo     logoInfo     `json:"logo"`
	Output   outputInfo   `json:"output"`
	Template templateInfo `json:"template"`
	Chrome   chromeInfo   `json:"chrome"`
	Env      envInfo      `json:"environment"`
	System   systemInfo   `json:"system"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// logoInfo holds source logo checks.
type logoInfo struct {
	Path     string `json:"path"`
	Readable bool   `json:"readable"`
	Bytes    int    `json:"bytes"`
	HasStyle bool   `json:"has_style"`
	HasRoot  bool   `json:"has_root"`
}

// outputInfo holds output location checks.
type outputInfo struct {
	Path     string `json:"path"`
	Dir      string `json:"dir"`
	Writable bool   `json:"writable"`
}

// templateInfo holds banner template checks.
type templateInfo struct {
	Source    string `json:"source"` // "embedded" or "custom"
	AssetPath string `json:"asset_path,omitempty"`
	Valid     bool   `json:"valid"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Required bool   `json:"required"` // PNG enabled in config
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
	Sandbox  bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	f, err := parseDoctorFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printDoctorUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	result := runDoctor(f)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(f *doctorFlags) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	s, err := resolveSettings(&generateFlags{
		common: commonFlags{config: f.config},
		paths:  f.paths,
	}, loadEnvConfig())
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		s = defaultSettings()
	}

	checkLogo(result, s.cfg.InputPath)
	checkOutput(result, s.cfg.OutputPath)
	checkTemplate(result, s.assetPath)
	checkChrome(result, s.png)
	checkEnvironment(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkLogo reads the logo and looks for the markers extraction relies on.
func checkLogo(result *doctorResult, path string) {
	result.Logo.Path = path

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Logo not readable: %v%s", err, hints.ForSourceNotFound(path)))
		return
	}

	frag := hero.Extract(string(data))
	result.Logo.Readable = true
	result.Logo.Bytes = len(data)
	result.Logo.HasStyle = frag.Style != ""
	result.Logo.HasRoot = frag.Shapes != ""

	if !result.Logo.HasRoot {
		result.Warnings = append(result.Warnings,
			"Logo has no <svg>...</svg> content; the banner will have no logo")
	}
	if !result.Logo.HasStyle {
		result.Warnings = append(result.Warnings,
			"Logo has no <style> element; only inline styling will apply")
	}
}

// checkOutput verifies the output directory exists and is writable.
func checkOutput(result *doctorResult, path string) {
	dir := filepath.Dir(path)
	result.Output.Path = path
	result.Output.Dir = dir

	if err := fileutil.DirWritable(dir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %v%s", err, hints.ForOutputDirectory()))
		return
	}
	result.Output.Writable = true
}

// checkTemplate resolves and parses the banner template.
func checkTemplate(result *doctorResult, assetPath string) {
	result.Template.AssetPath = assetPath
	result.Template.Source = "embedded"

	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Asset path invalid: %v", err))
		return
	}

	content, custom, err := resolver.LoadTemplateWithSource(assets.DefaultTemplateName)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Template not loadable: %v", err))
		return
	}
	if resolver.HasCustomLoader() {
		result.Template.AssetPath = resolver.BasePath()
	}
	if custom {
		result.Template.Source = "custom"
	} else if resolver.HasCustomLoader() {
		result.Warnings = append(result.Warnings,
			"Asset path has no banner template; the embedded one is used"+hints.ForTemplateNotFound(assets.DefaultTemplateName))
	}

	if _, err := hero.ParseTemplate(content); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Template invalid: %v", err))
		return
	}
	result.Template.Valid = true
}

// checkChrome detects Chrome/Chromium. A missing browser is only an error
// when PNG export is enabled; otherwise --png would fail later.
func checkChrome(result *doctorResult, required bool) {
	result.Chrome.Required = required

	report := func(msg string) {
		if required {
			result.Errors = append(result.Errors, msg)
		} else {
			result.Warnings = append(result.Warnings, msg+" (needed for --png only)")
		}
	}

	chromePath, found := hero.BrowserPath()
	if !found {
		report("Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN")
		return
	}

	if _, err := os.Stat(chromePath); err != nil {
		report(fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	cmd := exec.Command(chromePath, "--version") // #nosec G204 -- path from launcher lookup or ROD_BROWSER_BIN
	out, err := cmd.Output()
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	result.Chrome.Sandbox = result.Env.NoSandbox != "1" && result.Env.NoSandbox != "true"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if (result.Env.Container || result.Env.CI) && result.Chrome.Sandbox && result.Chrome.Found {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1 for --png")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint names the detected signal.
func isContainer() (bool, string) {
	if os.Getenv("HERO_CONTAINER") == "1" {
		return true, "HERO_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used for PNG rendering.
func checkSystem(result *doctorResult) {
	if err := fileutil.DirWritable(os.TempDir()); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", os.TempDir()))
		return
	}
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "herogen doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Logo")
	if r.Logo.Readable {
		fmt.Fprintf(w, "  [OK] %s (%d bytes)\n", r.Logo.Path, r.Logo.Bytes)
		fmt.Fprintf(w, "  %s <style> element\n", mark(r.Logo.HasStyle))
		fmt.Fprintf(w, "  %s <svg> content\n", mark(r.Logo.HasRoot))
	} else {
		fmt.Fprintf(w, "  [ERROR] %s not readable\n", r.Logo.Path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	if r.Output.Writable {
		fmt.Fprintf(w, "  [OK] %s writable\n", r.Output.Dir)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s not writable\n", r.Output.Dir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Template")
	if r.Template.Valid {
		fmt.Fprintf(w, "  [OK] %s\n", r.Template.Source)
	} else {
		fmt.Fprintln(w, "  [ERROR] invalid or missing")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX)")
		}
	} else if r.Chrome.Required {
		fmt.Fprintln(w, "  [ERROR] Not found")
	} else {
		fmt.Fprintln(w, "  [WARN] Not found (needed for --png only)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// mark returns an [OK] or [WARN] tag.
func mark(ok bool) string {
	if ok {
		return "[OK]"
	}
	return "[WARN]"
}
