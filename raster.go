package hero

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-hero/internal/fileutil"
	"github.com/alnah/go-hero/internal/process"
)

// Rasterizer renders SVG markup to PNG bytes at a fixed viewport size.
type Rasterizer interface {
	Rasterize(ctx context.Context, svg []byte, width, height int) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ Rasterizer = (*rodRasterizer)(nil)

// rodRasterizer screenshots the SVG in headless Chrome via go-rod.
// Rod downloads Chromium on first use if none is found.
type rodRasterizer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// NewRodRasterizer creates a Rasterizer backed by headless Chrome.
// The browser is launched on the first Rasterize call.
func NewRodRasterizer(timeout time.Duration) Rasterizer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &rodRasterizer{timeout: timeout}
}

// newLauncher configures the Chrome launcher from the environment.
func newLauncher() *launcher.Launcher {
	l := launcher.New()

	// Pre-installed browser (Docker, CI images)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	noSandbox := os.Getenv("ROD_NO_SANDBOX")
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || noSandbox == "1" || noSandbox == "true" {
		l = l.NoSandbox(true)
	}
	return l
}

// launchBrowser starts Chrome and returns its DevTools URL.
// On first use rod may download Chromium here.
var launchBrowser = func(l *launcher.Launcher) (string, error) {
	return l.Launch()
}

type launchResult struct {
	url string
	err error
}

// ensureBrowser lazily connects to the browser. The launch, including a
// first-use download, is bounded by ctx and timeout. A launch that finishes
// after the deadline is killed when it returns.
func (r *rodRasterizer) ensureBrowser(ctx context.Context, timeout time.Duration) error {
	if r.browser != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	l := newLauncher()
	done := make(chan launchResult, 1)
	go func() {
		u, err := launchBrowser(l)
		done <- launchResult{url: u, err: err}
	}()

	var u string
	select {
	case <-ctx.Done():
		go func() {
			if res := <-done; res.err == nil {
				process.KillTree(l.PID())
				l.Kill()
			}
		}()
		return fmt.Errorf("%w: launching browser: %w", ErrBrowserConnect, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("%w: %v", ErrBrowserConnect, res.err)
		}
		u = res.url
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.stopLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Rasterize writes svg to a temp file, opens it at width x height and
// captures the viewport as PNG.
func (r *rodRasterizer) Rasterize(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrRasterize, width, height)
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(svg, "svg")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}
	defer cleanup()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := r.ensureBrowser(ctx, timeout); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer page.Close()

	p := page.Context(ctx).Timeout(timeout)

	err = p.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrRasterize, err)
	}

	if err := p.Navigate("file://" + tmpPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	png, err := p.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}
	return png, nil
}

// Close releases browser resources.
func (r *rodRasterizer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.stopLauncher()
	return err
}

// stopLauncher kills the Chrome process tree. Renderer and GPU helpers
// can outlive the main browser process.
func (r *rodRasterizer) stopLauncher() {
	if r.launcher == nil {
		return
	}
	process.KillTree(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}

// BrowserPath returns the Chrome binary --png would use, or false when
// none is installed. Rod may still download one on first use.
func BrowserPath() (string, bool) {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		return bin, true
	}
	return launcher.LookPath()
}
