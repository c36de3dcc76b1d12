// Package browser implements a Chromium-backed session using
// the DevTools protocol via go-rod. It can attach to a running
// browser over a debugger URL or launch its own headless
// instance.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"digital.vasic.webassert/pkg/logging"
)

// Option configures a Driver via functional options.
type Option func(*Driver)

// Driver drives a single Chromium page over the DevTools
// protocol.
type Driver struct {
	browser    *rod.Browser
	page       *rod.Page
	controlURL string
	browserBin string
	headless   bool
	navTimeout time.Duration
	logger     logging.Logger
}

// NewDriver creates an unconnected driver. Call Connect before
// opening pages.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		headless:   true,
		navTimeout: 30 * time.Second,
		logger:     logging.NullLogger{},
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// WithControlURL attaches to an already running browser at the
// given DevTools WebSocket URL instead of launching one.
func WithControlURL(url string) Option {
	return func(d *Driver) { d.controlURL = url }
}

// WithBrowserBin sets the browser binary used when launching.
func WithBrowserBin(bin string) Option {
	return func(d *Driver) { d.browserBin = bin }
}

// WithHeadless controls headless mode for launched browsers.
func WithHeadless(headless bool) Option {
	return func(d *Driver) { d.headless = headless }
}

// WithNavigationTimeout bounds page navigation time.
func WithNavigationTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.navTimeout = timeout }
}

// WithLogger sets the logger for driver lifecycle events.
func WithLogger(logger logging.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// ControlURL returns the DevTools URL the driver is attached
// to, or "" before Connect.
func (d *Driver) ControlURL() string {
	return d.controlURL
}

// Connect attaches to the browser, launching one when no
// control URL was configured.
func (d *Driver) Connect(ctx context.Context) error {
	if d.browser != nil {
		return nil
	}

	controlURL := d.controlURL
	if controlURL == "" {
		launch := launcher.New().Headless(d.headless)
		if d.browserBin != "" {
			launch = launch.Bin(d.browserBin)
		}
		url, err := launch.Launch()
		if err != nil {
			return fmt.Errorf("launch browser: %w", err)
		}
		controlURL = url
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to browser: %w", err)
	}

	d.browser = browser
	d.controlURL = controlURL
	d.logger.Debug(
		"browser_connected",
		logging.StringField("control_url", controlURL),
	)
	return nil
}

// Open creates a page and navigates it to the given URL. The
// page becomes the target of all subsequent queries.
func (d *Driver) Open(ctx context.Context, url string) error {
	if d.browser == nil {
		return fmt.Errorf("open %s: driver not connected", url)
	}

	page, err := d.browser.Page(
		proto.TargetCreateTarget{URL: url},
	)
	if err != nil {
		return fmt.Errorf("open page %s: %w", url, err)
	}

	if err := page.Context(ctx).
		Timeout(d.navTimeout).
		WaitLoad(); err != nil {
		_ = page.Close()
		return fmt.Errorf("load page %s: %w", url, err)
	}

	d.page = page
	return nil
}

// Close closes the current page and disconnects from the
// browser.
func (d *Driver) Close() error {
	var firstErr error
	if d.page != nil {
		if err := d.page.Close(); err != nil {
			firstErr = err
		}
		d.page = nil
	}
	if d.browser != nil {
		if err := d.browser.Close(); err != nil &&
			firstErr == nil {
			firstErr = err
		}
		d.browser = nil
	}
	return firstErr
}

// eval runs a script in the page and returns its value.
func (d *Driver) eval(
	ctx context.Context,
	js string,
	args ...any,
) (gson.JSON, error) {
	if d.page == nil {
		return gson.JSON{}, fmt.Errorf("no page open")
	}
	res, err := d.page.Context(ctx).Evaluate(
		rod.Eval(js, args...),
	)
	if err != nil {
		return gson.JSON{}, fmt.Errorf("evaluate: %w", err)
	}
	return res.Value, nil
}
