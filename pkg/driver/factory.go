// Package driver wires concrete browser drivers into the
// runner. Each factory opens a fresh session per suite run,
// pointed at the suite's start URL.
package driver

import (
	"context"
	"fmt"
	"strings"

	"digital.vasic.webassert/pkg/driver/browser"
	"digital.vasic.webassert/pkg/driver/wire"
	"digital.vasic.webassert/pkg/env"
	"digital.vasic.webassert/pkg/runner"
	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/suite"
)

// WebDriver returns a session factory backed by a W3C
// WebDriver remote end, e.g. chromedriver or Selenium.
func WebDriver(
	baseURL string,
	opts ...wire.ClientOption,
) runner.SessionFactory {
	return func(
		ctx context.Context,
		def *suite.Definition,
		_ *suite.Config,
	) (session.Session, func() error, error) {
		client := wire.NewClient(baseURL, opts...)
		if err := client.NewSession(ctx, nil); err != nil {
			return nil, nil, err
		}
		if err := client.NavigateTo(
			ctx, def.StartURL,
		); err != nil {
			_ = client.DeleteSession(context.Background())
			return nil, nil, fmt.Errorf(
				"navigate to %s: %w", def.StartURL, err,
			)
		}
		close := func() error {
			return client.DeleteSession(context.Background())
		}
		return client, close, nil
	}
}

// Chromium returns a session factory backed by the DevTools
// protocol. With no control URL option it launches a headless
// browser per run.
func Chromium(opts ...browser.Option) runner.SessionFactory {
	return func(
		ctx context.Context,
		def *suite.Definition,
		_ *suite.Config,
	) (session.Session, func() error, error) {
		drv := browser.NewDriver(opts...)
		if err := drv.Connect(ctx); err != nil {
			return nil, nil, err
		}
		if err := drv.Open(ctx, def.StartURL); err != nil {
			_ = drv.Close()
			return nil, nil, err
		}
		return drv, drv.Close, nil
	}
}

// FromEnvironment builds a session factory for the named
// driver, resolving its endpoint through the loader.
func FromEnvironment(
	loader env.Loader,
	driver string,
) (runner.SessionFactory, error) {
	name := strings.ToLower(driver)
	url := loader.GetDriverURL(name)

	switch name {
	case "chrome", "chromium", "rod":
		var opts []browser.Option
		if url != "" {
			opts = append(opts, browser.WithControlURL(url))
		}
		return Chromium(opts...), nil

	case "webdriver", "selenium", "chromedriver",
		"geckodriver", "firefox":
		if url == "" {
			return nil, fmt.Errorf(
				"driver %s: no endpoint URL configured", name,
			)
		}
		return WebDriver(url), nil

	default:
		return nil, fmt.Errorf("unknown driver: %s", driver)
	}
}
