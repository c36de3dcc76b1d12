// Package session defines the capability boundary between the
// assertion layer and a live browser session. Concrete drivers
// live under pkg/driver.
package session

import "context"

// Size is a width/height pair in CSS pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Point is an x/y coordinate pair in CSS pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Session exposes the typed browser queries required by the
// assertion layer. Every method describes a single round trip
// to the browser; errors are driver errors and propagate to the
// caller unchanged. Optional-returning queries report absence
// through the ok flag, never through an error.
//
// Implementations serialize access to the underlying browser;
// callers must not invoke queries concurrently on the same
// session.
type Session interface {
	// GetCookie returns the value of the named cookie. ok is
	// false when the cookie does not exist.
	GetCookie(ctx context.Context, name string) (value string, ok bool, err error)

	// CookieExists reports whether the named cookie is set.
	CookieExists(ctx context.Context, name string) (bool, error)

	// CookieNotExists reports whether the named cookie is
	// absent.
	CookieNotExists(ctx context.Context, name string) (bool, error)

	// GetURL returns the current page URL.
	GetURL(ctx context.Context) (string, error)

	// GetTitle returns the current page title.
	GetTitle(ctx context.Context) (string, error)

	// GetPageHTML returns the full page markup.
	GetPageHTML(ctx context.Context) (string, error)

	// CountElements returns the number of elements matching
	// the selector.
	CountElements(ctx context.Context, selector string) (int, error)

	// GetAttribute returns the value of an attribute on the
	// element matching the selector. ok is false when the
	// attribute is not present.
	GetAttribute(ctx context.Context, selector, name string) (value string, ok bool, err error)

	// GetCSSProperty returns the computed value of a css
	// property on the element matching the selector. ok is
	// false when the property is not present.
	GetCSSProperty(ctx context.Context, selector, name string) (value string, ok bool, err error)

	// GetElementHTML returns the markup of the element
	// matching the selector.
	GetElementHTML(ctx context.Context, selector string) (string, error)

	// GetText returns the visible text of the element matching
	// the selector.
	GetText(ctx context.Context, selector string) (string, error)

	// GetValue returns the value of the form element matching
	// the selector.
	GetValue(ctx context.Context, selector string) (string, error)

	// ElementExists reports whether an element matches the
	// selector.
	ElementExists(ctx context.Context, selector string) (bool, error)

	// ElementEnabled reports whether the input element matching
	// the selector is enabled.
	ElementEnabled(ctx context.Context, selector string) (bool, error)

	// ElementVisible reports whether the element matching the
	// selector is visible.
	ElementVisible(ctx context.Context, selector string) (bool, error)

	// ElementVisibleWithinViewport reports whether the element
	// matching the selector is visible inside the current
	// viewport.
	ElementVisibleWithinViewport(ctx context.Context, selector string) (bool, error)

	// OptionIsSelected reports whether the option element
	// matching the selector is selected.
	OptionIsSelected(ctx context.Context, selector string) (bool, error)

	// GetElementSize returns the rendered size of the element
	// matching the selector.
	GetElementSize(ctx context.Context, selector string) (Size, error)

	// GetElementPosition returns the document position of the
	// element matching the selector.
	GetElementPosition(ctx context.Context, selector string) (Point, error)

	// GetElementViewPosition returns the viewport-relative
	// position of the element matching the selector.
	GetElementViewPosition(ctx context.Context, selector string) (Point, error)
}
