package step

import (
	"context"
	"errors"

	"digital.vasic.webassert/pkg/session"
)

// errDriver stands in for a tier-1 driver failure in tests.
var errDriver = errors.New("driver: lost connection to browser")

// fakeSession is a scriptable session.Session for tests. Each
// field holds the canned return for the matching query; err is
// returned by every query when set. calls records query names
// in invocation order.
type fakeSession struct {
	cookieValue  string
	cookieOK     bool
	boolValue    bool
	stringValue  string
	intValue     int
	optionalOK   bool
	sizeValue    session.Size
	pointValue   session.Point
	err          error
	calls        []string
}

func (f *fakeSession) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeSession) GetCookie(
	_ context.Context, _ string,
) (string, bool, error) {
	f.record("GetCookie")
	return f.cookieValue, f.cookieOK, f.err
}

func (f *fakeSession) CookieExists(
	_ context.Context, _ string,
) (bool, error) {
	f.record("CookieExists")
	return f.boolValue, f.err
}

func (f *fakeSession) CookieNotExists(
	_ context.Context, _ string,
) (bool, error) {
	f.record("CookieNotExists")
	return f.boolValue, f.err
}

func (f *fakeSession) GetURL(_ context.Context) (string, error) {
	f.record("GetURL")
	return f.stringValue, f.err
}

func (f *fakeSession) GetTitle(_ context.Context) (string, error) {
	f.record("GetTitle")
	return f.stringValue, f.err
}

func (f *fakeSession) GetPageHTML(_ context.Context) (string, error) {
	f.record("GetPageHTML")
	return f.stringValue, f.err
}

func (f *fakeSession) CountElements(
	_ context.Context, _ string,
) (int, error) {
	f.record("CountElements")
	return f.intValue, f.err
}

func (f *fakeSession) GetAttribute(
	_ context.Context, _, _ string,
) (string, bool, error) {
	f.record("GetAttribute")
	return f.stringValue, f.optionalOK, f.err
}

func (f *fakeSession) GetCSSProperty(
	_ context.Context, _, _ string,
) (string, bool, error) {
	f.record("GetCSSProperty")
	return f.stringValue, f.optionalOK, f.err
}

func (f *fakeSession) GetElementHTML(
	_ context.Context, _ string,
) (string, error) {
	f.record("GetElementHTML")
	return f.stringValue, f.err
}

func (f *fakeSession) GetText(
	_ context.Context, _ string,
) (string, error) {
	f.record("GetText")
	return f.stringValue, f.err
}

func (f *fakeSession) GetValue(
	_ context.Context, _ string,
) (string, error) {
	f.record("GetValue")
	return f.stringValue, f.err
}

func (f *fakeSession) ElementExists(
	_ context.Context, _ string,
) (bool, error) {
	f.record("ElementExists")
	return f.boolValue, f.err
}

func (f *fakeSession) ElementEnabled(
	_ context.Context, _ string,
) (bool, error) {
	f.record("ElementEnabled")
	return f.boolValue, f.err
}

func (f *fakeSession) ElementVisible(
	_ context.Context, _ string,
) (bool, error) {
	f.record("ElementVisible")
	return f.boolValue, f.err
}

func (f *fakeSession) ElementVisibleWithinViewport(
	_ context.Context, _ string,
) (bool, error) {
	f.record("ElementVisibleWithinViewport")
	return f.boolValue, f.err
}

func (f *fakeSession) OptionIsSelected(
	_ context.Context, _ string,
) (bool, error) {
	f.record("OptionIsSelected")
	return f.boolValue, f.err
}

func (f *fakeSession) GetElementSize(
	_ context.Context, _ string,
) (session.Size, error) {
	f.record("GetElementSize")
	return f.sizeValue, f.err
}

func (f *fakeSession) GetElementPosition(
	_ context.Context, _ string,
) (session.Point, error) {
	f.record("GetElementPosition")
	return f.pointValue, f.err
}

func (f *fakeSession) GetElementViewPosition(
	_ context.Context, _ string,
) (session.Point, error) {
	f.record("GetElementViewPosition")
	return f.pointValue, f.err
}
