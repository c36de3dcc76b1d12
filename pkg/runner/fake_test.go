package runner

import (
	"context"
	"sync"
	"sync/atomic"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/suite"
)

// stubSession implements session.Session with canned values.
type stubSession struct {
	title  string
	url    string
	exists bool
	err    error
}

func (s *stubSession) GetCookie(
	context.Context, string,
) (string, bool, error) {
	return "", false, s.err
}

func (s *stubSession) CookieExists(
	context.Context, string,
) (bool, error) {
	return false, s.err
}

func (s *stubSession) CookieNotExists(
	context.Context, string,
) (bool, error) {
	return true, s.err
}

func (s *stubSession) GetURL(
	context.Context,
) (string, error) {
	return s.url, s.err
}

func (s *stubSession) GetTitle(
	context.Context,
) (string, error) {
	return s.title, s.err
}

func (s *stubSession) GetPageHTML(
	context.Context,
) (string, error) {
	return "<html></html>", s.err
}

func (s *stubSession) CountElements(
	context.Context, string,
) (int, error) {
	return 0, s.err
}

func (s *stubSession) GetAttribute(
	context.Context, string, string,
) (string, bool, error) {
	return "", false, s.err
}

func (s *stubSession) GetCSSProperty(
	context.Context, string, string,
) (string, bool, error) {
	return "", false, s.err
}

func (s *stubSession) GetElementHTML(
	context.Context, string,
) (string, error) {
	return "", s.err
}

func (s *stubSession) GetText(
	context.Context, string,
) (string, error) {
	return "", s.err
}

func (s *stubSession) GetValue(
	context.Context, string,
) (string, error) {
	return "", s.err
}

func (s *stubSession) ElementExists(
	context.Context, string,
) (bool, error) {
	return s.exists, s.err
}

func (s *stubSession) ElementEnabled(
	context.Context, string,
) (bool, error) {
	return s.exists, s.err
}

func (s *stubSession) ElementVisible(
	context.Context, string,
) (bool, error) {
	return s.exists, s.err
}

func (s *stubSession) ElementVisibleWithinViewport(
	context.Context, string,
) (bool, error) {
	return s.exists, s.err
}

func (s *stubSession) OptionIsSelected(
	context.Context, string,
) (bool, error) {
	return s.exists, s.err
}

func (s *stubSession) GetElementSize(
	context.Context, string,
) (session.Size, error) {
	return session.Size{}, s.err
}

func (s *stubSession) GetElementPosition(
	context.Context, string,
) (session.Point, error) {
	return session.Point{}, s.err
}

func (s *stubSession) GetElementViewPosition(
	context.Context, string,
) (session.Point, error) {
	return session.Point{}, s.err
}

// stubFactory hands out a shared stub session and counts opens
// and closes.
type stubFactory struct {
	session *stubSession
	opens   atomic.Int32
	closes  atomic.Int32

	mu       sync.Mutex
	openURLs []string
}

func (f *stubFactory) factory() SessionFactory {
	return func(
		_ context.Context,
		def *suite.Definition,
		_ *suite.Config,
	) (session.Session, func() error, error) {
		f.opens.Add(1)
		f.mu.Lock()
		f.openURLs = append(f.openURLs, def.StartURL)
		f.mu.Unlock()

		return f.session, func() error {
			f.closes.Add(1)
			return nil
		}, nil
	}
}
