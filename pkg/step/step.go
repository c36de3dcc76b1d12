// Package step turns browser-session checks into uniform,
// named units of deferred work. Each constructor wraps one
// typed session query together with a verdict-producing
// predicate into an immutable Step executed later by a runner.
package step

import (
	"context"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/verdict"
)

// Kind tags a Step with the shape of the raw value its
// embedded query yields. The set is closed; runners may rely
// on it being exhaustive.
type Kind string

const (
	// KindString tags steps whose query yields a string.
	KindString Kind = "string"

	// KindBool tags steps whose query yields a boolean.
	KindBool Kind = "bool"

	// KindInt tags steps whose query yields an integer.
	KindInt Kind = "int"

	// KindGeometry tags steps whose query yields a
	// two-integer pair (size or position).
	KindGeometry Kind = "geometry"

	// KindMaybe tags steps whose query yields an optional
	// value.
	KindMaybe Kind = "maybe"

	// KindTask tags steps carrying a pre-built deferred
	// verdict that needs no session.
	KindTask Kind = "task"

	// KindWebdriver tags steps carrying a caller-owned
	// session computation.
	KindWebdriver Kind = "webdriver"
)

// Step is an opaque, immutable unit of deferred verdict-
// producing work. Construction never touches the browser; the
// embedded query runs once, when a runner calls Run.
type Step struct {
	name string
	kind Kind
	run  func(ctx context.Context, s session.Session) (verdict.Verdict, error)
}

// Name returns the step's descriptive name. For catalogue
// constructors the name is derived deterministically from the
// selector and arguments; custom combinators carry the
// caller-supplied name.
func (s Step) Name() string {
	return s.name
}

// Kind returns the step's result-shape tag.
func (s Step) Kind() Kind {
	return s.kind
}

// Run executes the embedded query against the session and maps
// the raw value through the predicate. It yields exactly one
// verdict, or a driver error propagated unchanged. Steps of
// KindTask ignore the session entirely.
func (s Step) Run(
	ctx context.Context,
	sess session.Session,
) (verdict.Verdict, error) {
	return s.run(ctx, sess)
}

// command wraps a typed session query and predicate into a
// Step. All catalogue constructors funnel through here.
func command[T any](
	name string,
	kind Kind,
	query func(ctx context.Context, s session.Session) (T, error),
	predicate func(T) verdict.Verdict,
) Step {
	return Step{
		name: name,
		kind: kind,
		run: func(
			ctx context.Context,
			s session.Session,
		) (verdict.Verdict, error) {
			value, err := query(ctx, s)
			if err != nil {
				return verdict.Verdict{}, err
			}
			return predicate(value), nil
		},
	}
}
