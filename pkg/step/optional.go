package step

import (
	"context"
	"fmt"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/verdict"
)

// Fixed failure messages for absent optional values. Absence is
// always a failing verdict, never a driver error, and the
// caller predicate is never consulted for it.
const (
	msgCookieAbsent      = "The cookie does not exist"
	msgAttributeAbsent   = "The attribute is not present"
	msgCSSPropertyAbsent = "The css property is not present"
)

// optional pairs an optional query's value with its presence
// flag so the maybe-shaped steps can funnel through command.
type optional struct {
	value   string
	present bool
}

// maybeCommand wraps an optional-returning query. The caller
// predicate is pre-composed with the absence handler: it only
// ever sees present values.
func maybeCommand(
	name string,
	absentMessage string,
	query func(ctx context.Context, s session.Session) (string, bool, error),
	predicate func(string) verdict.Verdict,
) Step {
	return command(
		name, KindMaybe,
		func(ctx context.Context, s session.Session) (optional, error) {
			value, ok, err := query(ctx, s)
			if err != nil {
				return optional{}, err
			}
			return optional{value: value, present: ok}, nil
		},
		func(o optional) verdict.Verdict {
			if !o.present {
				return verdict.Fail(absentMessage)
			}
			return predicate(o.value)
		},
	)
}

// Cookie builds a step checking the value of the named cookie.
// If the cookie is absent the step fails with a fixed message
// and the predicate is not invoked.
func Cookie(
	name string,
	predicate func(string) verdict.Verdict,
) Step {
	return maybeCommand(
		fmt.Sprintf("cookie %q", name),
		msgCookieAbsent,
		func(ctx context.Context, s session.Session) (string, bool, error) {
			return s.GetCookie(ctx, name)
		},
		predicate,
	)
}

// Attribute builds a step checking an attribute of the element
// matching the selector. If the attribute is absent the step
// fails with a fixed message and the predicate is not invoked.
func Attribute(
	selector, name string,
	predicate func(string) verdict.Verdict,
) Step {
	return maybeCommand(
		fmt.Sprintf("attribute %q of %s", name, selector),
		msgAttributeAbsent,
		func(ctx context.Context, s session.Session) (string, bool, error) {
			return s.GetAttribute(ctx, selector, name)
		},
		predicate,
	)
}

// CSSProperty builds a step checking a computed css property of
// the element matching the selector. If the property is absent
// the step fails with a fixed message and the predicate is not
// invoked.
func CSSProperty(
	selector, name string,
	predicate func(string) verdict.Verdict,
) Step {
	return maybeCommand(
		fmt.Sprintf("css property %q of %s", name, selector),
		msgCSSPropertyAbsent,
		func(ctx context.Context, s session.Session) (string, bool, error) {
			return s.GetCSSProperty(ctx, selector, name)
		},
		predicate,
	)
}
