package step

import (
	"context"
	"fmt"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/verdict"
)

// boolCommand wraps a boolean query with the hard-coded
// mapping true -> pass, false -> fail(failMessage). The
// failure message is fixed per assertion kind and reproduces
// the selector or cookie name so multiple failing checks in a
// run stay distinguishable.
func boolCommand(
	name string,
	failMessage string,
	query func(ctx context.Context, s session.Session) (bool, error),
) Step {
	return command(
		name, KindBool, query,
		func(ok bool) verdict.Verdict {
			if ok {
				return verdict.Pass()
			}
			return verdict.Fail(failMessage)
		},
	)
}

// Exists builds a step asserting that an element matches the
// selector.
func Exists(selector string) Step {
	return boolCommand(
		fmt.Sprintf("%s exists", selector),
		fmt.Sprintf("The element %s does not exist", selector),
		func(ctx context.Context, s session.Session) (bool, error) {
			return s.ElementExists(ctx, selector)
		},
	)
}

// InputEnabled builds a step asserting that the input element
// matching the selector is enabled.
func InputEnabled(selector string) Step {
	return boolCommand(
		fmt.Sprintf("%s is enabled", selector),
		fmt.Sprintf("The input %s is not enabled", selector),
		func(ctx context.Context, s session.Session) (bool, error) {
			return s.ElementEnabled(ctx, selector)
		},
	)
}

// Visible builds a step asserting that the element matching
// the selector is visible.
func Visible(selector string) Step {
	return boolCommand(
		fmt.Sprintf("%s is visible", selector),
		fmt.Sprintf("The element %s is not visible", selector),
		func(ctx context.Context, s session.Session) (bool, error) {
			return s.ElementVisible(ctx, selector)
		},
	)
}

// VisibleWithinViewport builds a step asserting that the
// element matching the selector is visible inside the current
// viewport.
func VisibleWithinViewport(selector string) Step {
	return boolCommand(
		fmt.Sprintf("%s is visible within the viewport", selector),
		fmt.Sprintf(
			"The element %s is not visible within the viewport",
			selector,
		),
		func(ctx context.Context, s session.Session) (bool, error) {
			return s.ElementVisibleWithinViewport(ctx, selector)
		},
	)
}

// OptionSelected builds a step asserting that the option
// element matching the selector is selected.
func OptionSelected(selector string) Step {
	return boolCommand(
		fmt.Sprintf("%s is selected", selector),
		fmt.Sprintf("The option %s is not selected", selector),
		func(ctx context.Context, s session.Session) (bool, error) {
			return s.OptionIsSelected(ctx, selector)
		},
	)
}

// CookieExists builds a step asserting that the named cookie
// is set.
func CookieExists(name string) Step {
	return boolCommand(
		fmt.Sprintf("cookie %q exists", name),
		fmt.Sprintf("The cookie %q does not exist", name),
		func(ctx context.Context, s session.Session) (bool, error) {
			return s.CookieExists(ctx, name)
		},
	)
}

// CookieNotExists builds a step asserting that the named
// cookie is absent.
func CookieNotExists(name string) Step {
	return boolCommand(
		fmt.Sprintf("cookie %q does not exist", name),
		fmt.Sprintf("The cookie %q exists", name),
		func(ctx context.Context, s session.Session) (bool, error) {
			return s.CookieNotExists(ctx, name)
		},
	)
}
