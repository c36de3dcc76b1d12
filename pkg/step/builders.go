package step

import (
	"context"
	"fmt"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/verdict"
)

// URL builds a step checking the current page URL.
func URL(predicate func(string) verdict.Verdict) Step {
	return command(
		"url", KindString,
		func(ctx context.Context, s session.Session) (string, error) {
			return s.GetURL(ctx)
		},
		predicate,
	)
}

// Title builds a step checking the current page title.
func Title(predicate func(string) verdict.Verdict) Step {
	return command(
		"title", KindString,
		func(ctx context.Context, s session.Session) (string, error) {
			return s.GetTitle(ctx)
		},
		predicate,
	)
}

// PageHTML builds a step checking the full page markup.
func PageHTML(predicate func(string) verdict.Verdict) Step {
	return command(
		"page html", KindString,
		func(ctx context.Context, s session.Session) (string, error) {
			return s.GetPageHTML(ctx)
		},
		predicate,
	)
}

// ElementHTML builds a step checking the markup of the element
// matching the selector.
func ElementHTML(
	selector string,
	predicate func(string) verdict.Verdict,
) Step {
	return command(
		fmt.Sprintf("html of %s", selector), KindString,
		func(ctx context.Context, s session.Session) (string, error) {
			return s.GetElementHTML(ctx, selector)
		},
		predicate,
	)
}

// Text builds a step checking the visible text of the element
// matching the selector.
func Text(
	selector string,
	predicate func(string) verdict.Verdict,
) Step {
	return command(
		fmt.Sprintf("text of %s", selector), KindString,
		func(ctx context.Context, s session.Session) (string, error) {
			return s.GetText(ctx, selector)
		},
		predicate,
	)
}

// Value builds a step checking the value of the form element
// matching the selector.
func Value(
	selector string,
	predicate func(string) verdict.Verdict,
) Step {
	return command(
		fmt.Sprintf("value of %s", selector), KindString,
		func(ctx context.Context, s session.Session) (string, error) {
			return s.GetValue(ctx, selector)
		},
		predicate,
	)
}

// ElementCount builds a step checking how many elements match
// the selector.
func ElementCount(
	selector string,
	predicate func(int) verdict.Verdict,
) Step {
	return command(
		fmt.Sprintf("count of %s", selector), KindInt,
		func(ctx context.Context, s session.Session) (int, error) {
			return s.CountElements(ctx, selector)
		},
		predicate,
	)
}

// ElementSize builds a step checking the rendered size of the
// element matching the selector.
func ElementSize(
	selector string,
	predicate func(session.Size) verdict.Verdict,
) Step {
	return command(
		fmt.Sprintf("size of %s", selector), KindGeometry,
		func(ctx context.Context, s session.Session) (session.Size, error) {
			return s.GetElementSize(ctx, selector)
		},
		predicate,
	)
}

// ElementPosition builds a step checking the document position
// of the element matching the selector.
func ElementPosition(
	selector string,
	predicate func(session.Point) verdict.Verdict,
) Step {
	return command(
		fmt.Sprintf("position of %s", selector), KindGeometry,
		func(ctx context.Context, s session.Session) (session.Point, error) {
			return s.GetElementPosition(ctx, selector)
		},
		predicate,
	)
}

// ElementViewPosition builds a step checking the viewport-
// relative position of the element matching the selector.
func ElementViewPosition(
	selector string,
	predicate func(session.Point) verdict.Verdict,
) Step {
	return command(
		fmt.Sprintf("view position of %s", selector), KindGeometry,
		func(ctx context.Context, s session.Session) (session.Point, error) {
			return s.GetElementViewPosition(ctx, selector)
		},
		predicate,
	)
}
