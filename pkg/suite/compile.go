package suite

import (
	"fmt"
	"strconv"
	"strings"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/step"
	"digital.vasic.webassert/pkg/verdict"
)

// CheckBuilder builds a step from a check definition. Custom
// builders registered through the plugin package extend the
// built-in check kinds.
type CheckBuilder func(def CheckDef) (step.Step, error)

// ParseExpect parses a compact expectation string of the form
// "op:value" into its components. If no colon is present the
// entire string is treated as the op and value is empty.
//
// Examples:
//
//	"equals:jon snow" -> ("equals", "jon snow")
//	"not_empty"       -> ("not_empty", "")
//	"at_least:2"      -> ("at_least", "2")
func ParseExpect(s string) (op, value string) {
	parts := strings.SplitN(s, ":", 2)
	op = parts[0]
	if len(parts) > 1 {
		value = parts[1]
	}
	return
}

// Compile turns a suite definition into executable steps in
// declaration order. Unknown check kinds are resolved through
// the custom builders; a kind found in neither set is an error.
func Compile(
	def *Definition,
	custom map[string]CheckBuilder,
) ([]step.Step, error) {
	steps := make([]step.Step, 0, len(def.Checks))

	for i, check := range def.Checks {
		s, err := compileCheck(check, custom)
		if err != nil {
			return nil, fmt.Errorf(
				"suite %s: checks[%d]: %w", def.ID, i, err,
			)
		}
		steps = append(steps, s)
	}

	return steps, nil
}

// compileCheck maps a single check definition onto a step
// builder.
func compileCheck(
	check CheckDef,
	custom map[string]CheckBuilder,
) (step.Step, error) {
	switch check.Kind {
	case "url":
		return compileString(check, step.URL)
	case "title":
		return compileString(check, step.Title)
	case "page_html":
		return compileString(check, step.PageHTML)
	case "element_html":
		return compileSelectorString(check, step.ElementHTML)
	case "text":
		return compileSelectorString(check, step.Text)
	case "value":
		return compileSelectorString(check, step.Value)

	case "element_count":
		pred, err := intPredicate(check.Expect)
		if err != nil {
			return step.Step{}, err
		}
		return step.ElementCount(check.Selector, pred), nil

	case "cookie":
		pred, err := stringPredicate(check.Expect)
		if err != nil {
			return step.Step{}, err
		}
		return step.Cookie(check.Name, pred), nil
	case "attribute":
		pred, err := stringPredicate(check.Expect)
		if err != nil {
			return step.Step{}, err
		}
		return step.Attribute(check.Selector, check.Name, pred), nil
	case "css_property":
		pred, err := stringPredicate(check.Expect)
		if err != nil {
			return step.Step{}, err
		}
		return step.CSSProperty(check.Selector, check.Name, pred), nil

	case "exists":
		return step.Exists(check.Selector), nil
	case "input_enabled":
		return step.InputEnabled(check.Selector), nil
	case "visible":
		return step.Visible(check.Selector), nil
	case "visible_within_viewport":
		return step.VisibleWithinViewport(check.Selector), nil
	case "option_selected":
		return step.OptionSelected(check.Selector), nil
	case "cookie_exists":
		return step.CookieExists(check.Name), nil
	case "cookie_not_exists":
		return step.CookieNotExists(check.Name), nil

	case "element_size":
		pred, err := sizePredicate(check.Expect)
		if err != nil {
			return step.Step{}, err
		}
		return step.ElementSize(check.Selector, pred), nil
	case "element_position":
		pred, err := pointPredicate(check.Expect)
		if err != nil {
			return step.Step{}, err
		}
		return step.ElementPosition(check.Selector, pred), nil
	case "element_view_position":
		pred, err := pointPredicate(check.Expect)
		if err != nil {
			return step.Step{}, err
		}
		return step.ElementViewPosition(check.Selector, pred), nil
	}

	if builder, ok := custom[check.Kind]; ok {
		return builder(check)
	}

	return step.Step{}, fmt.Errorf(
		"unknown check kind: %s", check.Kind,
	)
}

// compileString applies a string expectation to a selector-less
// string builder.
func compileString(
	check CheckDef,
	build func(func(string) verdict.Verdict) step.Step,
) (step.Step, error) {
	pred, err := stringPredicate(check.Expect)
	if err != nil {
		return step.Step{}, err
	}
	return build(pred), nil
}

// compileSelectorString applies a string expectation to a
// selector-taking string builder.
func compileSelectorString(
	check CheckDef,
	build func(string, func(string) verdict.Verdict) step.Step,
) (step.Step, error) {
	pred, err := stringPredicate(check.Expect)
	if err != nil {
		return step.Step{}, err
	}
	return build(check.Selector, pred), nil
}

// stringPredicate translates a compact expectation into a
// string predicate.
func stringPredicate(
	expect string,
) (func(string) verdict.Verdict, error) {
	op, value := ParseExpect(expect)

	switch op {
	case "equals":
		return func(s string) verdict.Verdict {
			return verdict.Equal(s, value)
		}, nil
	case "not_equals":
		return func(s string) verdict.Verdict {
			return verdict.NotEqual(s, value)
		}, nil
	case "contains":
		return func(s string) verdict.Verdict {
			return verdict.Contains(s, value)
		}, nil
	case "prefix":
		return func(s string) verdict.Verdict {
			return verdict.HasPrefix(s, value)
		}, nil
	case "suffix":
		return func(s string) verdict.Verdict {
			return verdict.HasSuffix(s, value)
		}, nil
	case "matches":
		return func(s string) verdict.Verdict {
			return verdict.Matches(s, value)
		}, nil
	case "not_empty", "":
		return verdict.NotEmpty, nil
	}

	return nil, fmt.Errorf("unknown string expectation: %s", op)
}

// intPredicate translates a compact expectation into an
// integer predicate.
func intPredicate(
	expect string,
) (func(int) verdict.Verdict, error) {
	op, raw := ParseExpect(expect)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf(
			"expectation %q: value is not a number", expect,
		)
	}

	switch op {
	case "equals":
		return func(n int) verdict.Verdict {
			return verdict.Equal(n, value)
		}, nil
	case "at_least":
		return func(n int) verdict.Verdict {
			return verdict.AtLeast(n, value)
		}, nil
	case "at_most":
		return func(n int) verdict.Verdict {
			return verdict.AtMost(n, value)
		}, nil
	}

	return nil, fmt.Errorf("unknown integer expectation: %s", op)
}

// sizePredicate translates a compact expectation into a size
// predicate.
func sizePredicate(
	expect string,
) (func(session.Size) verdict.Verdict, error) {
	op, raw := ParseExpect(expect)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf(
			"expectation %q: value is not a number", expect,
		)
	}

	switch op {
	case "width":
		return func(s session.Size) verdict.Verdict {
			return verdict.Equal(s.Width, value)
		}, nil
	case "height":
		return func(s session.Size) verdict.Verdict {
			return verdict.Equal(s.Height, value)
		}, nil
	case "min_width":
		return func(s session.Size) verdict.Verdict {
			return verdict.AtLeast(s.Width, value)
		}, nil
	case "min_height":
		return func(s session.Size) verdict.Verdict {
			return verdict.AtLeast(s.Height, value)
		}, nil
	case "max_width":
		return func(s session.Size) verdict.Verdict {
			return verdict.AtMost(s.Width, value)
		}, nil
	case "max_height":
		return func(s session.Size) verdict.Verdict {
			return verdict.AtMost(s.Height, value)
		}, nil
	}

	return nil, fmt.Errorf("unknown size expectation: %s", op)
}

// pointPredicate translates a compact expectation into a
// position predicate.
func pointPredicate(
	expect string,
) (func(session.Point) verdict.Verdict, error) {
	op, raw := ParseExpect(expect)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf(
			"expectation %q: value is not a number", expect,
		)
	}

	switch op {
	case "x":
		return func(p session.Point) verdict.Verdict {
			return verdict.Equal(p.X, value)
		}, nil
	case "y":
		return func(p session.Point) verdict.Verdict {
			return verdict.Equal(p.Y, value)
		}, nil
	case "min_x":
		return func(p session.Point) verdict.Verdict {
			return verdict.AtLeast(p.X, value)
		}, nil
	case "min_y":
		return func(p session.Point) verdict.Verdict {
			return verdict.AtLeast(p.Y, value)
		}, nil
	case "max_x":
		return func(p session.Point) verdict.Verdict {
			return verdict.AtMost(p.X, value)
		}, nil
	case "max_y":
		return func(p session.Point) verdict.Verdict {
			return verdict.AtMost(p.Y, value)
		}, nil
	}

	return nil, fmt.Errorf(
		"unknown position expectation: %s", op,
	)
}
