package verdict

import (
	"fmt"
	"regexp"
	"strings"
)

// Equal checks that two comparable values are equal.
func Equal[T comparable](actual, expected T) Verdict {
	if actual == expected {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected %v, got %v", expected, actual,
	))
}

// NotEqual checks that two comparable values differ.
func NotEqual[T comparable](actual, unexpected T) Verdict {
	if actual != unexpected {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected a value other than %v", unexpected,
	))
}

// Contains checks that a string contains the given substring.
func Contains(actual, substring string) Verdict {
	if strings.Contains(actual, substring) {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected %q to contain %q", actual, substring,
	))
}

// HasPrefix checks that a string starts with the given prefix.
func HasPrefix(actual, prefix string) Verdict {
	if strings.HasPrefix(actual, prefix) {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected %q to start with %q", actual, prefix,
	))
}

// HasSuffix checks that a string ends with the given suffix.
func HasSuffix(actual, suffix string) Verdict {
	if strings.HasSuffix(actual, suffix) {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected %q to end with %q", actual, suffix,
	))
}

// Matches checks a string against a regular expression pattern.
// An invalid pattern is a failing verdict, not an error.
func Matches(actual, pattern string) Verdict {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Fail(fmt.Sprintf(
			"invalid pattern %q: %v", pattern, err,
		))
	}
	if re.MatchString(actual) {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected %q to match %q", actual, pattern,
	))
}

// NotEmpty checks that a string is not empty after trimming
// whitespace.
func NotEmpty(actual string) Verdict {
	if strings.TrimSpace(actual) != "" {
		return Pass()
	}
	return Fail("expected a non-empty value")
}

// AtLeast checks that a number meets a minimum.
func AtLeast(actual, minimum int) Verdict {
	if actual >= minimum {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected at least %d, got %d", minimum, actual,
	))
}

// AtMost checks that a number does not exceed a maximum.
func AtMost(actual, maximum int) Verdict {
	if actual <= maximum {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected at most %d, got %d", maximum, actual,
	))
}

// Between checks that a number lies in the inclusive range
// [low, high].
func Between(actual, low, high int) Verdict {
	if actual >= low && actual <= high {
		return Pass()
	}
	return Fail(fmt.Sprintf(
		"expected a value in [%d, %d], got %d",
		low, high, actual,
	))
}

// True checks that a condition holds, failing with the given
// message otherwise.
func True(condition bool, message string) Verdict {
	if condition {
		return Pass()
	}
	return Fail(message)
}

// False checks that a condition does not hold, failing with the
// given message otherwise.
func False(condition bool, message string) Verdict {
	if !condition {
		return Pass()
	}
	return Fail(message)
}

// All combines verdicts, returning the first failure or pass if
// every verdict passed.
func All(verdicts ...Verdict) Verdict {
	for _, v := range verdicts {
		if !v.OK() {
			return v
		}
	}
	return Pass()
}

// Any combines verdicts, returning pass if at least one verdict
// passed. The failure message aggregates all individual
// messages.
func Any(verdicts ...Verdict) Verdict {
	messages := make([]string, 0, len(verdicts))
	for _, v := range verdicts {
		if v.OK() {
			return Pass()
		}
		messages = append(messages, v.Message())
	}
	return Fail(fmt.Sprintf(
		"none of %d checks passed: %s",
		len(verdicts), strings.Join(messages, "; "),
	))
}
