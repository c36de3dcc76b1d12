// Package verdict defines the pass/fail outcome of a single
// assertion and a set of value-based check combinators for
// building predicates.
package verdict

// Verdict is the two-state outcome of an assertion: pass, or
// fail with a human-readable message. The zero value is a
// failing verdict with an empty message; use Pass or Fail to
// construct meaningful values.
type Verdict struct {
	ok      bool
	message string
}

// Pass returns a passing verdict.
func Pass() Verdict {
	return Verdict{ok: true}
}

// Fail returns a failing verdict carrying the given message.
func Fail(message string) Verdict {
	return Verdict{message: message}
}

// OK reports whether the verdict passed.
func (v Verdict) OK() bool {
	return v.ok
}

// Message returns the failure message. It is empty for passing
// verdicts.
func (v Verdict) Message() string {
	return v.message
}

// String returns "pass" or "fail: <message>".
func (v Verdict) String() string {
	if v.ok {
		return "pass"
	}
	return "fail: " + v.message
}
