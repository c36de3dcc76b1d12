package step

import (
	"context"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/verdict"
)

// Command is a single caller-owned session query yielding an
// untyped raw value. It may fail with a driver error.
type Command func(ctx context.Context, s session.Session) (any, error)

// Task wraps an already-fully-formed deferred verdict
// computation that needs no session. Use it when the check
// logic is arbitrary and session-independent.
func Task(
	name string,
	task func(ctx context.Context) verdict.Verdict,
) Step {
	return Step{
		name: name,
		kind: KindTask,
		run: func(
			ctx context.Context,
			_ session.Session,
		) (verdict.Verdict, error) {
			return task(ctx), nil
		},
	}
}

// DriverCommand wraps a single custom session query and a
// predicate over its raw result. It is the generic escape
// hatch for driver interactions the catalogue constructors do
// not cover.
func DriverCommand(
	name string,
	cmd Command,
	predicate func(any) verdict.Verdict,
) Step {
	return Step{
		name: name,
		kind: KindWebdriver,
		run: func(
			ctx context.Context,
			s session.Session,
		) (verdict.Verdict, error) {
			value, err := cmd(ctx, s)
			if err != nil {
				return verdict.Verdict{}, err
			}
			return predicate(value), nil
		},
	}
}

// SequenceCommands wraps an ordered list of session queries
// into one atomic step. The queries run strictly in order
// against the same session; the result at index i comes from
// the query at index i. The first driver error aborts the
// remaining queries and fails the whole step with that error,
// discarding earlier results. On full success the predicate
// receives the ordered result list.
func SequenceCommands(
	name string,
	cmds []Command,
	predicate func([]any) verdict.Verdict,
) Step {
	return Step{
		name: name,
		kind: KindWebdriver,
		run: func(
			ctx context.Context,
			s session.Session,
		) (verdict.Verdict, error) {
			values := make([]any, 0, len(cmds))
			for _, cmd := range cmds {
				value, err := cmd(ctx, s)
				if err != nil {
					return verdict.Verdict{}, err
				}
				values = append(values, value)
			}
			return predicate(values), nil
		},
	}
}
