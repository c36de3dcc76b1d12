package step

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/verdict"
)

func TestTask(t *testing.T) {
	s := Task("config sanity", func(context.Context) verdict.Verdict {
		return verdict.Equal(1+1, 2)
	})

	assert.Equal(t, "config sanity", s.Name())
	assert.Equal(t, KindTask, s.Kind())

	// Tasks never touch the session; nil is fine.
	v, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, v.OK())
}

func TestDriverCommand(t *testing.T) {
	sess := &fakeSession{stringValue: "https://example.com/login"}

	s := DriverCommand(
		"login page reached",
		func(ctx context.Context, s session.Session) (any, error) {
			return s.GetURL(ctx)
		},
		func(value any) verdict.Verdict {
			url, ok := value.(string)
			if !ok {
				return verdict.Fail("not a string")
			}
			return verdict.HasSuffix(url, "/login")
		},
	)

	assert.Equal(t, "login page reached", s.Name())
	assert.Equal(t, KindWebdriver, s.Kind())

	v, err := s.Run(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, v.OK())
}

func TestDriverCommandError(t *testing.T) {
	s := DriverCommand(
		"failing command",
		func(context.Context, session.Session) (any, error) {
			return nil, errDriver
		},
		func(any) verdict.Verdict {
			t.Fatal("predicate must not run on driver error")
			return verdict.Pass()
		},
	)

	_, err := s.Run(context.Background(), &fakeSession{})
	assert.ErrorIs(t, err, errDriver)
}

func TestSequenceCommandsOrdering(t *testing.T) {
	var order []string

	cmd := func(id string, value any) Command {
		return func(context.Context, session.Session) (any, error) {
			order = append(order, id)
			return value, nil
		}
	}

	var seen []any
	s := SequenceCommands(
		"correlated cookies",
		[]Command{
			cmd("q1", "A"),
			cmd("q2", "B"),
			cmd("q3", "C"),
		},
		func(values []any) verdict.Verdict {
			seen = values
			return verdict.Pass()
		},
	)

	v, err := s.Run(context.Background(), &fakeSession{})
	require.NoError(t, err)
	assert.True(t, v.OK())
	assert.Equal(t, []string{"q1", "q2", "q3"}, order)
	assert.Equal(t, []any{"A", "B", "C"}, seen)
}

func TestSequenceCommandsFailFast(t *testing.T) {
	boom := errors.New("driver: element query failed")

	var ran []int
	cmd := func(i int, err error) Command {
		return func(context.Context, session.Session) (any, error) {
			ran = append(ran, i)
			return fmt.Sprintf("value-%d", i), err
		}
	}

	s := SequenceCommands(
		"x",
		[]Command{cmd(1, nil), cmd(2, boom), cmd(3, nil)},
		func([]any) verdict.Verdict {
			t.Fatal("predicate must not run after a driver error")
			return verdict.Pass()
		},
	)

	_, err := s.Run(context.Background(), &fakeSession{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(
		t, []int{1, 2}, ran,
		"the failing query must short-circuit the rest",
	)
}
