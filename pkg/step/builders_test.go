package step

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/verdict"
)

func TestStringBuilders(t *testing.T) {
	tests := []struct {
		name     string
		build    func(func(string) verdict.Verdict) Step
		stepName string
		query    string
	}{
		{
			"url", URL,
			"url", "GetURL",
		},
		{
			"title", Title,
			"title", "GetTitle",
		},
		{
			"page html", PageHTML,
			"page html", "GetPageHTML",
		},
		{
			"element html",
			func(p func(string) verdict.Verdict) Step {
				return ElementHTML("div.main", p)
			},
			"html of div.main", "GetElementHTML",
		},
		{
			"text",
			func(p func(string) verdict.Verdict) Step {
				return Text("h1.logo", p)
			},
			"text of h1.logo", "GetText",
		},
		{
			"value",
			func(p func(string) verdict.Verdict) Step {
				return Value("input.username", p)
			},
			"value of input.username", "GetValue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &fakeSession{stringValue: "observed"}

			var seen string
			s := tt.build(func(v string) verdict.Verdict {
				seen = v
				return verdict.Equal(v, "observed")
			})

			assert.Equal(t, tt.stepName, s.Name())
			assert.Equal(t, KindString, s.Kind())
			assert.Empty(
				t, sess.calls,
				"construction must not run the query",
			)

			v, err := s.Run(context.Background(), sess)
			require.NoError(t, err)
			assert.True(t, v.OK())
			assert.Equal(t, "observed", seen)
			assert.Equal(t, []string{tt.query}, sess.calls)
		})
	}
}

func TestElementCount(t *testing.T) {
	sess := &fakeSession{intValue: 3}

	s := ElementCount("#loginForm input", func(n int) verdict.Verdict {
		return verdict.AtLeast(n, 2)
	})

	assert.Equal(t, "count of #loginForm input", s.Name())
	assert.Equal(t, KindInt, s.Kind())

	v, err := s.Run(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, v.OK())
}

func TestElementCountFailing(t *testing.T) {
	sess := &fakeSession{intValue: 1}

	s := ElementCount("#loginForm input", func(n int) verdict.Verdict {
		return verdict.AtLeast(n, 2)
	})

	v, err := s.Run(context.Background(), sess)
	require.NoError(t, err)
	assert.False(t, v.OK())
	assert.Equal(t, "expected at least 2, got 1", v.Message())
}

func TestGeometryBuilders(t *testing.T) {
	t.Run("element size", func(t *testing.T) {
		sess := &fakeSession{
			sizeValue: session.Size{Width: 100, Height: 40},
		}

		s := ElementSize(".logo", func(sz session.Size) verdict.Verdict {
			return verdict.Equal(sz.Width, 100)
		})

		assert.Equal(t, "size of .logo", s.Name())
		assert.Equal(t, KindGeometry, s.Kind())

		v, err := s.Run(context.Background(), sess)
		require.NoError(t, err)
		assert.True(t, v.OK())
	})

	t.Run("element position", func(t *testing.T) {
		sess := &fakeSession{
			pointValue: session.Point{X: 10, Y: 250},
		}

		s := ElementPosition(".logo", func(p session.Point) verdict.Verdict {
			return verdict.Equal(p.Y, 250)
		})

		assert.Equal(t, "position of .logo", s.Name())

		v, err := s.Run(context.Background(), sess)
		require.NoError(t, err)
		assert.True(t, v.OK())
	})

	t.Run("element view position", func(t *testing.T) {
		sess := &fakeSession{
			pointValue: session.Point{X: 10, Y: -30},
		}

		s := ElementViewPosition(
			".logo",
			func(p session.Point) verdict.Verdict {
				return verdict.AtLeast(p.Y, 0)
			},
		)

		assert.Equal(t, "view position of .logo", s.Name())

		v, err := s.Run(context.Background(), sess)
		require.NoError(t, err)
		assert.False(t, v.OK())
	})
}

func TestDriverErrorPropagatesUnchanged(t *testing.T) {
	sess := &fakeSession{err: errDriver}

	s := Title(func(string) verdict.Verdict {
		t.Fatal("predicate must not run on driver error")
		return verdict.Pass()
	})

	_, err := s.Run(context.Background(), sess)
	assert.ErrorIs(t, err, errDriver)
}

func TestNameDerivationIsDeterministic(t *testing.T) {
	pred := func(string) verdict.Verdict { return verdict.Pass() }

	first := Attribute("input.username", "autocomplete", pred)
	second := Attribute("input.username", "autocomplete", pred)

	assert.Equal(t, first.Name(), second.Name())
	assert.Equal(
		t, `attribute "autocomplete" of input.username`,
		first.Name(),
	)
}
