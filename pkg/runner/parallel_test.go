package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.webassert/pkg/registry"
	"digital.vasic.webassert/pkg/suite"
)

func independentDefs() []*suite.Definition {
	ids := []suite.ID{"alpha", "beta", "gamma"}
	defs := make([]*suite.Definition, 0, len(ids))
	for _, id := range ids {
		defs = append(defs, &suite.Definition{
			ID:   id,
			Name: string(id),
			Checks: []suite.CheckDef{
				{Kind: "exists", Selector: "body"},
			},
		})
	}
	return defs
}

func TestRunParallel(t *testing.T) {
	reg := registry.NewRegistry()
	for _, def := range independentDefs() {
		require.NoError(t, reg.Register(def))
	}

	factory := &stubFactory{
		session: &stubSession{exists: true},
	}
	r := newTestRunner(t, reg, factory)

	results, err := r.RunParallel(
		context.Background(),
		[]suite.ID{"alpha", "beta", "gamma"},
		suite.NewConfig(""),
		2,
	)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Submission order is preserved regardless of completion
	// order.
	assert.Equal(t, suite.ID("alpha"), results[0].SuiteID)
	assert.Equal(t, suite.ID("beta"), results[1].SuiteID)
	assert.Equal(t, suite.ID("gamma"), results[2].SuiteID)

	for _, result := range results {
		assert.Equal(t, suite.StatusPassed, result.Status)
	}

	// One session per suite.
	assert.Equal(t, int32(3), factory.opens.Load())
	assert.Equal(t, int32(3), factory.closes.Load())
}

func TestRunParallel_DependentBatchRejected(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(&suite.Definition{
		ID:   "login",
		Name: "login",
		Checks: []suite.CheckDef{
			{Kind: "exists", Selector: "body"},
		},
	}))
	require.NoError(t, reg.Register(&suite.Definition{
		ID:           "dashboard",
		Name:         "dashboard",
		Dependencies: []suite.ID{"login"},
		Checks: []suite.CheckDef{
			{Kind: "exists", Selector: "body"},
		},
	}))

	factory := &stubFactory{session: &stubSession{}}
	r := newTestRunner(t, reg, factory)

	_, err := r.RunParallel(
		context.Background(),
		[]suite.ID{"login", "dashboard"},
		suite.NewConfig(""),
		2,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same parallel batch")
}

func TestRunParallel_Empty(t *testing.T) {
	factory := &stubFactory{session: &stubSession{}}
	r := newTestRunner(t, registry.NewRegistry(), factory)

	results, err := r.RunParallel(
		context.Background(), nil, suite.NewConfig(""), 4,
	)
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestRunParallel_UnknownSuite(t *testing.T) {
	factory := &stubFactory{session: &stubSession{}}
	r := newTestRunner(t, registry.NewRegistry(), factory)

	_, err := r.RunParallel(
		context.Background(),
		[]suite.ID{"ghost"},
		suite.NewConfig(""),
		1,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get suite")
}

func TestRunParallel_ZeroConcurrencyClamped(t *testing.T) {
	reg := registry.NewRegistry()
	for _, def := range independentDefs() {
		require.NoError(t, reg.Register(def))
	}

	factory := &stubFactory{
		session: &stubSession{exists: true},
	}
	r := newTestRunner(t, reg, factory)

	results, err := r.RunParallel(
		context.Background(),
		[]suite.ID{"alpha", "beta"},
		suite.NewConfig(""),
		0,
	)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
