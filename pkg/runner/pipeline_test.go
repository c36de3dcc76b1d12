package runner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.webassert/pkg/registry"
	"digital.vasic.webassert/pkg/report"
	"digital.vasic.webassert/pkg/suite"
)

// recordingReporter captures what the pipeline hands it.
type recordingReporter struct {
	mu      sync.Mutex
	name    string
	err     error
	dirs    []string
	summary *report.Summary
}

func (r *recordingReporter) Name() string { return r.name }

func (r *recordingReporter) Write(
	outputDir string,
	summary *report.Summary,
	_ []*suite.Result,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirs = append(r.dirs, outputDir)
	r.summary = summary
	return r.err
}

func TestPipeline_Execute(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(loginDef()))

	factory := &stubFactory{
		session: &stubSession{
			title:  "Login - Example",
			exists: true,
		},
	}
	r := newTestRunner(t, reg, factory)

	reporter := &recordingReporter{name: "recording"}
	p := NewPipeline(
		r,
		WithReporters(reporter),
		WithReportDir(t.TempDir()),
	)

	results, err := p.Execute(
		context.Background(),
		[]suite.ID{"login"},
		suite.NewConfig(""),
	)
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NotNil(t, reporter.summary)
	assert.Equal(t, 1, reporter.summary.TotalSuites)
	assert.Equal(t, 1, reporter.summary.PassedSuites)
	assert.Len(t, reporter.dirs, 1)
}

func TestPipeline_ExecuteAll(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(loginDef()))

	factory := &stubFactory{
		session: &stubSession{
			title:  "Login - Example",
			exists: true,
		},
	}
	r := newTestRunner(t, reg, factory)

	reporter := &recordingReporter{name: "recording"}
	p := NewPipeline(r, WithReporters(reporter))

	// An empty ID list runs everything registered.
	results, err := p.Execute(
		context.Background(), nil, suite.NewConfig(""),
	)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestPipeline_ReporterFailure(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(loginDef()))

	factory := &stubFactory{
		session: &stubSession{
			title:  "Login - Example",
			exists: true,
		},
	}
	r := newTestRunner(t, reg, factory)

	reporter := &recordingReporter{
		name: "broken",
		err:  errors.New("disk full"),
	}
	p := NewPipeline(r, WithReporters(reporter))

	results, err := p.Execute(
		context.Background(),
		[]suite.ID{"login"},
		suite.NewConfig(""),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reporter broken failed")
	// Execution results survive the reporting failure.
	require.Len(t, results, 1)
	assert.Equal(t, suite.StatusPassed, results[0].Status)
}

func TestPipeline_JSONReporterIntegration(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(loginDef()))

	factory := &stubFactory{
		session: &stubSession{
			title:  "Login - Example",
			exists: true,
		},
	}
	r := newTestRunner(t, reg, factory)

	dir := t.TempDir()
	p := NewPipeline(
		r,
		WithReporters(report.NewJSONReporter(true)),
		WithReportDir(dir),
	)

	_, err := p.Execute(
		context.Background(),
		[]suite.ID{"login"},
		suite.NewConfig(""),
	)
	require.NoError(t, err)
	assert.FileExists(t, dir+"/summary.json")
	assert.FileExists(t, dir+"/suite_login.json")
}
