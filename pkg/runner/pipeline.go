package runner

import (
	"context"
	"fmt"
	"time"

	"digital.vasic.webassert/pkg/logging"
	"digital.vasic.webassert/pkg/report"
	"digital.vasic.webassert/pkg/suite"
)

// Pipeline ties suite execution and report generation into one
// operation: run the requested suites, summarize the outcome,
// and hand the results to every configured reporter.
type Pipeline struct {
	runner    Runner
	reporters []report.Reporter
	reportDir string
	logger    logging.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithReporters sets the reporters that receive the run
// summary after execution.
func WithReporters(reporters ...report.Reporter) PipelineOption {
	return func(p *Pipeline) {
		p.reporters = append(p.reporters, reporters...)
	}
}

// WithReportDir sets the directory report files are written
// to. Defaults to "results/reports".
func WithReportDir(dir string) PipelineOption {
	return func(p *Pipeline) {
		p.reportDir = dir
	}
}

// WithPipelineLogger sets the structured logger for pipeline
// events.
func WithPipelineLogger(logger logging.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates a pipeline around the given runner.
func NewPipeline(
	runner Runner,
	opts ...PipelineOption,
) *Pipeline {
	p := &Pipeline{
		runner:    runner,
		reportDir: "results/reports",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute runs the given suites and writes reports. An empty
// ID list runs every registered suite in dependency order.
// Execution results are returned even when a reporter fails.
func (p *Pipeline) Execute(
	ctx context.Context,
	ids []suite.ID,
	config *suite.Config,
) ([]*suite.Result, error) {
	started := time.Now()

	var (
		results []*suite.Result
		runErr  error
	)
	if len(ids) == 0 {
		results, runErr = p.runner.RunAll(ctx, config)
	} else {
		results, runErr = p.runner.RunSequence(ctx, ids, config)
	}

	if p.logger != nil {
		p.logger.Info("pipeline_executed",
			logging.Field{Key: "suites", Value: len(results)},
			logging.Field{
				Key:   "duration_seconds",
				Value: time.Since(started).Seconds(),
			},
		)
	}

	summary := report.Summarize(results)

	for _, reporter := range p.reporters {
		if err := reporter.Write(
			p.reportDir, summary, results,
		); err != nil {
			if runErr == nil {
				runErr = fmt.Errorf(
					"reporter %s failed: %w",
					reporter.Name(), err,
				)
			} else if p.logger != nil {
				p.logger.Warn("reporter_warning",
					logging.Field{
						Key: "reporter", Value: reporter.Name(),
					},
					logging.Field{
						Key: "warning", Value: err.Error(),
					},
				)
			}
		}
	}

	return results, runErr
}
