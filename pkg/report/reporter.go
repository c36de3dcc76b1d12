// Package report provides report generation for suite results.
package report

import (
	"io"

	"digital.vasic.webassert/pkg/suite"
)

// Reporter defines the interface for generating suite run
// reports. A reporter writes its artifacts into the output
// directory handed to Write.
type Reporter interface {
	// Name identifies the reporter in logs and errors.
	Name() string

	// Write persists the run summary and individual results
	// into outputDir.
	Write(
		outputDir string,
		summary *Summary,
		results []*suite.Result,
	) error
}

// ResultWriter is implemented by reporters that can stream a
// single suite result to an arbitrary writer.
type ResultWriter interface {
	// WriteResult writes a report for one result to w.
	WriteResult(w io.Writer, result *suite.Result) error
}
