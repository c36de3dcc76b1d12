package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"digital.vasic.webassert/pkg/suite"
)

// JSONReporter generates JSON reports from suite results.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Name identifies the reporter.
func (r *JSONReporter) Name() string {
	return "json"
}

// GenerateReport creates a JSON report for a single suite
// result.
func (r *JSONReporter) GenerateReport(
	result *suite.Result,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// jsonSummary is the JSON structure for a full run report: the
// aggregate summary plus every raw result.
type jsonSummary struct {
	Summary *Summary        `json:"summary"`
	Results []*suite.Result `json:"results"`
}

// Write saves the summary and per-suite result files into
// outputDir.
func (r *JSONReporter) Write(
	outputDir string,
	summary *Summary,
	results []*suite.Result,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	full := jsonSummary{Summary: summary, Results: results}

	var (
		data []byte
		err  error
	)
	if r.pretty {
		data, err = json.MarshalIndent(full, "", "  ")
	} else {
		data, err = json.Marshal(full)
	}
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}

	summaryPath := filepath.Join(outputDir, "summary.json")
	if err := os.WriteFile(summaryPath, data, 0644); err != nil {
		return fmt.Errorf(
			"failed to write summary: %w", err,
		)
	}

	for _, result := range results {
		if result == nil {
			continue
		}
		resultData, err := r.GenerateReport(result)
		if err != nil {
			return fmt.Errorf(
				"failed to marshal result %s: %w",
				result.SuiteID, err,
			)
		}
		resultPath := filepath.Join(
			outputDir,
			fmt.Sprintf("suite_%s.json", result.SuiteID),
		)
		if err := os.WriteFile(
			resultPath, resultData, 0644,
		); err != nil {
			return fmt.Errorf(
				"failed to write result %s: %w",
				result.SuiteID, err,
			)
		}
	}

	return nil
}

// WriteResult writes a JSON report for one result to the
// specified writer.
func (r *JSONReporter) WriteResult(
	w io.Writer,
	result *suite.Result,
) error {
	data, err := r.GenerateReport(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
