package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"digital.vasic.webassert/pkg/suite"
)

// HTMLReporter generates HTML reports from suite results.
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// Name identifies the reporter.
func (r *HTMLReporter) Name() string {
	return "html"
}

// Write saves an HTML summary page and one page per suite
// result into outputDir.
func (r *HTMLReporter) Write(
	outputDir string,
	summary *Summary,
	results []*suite.Result,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	summaryData, err := r.GenerateSummary(summary, results)
	if err != nil {
		return err
	}
	summaryPath := filepath.Join(outputDir, "summary.html")
	if err := os.WriteFile(
		summaryPath, summaryData, 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write HTML summary: %w", err,
		)
	}

	for _, result := range results {
		if result == nil {
			continue
		}
		data, err := r.GenerateReport(result)
		if err != nil {
			return err
		}
		path := filepath.Join(
			outputDir,
			fmt.Sprintf("suite_%s.html", result.SuiteID),
		)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf(
				"failed to write HTML result %s: %w",
				result.SuiteID, err,
			)
		}
	}

	return nil
}

// GenerateReport creates an HTML report for a single suite
// result.
func (r *HTMLReporter) GenerateReport(
	result *suite.Result,
) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteResult(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteResult writes an HTML report to the specified writer.
func (r *HTMLReporter) WriteResult(
	w io.Writer,
	result *suite.Result,
) error {
	r.writeHeader(w, "Suite Report: "+result.SuiteName)

	fmt.Fprintf(
		w,
		"<h1>Suite Report: %s</h1>\n",
		html.EscapeString(result.SuiteName),
	)
	fmt.Fprintf(
		w,
		"<p><strong>Suite ID:</strong> %s</p>\n",
		html.EscapeString(string(result.SuiteID)),
	)
	fmt.Fprintf(
		w,
		"<p><strong>Run ID:</strong> %s</p>\n",
		html.EscapeString(result.RunID),
	)
	fmt.Fprintf(
		w,
		"<p><strong>Generated:</strong> %s</p>\n",
		result.EndTime.Format(time.RFC3339),
	)

	r.writeSummaryTable(w, result)
	r.writeStepsSection(w, result)

	r.writeFooter(w)
	return nil
}

func (r *HTMLReporter) writeSummaryTable(
	w io.Writer,
	result *suite.Result,
) {
	statusClass := "status-passed"
	if result.Status != suite.StatusPassed {
		statusClass = "status-failed"
	}

	fmt.Fprintln(w, "<h2>Summary</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(w, "<tr><th>Metric</th><th>Value</th></tr>")
	fmt.Fprintf(
		w,
		"<tr><td>Status</td><td class=\"%s\">"+
			"<strong>%s</strong></td></tr>\n",
		statusClass, strings.ToUpper(result.Status),
	)
	fmt.Fprintf(
		w,
		"<tr><td>Start Time</td><td>%s</td></tr>\n",
		result.StartTime.Format(time.RFC3339),
	)
	fmt.Fprintf(
		w,
		"<tr><td>End Time</td><td>%s</td></tr>\n",
		result.EndTime.Format(time.RFC3339),
	)
	fmt.Fprintf(
		w,
		"<tr><td>Duration</td><td>%v</td></tr>\n",
		result.Duration,
	)

	if result.Error != "" {
		fmt.Fprintf(
			w,
			"<tr><td>Error</td>"+
				"<td class=\"status-failed\">%s</td></tr>\n",
			html.EscapeString(result.Error),
		)
	}

	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeStepsSection(
	w io.Writer,
	result *suite.Result,
) {
	if len(result.Steps) == 0 {
		return
	}

	fmt.Fprintln(w, "<h2>Steps</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(
		w,
		"<tr><th>Step</th><th>Kind</th>"+
			"<th>Passed</th><th>Message</th>"+
			"<th>Duration</th></tr>",
	)

	passedCount := 0
	for _, s := range result.Steps {
		passedStr := "No"
		cls := "status-failed"
		if s.Passed {
			passedStr = "Yes"
			cls = "status-passed"
			passedCount++
		}
		fmt.Fprintf(
			w,
			"<tr><td>%s</td><td>%s</td>"+
				"<td class=\"%s\">%s</td>"+
				"<td>%s</td><td>%v</td></tr>\n",
			html.EscapeString(s.Name),
			html.EscapeString(s.Kind),
			cls, passedStr,
			html.EscapeString(s.Message),
			s.Duration,
		)
	}

	fmt.Fprintln(w, "</table>")

	total := len(result.Steps)
	pct := float64(passedCount) / float64(total) * 100
	fmt.Fprintf(
		w,
		"<p><strong>Pass Rate:</strong> %d/%d (%.0f%%)</p>\n",
		passedCount, total, pct,
	)
}

// GenerateSummary creates an HTML summary of all suite
// results.
func (r *HTMLReporter) GenerateSummary(
	summary *Summary,
	results []*suite.Result,
) ([]byte, error) {
	var buf bytes.Buffer

	r.writeHeader(&buf, "Suite Run Summary")

	fmt.Fprintln(&buf, "<h1>Suite Run Summary</h1>")
	fmt.Fprintf(
		&buf,
		"<p><strong>Generated:</strong> %s</p>\n",
		summary.GeneratedAt.Format(time.RFC3339),
	)

	r.writeOverview(&buf, summary)
	r.writeStats(&buf, summary)
	r.writeDetails(&buf, results)
	r.writeFooter(&buf)

	return buf.Bytes(), nil
}

func (r *HTMLReporter) writeOverview(
	w io.Writer,
	summary *Summary,
) {
	fmt.Fprintln(w, "<h2>Overview</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(
		w,
		"<tr><th>Suite</th><th>Status</th>"+
			"<th>Duration</th><th>Steps</th></tr>",
	)

	for _, s := range summary.Suites {
		cls := "status-passed"
		if s.Status != suite.StatusPassed {
			cls = "status-failed"
		}
		fmt.Fprintf(
			w,
			"<tr><td>%s</td>"+
				"<td class=\"%s\">%s</td>"+
				"<td>%v</td><td>%d/%d</td></tr>\n",
			html.EscapeString(s.SuiteName),
			cls, strings.ToUpper(s.Status),
			s.Duration,
			s.StepsPassed, s.StepsTotal,
		)
	}

	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeStats(
	w io.Writer,
	summary *Summary,
) {
	fmt.Fprintln(w, "<h2>Statistics</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(w, "<tr><th>Metric</th><th>Value</th></tr>")
	fmt.Fprintf(
		w,
		"<tr><td>Total Suites</td><td>%d</td></tr>\n",
		summary.TotalSuites,
	)
	fmt.Fprintf(
		w,
		"<tr><td>Passed</td><td>%d</td></tr>\n",
		summary.PassedSuites,
	)
	fmt.Fprintf(
		w,
		"<tr><td>Failed</td><td>%d</td></tr>\n",
		summary.FailedSuites,
	)
	fmt.Fprintf(
		w,
		"<tr><td>Pass Rate</td><td>%.0f%%</td></tr>\n",
		summary.PassRate*100,
	)
	fmt.Fprintf(
		w,
		"<tr><td>Total Duration</td><td>%v</td></tr>\n",
		summary.TotalDuration,
	)
	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeDetails(
	w io.Writer,
	results []*suite.Result,
) {
	fmt.Fprintln(w, "<h2>Suite Details</h2>")

	for _, result := range results {
		if result == nil {
			continue
		}
		fmt.Fprintf(
			w,
			"<h3>%s</h3>\n",
			html.EscapeString(result.SuiteName),
		)
		fmt.Fprintf(
			w,
			"<p><strong>Status:</strong> %s</p>\n",
			strings.ToUpper(result.Status),
		)
		fmt.Fprintf(
			w,
			"<p><strong>Duration:</strong> %v</p>\n",
			result.Duration,
		)

		if result.Error != "" {
			fmt.Fprintf(
				w,
				"<p><strong>Error:</strong> %s</p>\n",
				html.EscapeString(result.Error),
			)
		}
	}
}

func (r *HTMLReporter) writeHeader(w io.Writer, title string) {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
body {
  font-family: -apple-system, BlinkMacSystemFont,
    "Segoe UI", Roboto, sans-serif;
  max-width: 960px;
  margin: 0 auto;
  padding: 20px;
  color: #333;
  background: #f9f9f9;
}
h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
h2 { color: #2c3e50; margin-top: 30px; }
h3 { color: #34495e; }
table {
  border-collapse: collapse;
  width: 100%%;
  margin: 10px 0;
  background: #fff;
}
th, td {
  border: 1px solid #ddd;
  padding: 8px 12px;
  text-align: left;
}
th { background: #3498db; color: #fff; }
tr:nth-child(even) { background: #f2f2f2; }
.status-passed { color: #27ae60; font-weight: bold; }
.status-failed { color: #e74c3c; font-weight: bold; }
code {
  background: #ecf0f1;
  padding: 2px 6px;
  border-radius: 3px;
  font-size: 0.9em;
}
footer {
  margin-top: 40px;
  padding-top: 10px;
  border-top: 1px solid #ddd;
  color: #7f8c8d;
  font-size: 0.9em;
}
</style>
</head>
<body>
`, html.EscapeString(title))
}

func (r *HTMLReporter) writeFooter(w io.Writer) {
	fmt.Fprintln(w, "<footer>")
	fmt.Fprintln(w, "<p>Generated by webassert</p>")
	fmt.Fprintln(w, "</footer>")
	fmt.Fprintln(w, "</body>")
	fmt.Fprintln(w, "</html>")
}
