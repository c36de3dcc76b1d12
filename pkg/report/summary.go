package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"digital.vasic.webassert/pkg/suite"
)

// Summary represents an aggregated summary of all suite runs.
type Summary struct {
	ID            string         `json:"id"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Suites        []SuiteSummary `json:"suites"`
	TotalSuites   int            `json:"total_suites"`
	PassedSuites  int            `json:"passed_suites"`
	FailedSuites  int            `json:"failed_suites"`
	TotalSteps    int            `json:"total_steps"`
	PassedSteps   int            `json:"passed_steps"`
	TotalDuration time.Duration  `json:"total_duration"`
	PassRate      float64        `json:"pass_rate"`
}

// SuiteSummary represents a summary of a single suite run.
type SuiteSummary struct {
	SuiteID     suite.ID      `json:"suite_id"`
	SuiteName   string        `json:"suite_name"`
	RunID       string        `json:"run_id"`
	Status      string        `json:"status"`
	Duration    time.Duration `json:"duration"`
	StepsPassed int           `json:"steps_passed"`
	StepsTotal  int           `json:"steps_total"`
	Error       string        `json:"error,omitempty"`
}

// Summarize creates a run summary from suite results. Nil
// results (from aborted parallel runs) are skipped.
func Summarize(results []*suite.Result) *Summary {
	summary := &Summary{
		ID: fmt.Sprintf(
			"summary_%s",
			time.Now().Format("20060102_150405"),
		),
		GeneratedAt: time.Now(),
		Suites: make(
			[]SuiteSummary, 0, len(results),
		),
	}

	for _, r := range results {
		if r == nil {
			continue
		}

		stepsPassed := 0
		for _, s := range r.Steps {
			if s.Passed {
				stepsPassed++
			}
		}

		ss := SuiteSummary{
			SuiteID:     r.SuiteID,
			SuiteName:   r.SuiteName,
			RunID:       r.RunID,
			Status:      r.Status,
			Duration:    r.Duration,
			StepsPassed: stepsPassed,
			StepsTotal:  len(r.Steps),
			Error:       r.Error,
		}

		summary.Suites = append(summary.Suites, ss)
		summary.TotalSuites++
		summary.TotalDuration += r.Duration
		summary.TotalSteps += len(r.Steps)
		summary.PassedSteps += stepsPassed

		if r.Status == suite.StatusPassed {
			summary.PassedSuites++
		} else {
			summary.FailedSuites++
		}
	}

	if summary.TotalSuites > 0 {
		summary.PassRate =
			float64(summary.PassedSuites) /
				float64(summary.TotalSuites)
	}

	return summary
}

// MarkdownReporter writes the run summary as Markdown plus a
// timestamped JSON copy, with "latest" symlinks pointing at the
// newest pair.
type MarkdownReporter struct{}

// NewMarkdownReporter creates a Markdown summary reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{}
}

// Name identifies the reporter.
func (r *MarkdownReporter) Name() string {
	return "markdown"
}

// Write saves the summary to both JSON and Markdown files in
// the given output directory.
func (r *MarkdownReporter) Write(
	outputDir string,
	summary *Summary,
	_ []*suite.Result,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir,
		fmt.Sprintf("summary_%s.json", ts),
	)
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf(
			"failed to write JSON summary: %w", err,
		)
	}

	mdPath := filepath.Join(
		outputDir,
		fmt.Sprintf("summary_%s.md", ts),
	)
	mdContent := generateSummaryMarkdown(summary)
	if err := os.WriteFile(
		mdPath, []byte(mdContent), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}

// generateSummaryMarkdown creates markdown from a run summary.
func generateSummaryMarkdown(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Suite Run Summary\n\n")
	sb.WriteString(
		fmt.Sprintf(
			"**Summary ID:** %s\n\n", summary.ID,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"**Generated:** %s\n\n",
			summary.GeneratedAt.Format(time.RFC3339),
		),
	)

	sb.WriteString("## Overview\n\n")
	sb.WriteString(
		"| Suite | Status | Duration | Steps |\n",
	)
	sb.WriteString(
		"|-------|--------|----------|-------|\n",
	)

	for _, s := range summary.Suites {
		status := strings.ToUpper(s.Status)
		steps := fmt.Sprintf(
			"%d/%d", s.StepsPassed, s.StepsTotal,
		)
		sb.WriteString(
			fmt.Sprintf(
				"| %s | %s | %v | %s |\n",
				s.SuiteName, status, s.Duration, steps,
			),
		)
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(
		fmt.Sprintf(
			"| Total Suites | %d |\n", summary.TotalSuites,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Passed | %d |\n", summary.PassedSuites,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Failed | %d |\n", summary.FailedSuites,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Steps Passed | %d/%d |\n",
			summary.PassedSteps, summary.TotalSteps,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Pass Rate | %.0f%% |\n",
			summary.PassRate*100,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Total Duration | %v |\n",
			summary.TotalDuration,
		),
	)

	return sb.String()
}
