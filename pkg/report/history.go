package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"digital.vasic.webassert/pkg/suite"
)

// HistoricalEntry represents a single suite run in the
// historical log.
type HistoricalEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	SuiteID     string    `json:"suite_id"`
	RunID       string    `json:"run_id"`
	Status      string    `json:"status"`
	Duration    string    `json:"duration"`
	StepsPassed int       `json:"steps_passed"`
	StepsTotal  int       `json:"steps_total"`
	ResultsPath string    `json:"results_path"`
}

// AppendToHistory adds an entry to the historical log stored
// at historyPath. Each entry is a single JSON line.
func AppendToHistory(
	historyPath string,
	result *suite.Result,
	resultsPath string,
) error {
	stepsPassed := 0
	for _, s := range result.Steps {
		if s.Passed {
			stepsPassed++
		}
	}

	entry := HistoricalEntry{
		Timestamp:   result.EndTime,
		SuiteID:     string(result.SuiteID),
		RunID:       result.RunID,
		Status:      result.Status,
		Duration:    result.Duration.String(),
		StepsPassed: stepsPassed,
		StepsTotal:  len(result.Steps),
		ResultsPath: resultsPath,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}

// LoadHistory reads all entries from the historical log. A
// missing file yields an empty history.
func LoadHistory(
	historyPath string,
) ([]HistoricalEntry, error) {
	data, err := os.ReadFile(historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf(
			"failed to read history file: %w", err,
		)
	}

	var entries []HistoricalEntry
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var entry HistoricalEntry
		if err := dec.Decode(&entry); err != nil {
			return entries, fmt.Errorf(
				"failed to parse history entry: %w", err,
			)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
