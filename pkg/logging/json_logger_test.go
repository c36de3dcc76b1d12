package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedJSONLogger(
	level LogLevel,
	verbose bool,
) (*JSONLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &JSONLogger{
		output:  &buf,
		level:   level,
		verbose: verbose,
		fields:  make(map[string]any),
	}, &buf
}

func TestJSONLogger_Info(t *testing.T) {
	logger, buf := newBufferedJSONLogger(LevelInfo, false)

	logger.Info("suite started", LogField("suite_id", "login"))

	var entry LogEntry
	require.NoError(
		t, json.Unmarshal(buf.Bytes(), &entry),
	)
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "suite started", entry.Message)
	assert.Equal(t, "login", entry.Fields["suite_id"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedJSONLogger(LevelWarn, true)

	logger.Info("filtered out")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestJSONLogger_Debug_NotVerbose(t *testing.T) {
	logger, buf := newBufferedJSONLogger(LevelDebug, false)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestJSONLogger_WithFields(t *testing.T) {
	logger, _ := newBufferedJSONLogger(LevelInfo, false)

	child := logger.WithFields(LogField("run_id", "r-42"))
	jl, ok := child.(*JSONLogger)
	require.True(t, ok)

	var buf bytes.Buffer
	jl.output = &buf
	jl.Info("step done")

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "r-42", entry.Fields["run_id"])
}

func TestJSONLogger_FileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "suite.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
		Level:      LevelInfo,
	})
	require.NoError(t, err)

	logger.Info("written to file")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestJSONLogger_DriverLogs(t *testing.T) {
	dir := t.TempDir()
	cmdPath := filepath.Join(dir, "driver_commands.log")
	resPath := filepath.Join(dir, "driver_results.log")

	logger, err := NewJSONLogger(LoggerConfig{
		DriverCommandLog: cmdPath,
		DriverResultLog:  resPath,
		Level:            LevelInfo,
	})
	require.NoError(t, err)

	logger.LogDriverCommand(CommandLog{
		CommandID: "c1",
		Method:    "GET",
		Endpoint:  "/session/abc/url",
	})
	logger.LogDriverResult(CommandResultLog{
		CommandID:  "c1",
		StatusCode: 200,
	})
	require.NoError(t, logger.Close())

	cmdData, err := os.ReadFile(cmdPath)
	require.NoError(t, err)
	assert.Contains(t, string(cmdData), "/session/abc/url")

	resData, err := os.ReadFile(resPath)
	require.NoError(t, err)
	assert.Contains(t, string(resData), `"status_code":200`)
}

func TestJSONLogger_DriverLogs_NotConfigured(t *testing.T) {
	logger, _ := newBufferedJSONLogger(LevelInfo, false)

	// No dedicated writers configured; must not panic.
	logger.LogDriverCommand(CommandLog{CommandID: "c1"})
	logger.LogDriverResult(CommandResultLog{CommandID: "c1"})
}

func TestJSONLogger_ClosedDropsEntries(t *testing.T) {
	logger, buf := newBufferedJSONLogger(LevelInfo, false)

	require.NoError(t, logger.Close())
	logger.Info("after close")
	assert.Empty(t, buf.String())
}

func TestJSONLogger_JSONLines(t *testing.T) {
	logger, buf := newBufferedJSONLogger(LevelInfo, false)

	logger.Info("one")
	logger.Info("two")

	lines := strings.Split(
		strings.TrimSpace(buf.String()), "\n",
	)
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry LogEntry
		assert.NoError(
			t, json.Unmarshal([]byte(line), &entry),
		)
	}
}

func TestSetupLogging(t *testing.T) {
	dir := t.TempDir()

	logger, err := SetupLogging(dir, true)
	require.NoError(t, err)

	logger.Debug("verbose enabled")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(dir, "suite.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "verbose enabled")

	assert.FileExists(
		t, filepath.Join(dir, "driver_commands.log"),
	)
	assert.FileExists(
		t, filepath.Join(dir, "driver_results.log"),
	)
}
