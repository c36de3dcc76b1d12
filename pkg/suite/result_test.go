package suite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllPassed(t *testing.T) {
	tests := []struct {
		name   string
		steps  []StepResult
		passed bool
	}{
		{"no steps", nil, true},
		{
			"all pass",
			[]StepResult{{Passed: true}, {Passed: true}},
			true,
		},
		{
			"one fails",
			[]StepResult{{Passed: true}, {Passed: false}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{Steps: tt.steps}
			assert.Equal(t, tt.passed, r.AllPassed())
		})
	}
}

func TestIsFinal(t *testing.T) {
	final := []string{
		StatusPassed, StatusFailed, StatusSkipped,
		StatusTimedOut, StatusStuck, StatusError,
	}
	for _, status := range final {
		r := &Result{Status: status}
		assert.True(t, r.IsFinal(), status)
	}

	for _, status := range []string{StatusPending, StatusRunning} {
		r := &Result{Status: status}
		assert.False(t, r.IsFinal(), status)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("login")

	assert.Equal(t, ID("login"), cfg.SuiteID)
	assert.Empty(t, cfg.ResultsDir)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Environment)
	assert.NotNil(t, cfg.Dependencies)
}

func TestConfigGetEnv(t *testing.T) {
	cfg := NewConfig("login")
	cfg.Environment["BASE_URL"] = "https://example.com"

	assert.Equal(
		t, "https://example.com",
		cfg.GetEnv("BASE_URL", "fallback"),
	)
	assert.Equal(
		t, "fallback", cfg.GetEnv("MISSING", "fallback"),
	)

	var nilEnv Config
	assert.Equal(t, "x", nilEnv.GetEnv("ANY", "x"))
}
