// Package logging provides structured logging for the
// assertion framework with JSON, console, and
// multi-destination output, plus dedicated capture of raw
// browser driver traffic.
package logging

// Logger defines the interface for structured run logging.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning message.
	Warn(msg string, fields ...Field)

	// Error logs an error message.
	Error(msg string, fields ...Field)

	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger with additional default
	// fields attached to every subsequent log entry.
	WithFields(fields ...Field) Logger

	// LogDriverCommand logs an outbound browser driver command.
	LogDriverCommand(command CommandLog)

	// LogDriverResult logs the driver's response to a command.
	LogDriverResult(result CommandResultLog)

	// Close flushes any buffers and releases resources.
	Close() error
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// CommandLog captures an outbound driver command.
type CommandLog struct {
	Timestamp  string `json:"timestamp"`
	CommandID  string `json:"command_id"`
	SessionID  string `json:"session_id,omitempty"`
	Method     string `json:"method"`
	Endpoint   string `json:"endpoint"`
	Body       string `json:"body,omitempty"`
	BodyLength int    `json:"body_length"`
}

// CommandResultLog captures the driver's response to a command.
type CommandResultLog struct {
	Timestamp      string `json:"timestamp"`
	CommandID      string `json:"command_id"`
	StatusCode     int    `json:"status_code"`
	ValuePreview   string `json:"value_preview,omitempty"`
	BodyLength     int    `json:"body_length"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
