package app

import (
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"nonsense", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")
	logger.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("suppressed levels leaked: %q", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("enabled levels missing: %q", out)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})

	logger.Info("before")
	logger.SetLevel(LogLevelDebug)
	logger.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("message logged below level: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("message missing after SetLevel: %q", out)
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	derived := logger.WithField("session", "abc123")

	derived.Info("with field")
	logger.Info("without field")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "{session=abc123}") {
		t.Errorf("derived logger missing field: %q", lines[0])
	}
	if strings.Contains(lines[1], "session=") {
		t.Errorf("field leaked to parent logger: %q", lines[1])
	}
}

func TestLoggerFieldsSorted(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf}).
		WithField("zeta", 1).
		WithField("alpha", 2)

	logger.Info("msg")

	out := buf.String()
	if strings.Index(out, "alpha=") > strings.Index(out, "zeta=") {
		t.Errorf("fields not sorted: %q", out)
	}
}

func TestLoggerPrefix(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "gridpaint"})

	logger.Info("hello")

	if !strings.Contains(buf.String(), "gridpaint: hello") {
		t.Errorf("prefix missing: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic and must not write anywhere.
	NullLogger.Error("dropped")
	NullLogger.WithField("k", "v").Info("also dropped")
}

func TestLoggerFormatArgs(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.Info("canvas %dx%d", 40, 20)

	if !strings.Contains(buf.String(), "canvas 40x20") {
		t.Errorf("args not formatted: %q", buf.String())
	}
}
