package lvlog

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/willibrandon/lvlog/core"
)

func TestDefaultFormat(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)

	testCases := []struct {
		level    core.Level
		message  string
		expected string
	}{
		{core.FatalLevel, " x", "[FATAL]  x"},
		{core.ErrorLevel, " x", "[ERROR]  x"},
		{core.WarnLevel, " x", "[WARN]  x"},
		{core.InfoLevel, " hello 42", "[INFO]  hello 42"},
		{core.DebugLevel, "", "[DEBUG] "},
	}

	for _, tc := range testCases {
		if got := DefaultFormat(tc.level, ts, tc.message); got != tc.expected {
			t.Errorf("DefaultFormat(%v) = %q, want %q", tc.level, got, tc.expected)
		}
	}

	if DefaultFormat(core.InfoLevel, ts, " x") != DefaultFormat(core.InfoLevel, ts.Add(time.Hour), " x") {
		t.Error("DefaultFormat must ignore the timestamp")
	}
}

func TestTimestampFormat(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	got := TimestampFormat(core.ErrorLevel, ts, " failed")
	expected := "2024-01-15T10:30:45Z [ERROR]  failed"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestColorFormat(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()

	color.NoColor = true
	for _, level := range core.Levels() {
		plain := ColorFormat(level, time.Time{}, " x")
		if plain != DefaultFormat(level, time.Time{}, " x") {
			t.Errorf("Expected plain output without colour, got %q", plain)
		}
	}

	color.NoColor = false
	got := ColorFormat(core.ErrorLevel, time.Time{}, " x")
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Expected ANSI escape, got %q", got)
	}
	if !strings.Contains(got, "[ERROR]") || !strings.HasSuffix(got, "  x") {
		t.Errorf("Expected level tag and message, got %q", got)
	}
}
