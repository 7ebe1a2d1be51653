package core

import "testing"

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		expected Level
		ok       bool
	}{
		{"fatal", FatalLevel, true},
		{"error", ErrorLevel, true},
		{"warn", WarnLevel, true},
		{"info", InfoLevel, true},
		{"debug", DebugLevel, true},
		{"INFO", 0, false},
		{"warning", 0, false},
		{"", 0, false},
		{" info", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := ParseLevel(tc.name)
			if ok != tc.ok {
				t.Fatalf("ParseLevel(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
			if ok && level != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.name, level, tc.expected)
			}
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	levels := Levels()
	if len(levels) != 5 {
		t.Fatalf("Expected 5 levels, got %d", len(levels))
	}
	for i, level := range levels {
		if int(level) != i {
			t.Errorf("Level %v has rank %d, want %d", level, int(level), i)
		}
	}
	if !(FatalLevel < ErrorLevel && ErrorLevel < WarnLevel && WarnLevel < InfoLevel && InfoLevel < DebugLevel) {
		t.Error("Levels are not ordered from most to least severe")
	}
}

func TestLevelString(t *testing.T) {
	if got := WarnLevel.String(); got != "warn" {
		t.Errorf("Expected warn, got %q", got)
	}
	if got := FatalLevel.Upper(); got != "FATAL" {
		t.Errorf("Expected FATAL, got %q", got)
	}
	if got := Level(9).String(); got != "Level(9)" {
		t.Errorf("Expected Level(9), got %q", got)
	}
	if Level(-1).Valid() || Level(5).Valid() {
		t.Error("Out of range levels reported as valid")
	}
}

func TestLevelText(t *testing.T) {
	for _, level := range Levels() {
		text, err := level.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", level, err)
		}
		var parsed Level
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if parsed != level {
			t.Errorf("Expected %v, got %v", level, parsed)
		}
	}

	var l Level
	if err := l.UnmarshalText([]byte("verbose")); err == nil {
		t.Error("Expected error for unknown level name")
	}
	if _, err := Level(7).MarshalText(); err == nil {
		t.Error("Expected error for out of range level")
	}
}
