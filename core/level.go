package core

import (
	"fmt"
	"strings"
)

// Level specifies the severity of a log record.
//
// Lower values are more severe. A record is written when its level is less
// than or equal to the logger's threshold.
type Level int

const (
	// FatalLevel is for unrecoverable failures. It always passes the threshold.
	FatalLevel Level = iota

	// ErrorLevel is for errors.
	ErrorLevel

	// WarnLevel is for warnings.
	WarnLevel

	// InfoLevel is for informational messages. It is the default threshold.
	InfoLevel

	// DebugLevel is for debugging information.
	DebugLevel
)

var levelNames = [...]string{"fatal", "error", "warn", "info", "debug"}

// Levels returns all severities ordered from most to least severe.
func Levels() []Level {
	return []Level{FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel}
}

// ParseLevel returns the level with the given name. Matching is exact and
// case-sensitive: "warn" is a level, "WARN" and "warning" are not.
func ParseLevel(name string) (Level, bool) {
	for i, n := range levelNames {
		if n == name {
			return Level(i), true
		}
	}
	return 0, false
}

// Valid reports whether l is one of the five defined severities.
func (l Level) Valid() bool {
	return l >= FatalLevel && l <= DebugLevel
}

// String returns the lower-case level name.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Upper returns the upper-case level name used in rendered lines.
func (l Level) Upper() string {
	return strings.ToUpper(l.String())
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid level %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, ok := ParseLevel(string(text))
	if !ok {
		return fmt.Errorf("unknown level %q", text)
	}
	*l = parsed
	return nil
}
