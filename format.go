package lvlog

import (
	"time"

	"github.com/fatih/color"

	"github.com/willibrandon/lvlog/core"
)

// DefaultFormat renders "[LEVEL] message". The timestamp is not included.
func DefaultFormat(level core.Level, _ time.Time, message string) string {
	return "[" + level.Upper() + "] " + message
}

// TimestampFormat renders "2006-01-02T15:04:05Z07:00 [LEVEL] message".
func TimestampFormat(level core.Level, timestamp time.Time, message string) string {
	return timestamp.Format(time.RFC3339) + " " + DefaultFormat(level, timestamp, message)
}

var levelColors = map[core.Level]*color.Color{
	core.FatalLevel: color.New(color.FgHiWhite, color.BgRed, color.Bold),
	core.ErrorLevel: color.New(color.FgRed, color.Bold),
	core.WarnLevel:  color.New(color.FgYellow),
	core.InfoLevel:  color.New(color.FgCyan),
	core.DebugLevel: color.New(color.FgHiBlack),
}

// ColorFormat is DefaultFormat with the level tag coloured by severity.
// Colour is dropped when color.NoColor is set, which fatih/color does for
// NO_COLOR and for non-terminal stdout.
func ColorFormat(level core.Level, _ time.Time, message string) string {
	tag := "[" + level.Upper() + "]"
	if c, ok := levelColors[level]; ok {
		tag = c.Sprint(tag)
	}
	return tag + " " + message
}
