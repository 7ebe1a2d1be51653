package lvlog

import (
	"sync"
	"time"

	"github.com/willibrandon/lvlog/core"
	"github.com/willibrandon/lvlog/internal/inspect"
	"github.com/willibrandon/lvlog/selflog"
	"github.com/willibrandon/lvlog/sinks"
)

// Logger filters records against a threshold, renders them to a single line
// and writes the line to exactly one sink chosen at construction.
type Logger struct {
	sink        core.Sink
	levelSwitch *LevelSwitch
	clock       func() time.Time

	formatMu sync.RWMutex
	format   core.FormatFunc

	// writeMu keeps format and write of one record together so lines reach
	// the sink in call order.
	writeMu sync.Mutex
}

// New creates a logger. Without a sink option it writes to standard output.
// The threshold defaults to core.InfoLevel.
func New(opts ...Option) (*Logger, error) {
	c := &config{
		level:  core.InfoLevel,
		format: DefaultFormat,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, s := range c.opened {
		if c.err != nil || s != c.sink {
			if err := s.Close(); err != nil {
				selflog.Printf("[logger] close of unused sink failed: %v", err)
			}
		}
	}
	if c.err != nil {
		return nil, c.err
	}

	if c.sink == nil {
		c.sink = sinks.NewConsoleSink()
	}
	if c.levelSwitch == nil {
		c.levelSwitch = NewLevelSwitch(c.level)
	}
	if c.format == nil {
		c.format = DefaultFormat
	}

	return &Logger{
		sink:        c.sink,
		levelSwitch: c.levelSwitch,
		clock:       c.clock,
		format:      c.format,
	}, nil
}

// Create returns a logger writing to standard output when path is empty,
// otherwise appending to the file at path.
func Create(path string) (*Logger, error) {
	if path == "" {
		return New()
	}
	return New(WithFile(path))
}

// SetLevel sets the threshold by name. Unknown names leave the threshold
// unchanged and return false.
func (l *Logger) SetLevel(name string) bool {
	level, ok := core.ParseLevel(name)
	if !ok {
		selflog.Printf("[logger] unknown level %q ignored", name)
		return false
	}
	return l.levelSwitch.SetLevel(level)
}

// SetThreshold sets the threshold. Out of range levels are rejected.
func (l *Logger) SetThreshold(level core.Level) bool {
	if !l.levelSwitch.SetLevel(level) {
		selflog.Printf("[logger] invalid level %d ignored", int(level))
		return false
	}
	return true
}

// Level returns the current threshold.
func (l *Logger) Level() core.Level {
	return l.levelSwitch.Level()
}

// IsEnabled reports whether a record at level would be written.
func (l *Logger) IsEnabled(level core.Level) bool {
	return l.levelSwitch.IsEnabled(level)
}

// Format renders a record with the logger's formatter.
func (l *Logger) Format(level core.Level, timestamp time.Time, message string) string {
	l.formatMu.RLock()
	format := l.format
	l.formatMu.RUnlock()
	return format(level, timestamp, message)
}

// SetFormat replaces the formatter. nil restores DefaultFormat.
func (l *Logger) SetFormat(format core.FormatFunc) {
	if format == nil {
		format = DefaultFormat
	}
	l.formatMu.Lock()
	l.format = format
	l.formatMu.Unlock()
}

// Log writes a record. If the first argument is a level name ("fatal",
// "error", "warn", "info", "debug") or a core.Level, it selects the level and
// is not part of the message. Otherwise the record is logged at the current
// threshold.
//
// Each remaining argument is appended to the message after a single space.
// Strings are used verbatim; other values are rendered structurally.
//
// A record below the threshold returns ("", false, nil) and writes nothing.
// Otherwise Log returns the line as handed to the sink, including its
// trailing newline, ok=true, and the sink's write error if any.
func (l *Logger) Log(args ...any) (line string, ok bool, err error) {
	threshold := l.levelSwitch.Level()
	level := threshold
	if len(args) > 0 {
		if explicit, isLevel := levelArg(args[0]); isLevel {
			level = explicit
			args = args[1:]
		}
	}

	if level > threshold {
		return "", false, nil
	}

	message := inspect.Join(args)

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	line = l.Format(level, l.clock(), message) + "\n"
	err = l.sink.WriteLine(line)
	return line, true, err
}

// Close releases the sink. Writes after Close fail with core.ErrSinkClosed
// for sinks that own a resource.
func (l *Logger) Close() error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	return l.sink.Close()
}

// levelArg reports whether arg names a level.
func levelArg(arg any) (core.Level, bool) {
	switch v := arg.(type) {
	case string:
		return core.ParseLevel(v)
	case core.Level:
		return v, v.Valid()
	}
	return 0, false
}
