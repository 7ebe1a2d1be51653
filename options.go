package lvlog

import (
	"errors"
	"io"
	"time"

	"github.com/willibrandon/lvlog/core"
	"github.com/willibrandon/lvlog/sinks"
)

// ErrNoSink is returned by New when WithSink is given a nil sink.
var ErrNoSink = errors.New("lvlog: nil sink")

// config holds the configuration for building a logger.
type config struct {
	level       core.Level
	levelSwitch *LevelSwitch
	format      core.FormatFunc
	clock       func() time.Time
	sink        core.Sink
	opened      []core.Sink // sinks opened by options, closed if not selected
	err         error       // first error encountered during configuration
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithLevel sets the initial threshold. Invalid levels are ignored.
func WithLevel(level core.Level) Option {
	return func(c *config) {
		if level.Valid() {
			c.level = level
		}
	}
}

// WithLevelSwitch shares a level switch with the logger. When a switch is
// provided it takes precedence over WithLevel.
func WithLevelSwitch(levelSwitch *LevelSwitch) Option {
	return func(c *config) {
		c.levelSwitch = levelSwitch
	}
}

// WithFormat replaces the line formatter. A nil formatter keeps the default.
func WithFormat(format core.FormatFunc) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithClock sets the time source passed to the formatter.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithSink writes to the given sink. The last sink option wins.
func WithSink(sink core.Sink) Option {
	return func(c *config) {
		if c.err != nil {
			return
		}
		if sink == nil {
			c.err = ErrNoSink
			return
		}
		c.sink = sink
	}
}

// WithConsole writes to the process standard output.
func WithConsole() Option {
	return WithSink(sinks.NewConsoleSink())
}

// WithWriter writes to w through a console sink.
func WithWriter(w io.Writer) Option {
	return WithSink(sinks.NewConsoleSinkWithWriter(w))
}

// WithFile appends to the file at path. The file is opened when the option
// is applied; a failure is returned from New.
func WithFile(path string) Option {
	return func(c *config) {
		if c.err != nil {
			return
		}
		sink, err := sinks.NewFileSink(path)
		if err != nil {
			c.err = err
			return
		}
		c.opened = append(c.opened, sink)
		c.sink = sink
	}
}
