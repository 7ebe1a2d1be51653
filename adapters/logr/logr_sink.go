package logr

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/willibrandon/lvlog"
	"github.com/willibrandon/lvlog/core"
	"github.com/willibrandon/lvlog/internal/inspect"
	"github.com/willibrandon/lvlog/selflog"
)

// LogrSink implements logr.LogSink on top of an lvlog Logger.
//
// Names given through WithName are joined with dots and prefixed to the
// message. Values from WithValues precede the per-call key/value pairs.
type LogrSink struct {
	logger *lvlog.Logger
	name   string
	values []any
}

var _ logr.LogSink = (*LogrSink)(nil)

// NewLogrSink creates a new logr.LogSink that writes to logger.
//
//	logrLogger := logr.New(lvlogr.NewLogrSink(logger))
func NewLogrSink(logger *lvlog.Logger) *LogrSink {
	return &LogrSink{logger: logger}
}

// Init is a no-op; lvlog records no caller information.
func (s *LogrSink) Init(logr.RuntimeInfo) {}

// Enabled tests whether this LogSink is enabled at the given V-level.
func (s *LogrSink) Enabled(level int) bool {
	return s.logger.IsEnabled(logrLevelToLvlog(level))
}

// Info logs a non-error message at the level mapped from the V-level.
func (s *LogrSink) Info(level int, msg string, keysAndValues ...any) {
	s.write(logrLevelToLvlog(level), msg, keysAndValues, nil)
}

// Error logs msg at error level with err appended as error=<text>.
func (s *LogrSink) Error(err error, msg string, keysAndValues ...any) {
	s.write(core.ErrorLevel, msg, keysAndValues, err)
}

// WithValues returns a new LogSink with additional key/value pairs.
func (s *LogrSink) WithValues(keysAndValues ...any) logr.LogSink {
	values := make([]any, 0, len(s.values)+len(keysAndValues))
	values = append(values, s.values...)
	values = append(values, keysAndValues...)
	return &LogrSink{
		logger: s.logger,
		name:   s.name,
		values: values,
	}
}

// WithName returns a new LogSink with name appended to the logger name.
func (s *LogrSink) WithName(name string) logr.LogSink {
	newName := name
	if s.name != "" {
		newName = s.name + "." + name
	}
	return &LogrSink{
		logger: s.logger,
		name:   newName,
		values: s.values,
	}
}

func (s *LogrSink) write(level core.Level, msg string, keysAndValues []any, err error) {
	if s.name != "" {
		msg = s.name + ": " + msg
	}

	args := []any{level, msg}
	args = appendPairs(args, s.values)
	args = appendPairs(args, keysAndValues)
	if err != nil {
		args = append(args, "error="+err.Error())
	}

	if _, _, werr := s.logger.Log(args...); werr != nil {
		selflog.Printf("[logr] write failed: %v", werr)
	}
}

// appendPairs renders key/value pairs as key=value strings. A trailing key
// without a value is rendered with <nil>.
func appendPairs(args []any, keysAndValues []any) []any {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		var value any
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}
		args = append(args, key+"="+inspect.Value(value))
	}
	return args
}

// logrLevelToLvlog converts logr V-levels: 0=info, 1+=debug.
func logrLevelToLvlog(level int) core.Level {
	if level <= 0 {
		return core.InfoLevel
	}
	return core.DebugLevel
}
