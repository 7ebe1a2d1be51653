package lvlog

import "github.com/willibrandon/lvlog/core"

// Fatal logs at fatal level. It does not exit the process.
func (l *Logger) Fatal(args ...any) (string, bool, error) {
	return l.Log(prepend(core.FatalLevel, args)...)
}

// Error logs at error level.
func (l *Logger) Error(args ...any) (string, bool, error) {
	return l.Log(prepend(core.ErrorLevel, args)...)
}

// Warn logs at warn level.
func (l *Logger) Warn(args ...any) (string, bool, error) {
	return l.Log(prepend(core.WarnLevel, args)...)
}

// Info logs at info level.
func (l *Logger) Info(args ...any) (string, bool, error) {
	return l.Log(prepend(core.InfoLevel, args)...)
}

// Debug logs at debug level.
func (l *Logger) Debug(args ...any) (string, bool, error) {
	return l.Log(prepend(core.DebugLevel, args)...)
}

func prepend(level core.Level, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, level.String())
	return append(out, args...)
}
