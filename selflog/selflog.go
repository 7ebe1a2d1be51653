// Package selflog provides internal diagnostic logging for lvlog.
//
// Loggers and sinks report problems here that a caller may not otherwise see:
// rejected level names, failed writes, failed closes. Output is disabled
// until Enable or EnableFunc is called.
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Messages are formatted as:
//
//	2025-01-29T15:30:45Z [component] message details
package selflog

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

var (
	outputWriter atomic.Pointer[io.Writer]
	outputFunc   atomic.Pointer[func(string)]
)

// Enable activates self-logging to the provided writer.
// The writer should be thread-safe or wrapped with Sync().
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	outputFunc.Store(nil)
	outputWriter.Store(&w)
}

// EnableFunc activates self-logging using a callback function.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	outputWriter.Store(nil)
	outputFunc.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	outputWriter.Store(nil)
	outputFunc.Store(nil)
}

// Printf logs an internal diagnostic message. The format string should
// start with the component in square brackets, e.g. "[file] write failed: %v".
func Printf(format string, args ...any) {
	w := outputWriter.Load()
	fn := outputFunc.Load()
	if w == nil && fn == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)

	if w != nil {
		fmt.Fprintln(*w, line)
	} else if fn != nil {
		(*fn)(line)
	}
}

// IsEnabled returns true if selflog is currently enabled.
func IsEnabled() bool {
	return outputWriter.Load() != nil || outputFunc.Load() != nil
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps a writer to make it thread-safe.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}
