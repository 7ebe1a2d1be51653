package sinks

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/willibrandon/lvlog/core"
	"github.com/willibrandon/lvlog/selflog"
)

// ConsoleSink writes rendered lines to the process standard output, or to
// any writer supplied at construction.
type ConsoleSink struct {
	output io.Writer
	mu     sync.Mutex
}

var _ core.Sink = (*ConsoleSink)(nil)

// NewConsoleSink creates a new console sink that writes to stdout.
func NewConsoleSink() *ConsoleSink {
	enableWindowsVTProcessing()
	return &ConsoleSink{output: os.Stdout}
}

// NewConsoleSinkWithWriter creates a new console sink with a custom writer.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{output: w}
}

// WriteLine writes the line to the underlying writer.
func (cs *ConsoleSink) WriteLine(line string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, err := io.WriteString(cs.output, line); err != nil {
		selflog.Printf("[console] write failed: %v", err)
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

// IsTerminal reports whether the sink writes to an interactive terminal.
func (cs *ConsoleSink) IsTerminal() bool {
	f, ok := cs.output.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Close does nothing; the process owns stdout.
func (cs *ConsoleSink) Close() error {
	return nil
}
