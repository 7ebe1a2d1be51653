package sinks

import (
	"sync"

	"github.com/willibrandon/lvlog/core"
)

// MemorySink stores rendered lines in memory for testing purposes.
type MemorySink struct {
	lines []string
	err   error
	mu    sync.RWMutex
}

var _ core.Sink = (*MemorySink)(nil)

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		lines: make([]string, 0),
	}
}

// WriteLine stores the line, or returns the error set by FailWith.
func (m *MemorySink) WriteLine(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.lines = append(m.lines, line)
	return nil
}

// FailWith makes subsequent writes return err. Pass nil to recover.
func (m *MemorySink) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Close does nothing for memory sink.
func (m *MemorySink) Close() error {
	return nil
}

// Lines returns a copy of all stored lines.
func (m *MemorySink) Lines() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.lines))
	copy(result, m.lines)
	return result
}

// Clear removes all stored lines.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = m.lines[:0]
}

// Count returns the number of stored lines.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lines)
}

// Last returns the most recent line, or "" if nothing was written.
func (m *MemorySink) Last() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.lines) == 0 {
		return ""
	}
	return m.lines[len(m.lines)-1]
}
