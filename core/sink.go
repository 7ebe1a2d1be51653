package core

import (
	"errors"
	"time"
)

// ErrSinkClosed is returned by sinks that are written to after Close.
var ErrSinkClosed = errors.New("sink is closed")

// Sink outputs rendered log lines to a destination.
type Sink interface {
	// WriteLine writes one rendered line. The line already carries its
	// trailing newline. Implementations must serialize concurrent calls.
	WriteLine(line string) error

	// Close releases any resources held by the sink.
	Close() error
}

// FormatFunc renders a record into a single line without the trailing newline.
type FormatFunc func(level Level, timestamp time.Time, message string) string
