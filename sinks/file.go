package sinks

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/willibrandon/lvlog/core"
	"github.com/willibrandon/lvlog/selflog"
)

// FileMode is the permission used when a log file is created.
const FileMode os.FileMode = 0o666

// FileSink appends rendered lines to a file.
type FileSink struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	isOpen bool
}

var _ core.Sink = (*FileSink)(nil)

// NewFileSink opens path for appending, creating it if needed, and writes a
// single newline to separate this run from earlier content. Existing content
// is never truncated. Parent directories are not created.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("failed to open log file: empty path")
	}

	fs := &FileSink{path: filepath.Clean(path)}
	if err := fs.open(); err != nil {
		return nil, err
	}
	return fs, nil
}

// Path returns the normalized path of the log file.
func (fs *FileSink) Path() string {
	return fs.path
}

// WriteLine appends the line to the file.
func (fs *FileSink) WriteLine(line string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return core.ErrSinkClosed
	}

	if _, err := fs.file.WriteString(line); err != nil {
		selflog.Printf("[file] write to %s failed: %v", fs.path, err)
		return fmt.Errorf("failed to write to log file: %w", err)
	}
	return nil
}

// Close flushes and closes the file. Closing twice is a no-op.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return nil
	}
	fs.isOpen = false

	if err := fs.file.Sync(); err != nil {
		selflog.Printf("[file] sync of %s failed: %v", fs.path, err)
		fs.file.Close()
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := fs.file.Close(); err != nil {
		selflog.Printf("[file] close of %s failed: %v", fs.path, err)
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// open creates or opens the log file and writes the run separator.
func (fs *FileSink) open() error {
	file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, FileMode)
	if err != nil {
		selflog.Printf("[file] open of %s failed: %v", fs.path, err)
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if _, err := file.WriteString("\n"); err != nil {
		file.Close()
		selflog.Printf("[file] write to %s failed: %v", fs.path, err)
		return fmt.Errorf("failed to write to log file: %w", err)
	}

	fs.file = file
	fs.isOpen = true
	return nil
}
