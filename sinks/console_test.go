package sinks

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSinkWithWriter(&buf)

	if err := sink.WriteLine("[INFO]  hello\n"); err != nil {
		t.Fatalf("WriteLine failed: %v", err)
	}
	if err := sink.WriteLine("[WARN]  second\n"); err != nil {
		t.Fatalf("WriteLine failed: %v", err)
	}

	expected := "[INFO]  hello\n[WARN]  second\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleSinkWriteError(t *testing.T) {
	broken := errors.New("broken pipe")
	sink := NewConsoleSinkWithWriter(&failingWriter{err: broken})

	err := sink.WriteLine("line\n")
	if err == nil {
		t.Fatal("Expected write error to be returned")
	}
	if !errors.Is(err, broken) {
		t.Errorf("Expected wrapped %v, got %v", broken, err)
	}
}

func TestConsoleSinkIsTerminal(t *testing.T) {
	sink := NewConsoleSinkWithWriter(&bytes.Buffer{})
	if sink.IsTerminal() {
		t.Error("A buffer is not a terminal")
	}
	if err := sink.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}

func TestConsoleSinkDefaultsToStdout(t *testing.T) {
	if NewConsoleSink().output == nil {
		t.Fatal("Expected stdout writer")
	}
	if NewConsoleSinkWithWriter(nil).output == nil {
		t.Fatal("Expected nil writer to fall back to stdout")
	}
}
