package sinks

import (
	"errors"
	"testing"
)

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()

	if sink.Last() != "" {
		t.Error("Expected empty last line")
	}

	sink.WriteLine("a\n")
	sink.WriteLine("b\n")

	if sink.Count() != 2 {
		t.Fatalf("Expected 2 lines, got %d", sink.Count())
	}
	if sink.Last() != "b\n" {
		t.Errorf("Expected last line b, got %q", sink.Last())
	}

	lines := sink.Lines()
	lines[0] = "changed"
	if sink.Lines()[0] != "a\n" {
		t.Error("Lines must return a copy")
	}

	sink.Clear()
	if sink.Count() != 0 {
		t.Errorf("Expected 0 lines after clear, got %d", sink.Count())
	}
}

func TestMemorySinkFailWith(t *testing.T) {
	sink := NewMemorySink()
	full := errors.New("disk full")

	sink.FailWith(full)
	if err := sink.WriteLine("x\n"); !errors.Is(err, full) {
		t.Errorf("Expected %v, got %v", full, err)
	}
	if sink.Count() != 0 {
		t.Error("Failed write must not be stored")
	}

	sink.FailWith(nil)
	if err := sink.WriteLine("y\n"); err != nil {
		t.Errorf("Expected recovery, got %v", err)
	}
}
