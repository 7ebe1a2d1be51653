// Package testutil holds assertion helpers shared by lvlog tests.
package testutil

import (
	"slices"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error, message string) {
	t.Helper()
	if err != nil {
		if message != "" {
			t.Fatalf("%s: %v", message, err)
		} else {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error, message string) {
	t.Helper()
	if err == nil {
		if message != "" {
			t.Fatal(message)
		} else {
			t.Fatal("Expected error but got nil")
		}
	}
}

// AssertEqual fails the test if actual != expected.
func AssertEqual[T comparable](t *testing.T, actual, expected T, message string) {
	t.Helper()
	if actual != expected {
		if message != "" {
			t.Fatalf("%s: expected %v, got %v", message, expected, actual)
		} else {
			t.Fatalf("Expected %v, got %v", expected, actual)
		}
	}
}

// AssertContains fails the test if the slice doesn't contain the value.
func AssertContains[T comparable](t *testing.T, slice []T, value T, message string) {
	t.Helper()
	if slices.Contains(slice, value) {
		return
	}
	if message != "" {
		t.Fatalf("%s: %v not found in slice", message, value)
	} else {
		t.Fatalf("%v not found in slice", value)
	}
}
