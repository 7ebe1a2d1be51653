//go:build !windows

package sinks

// enableWindowsVTProcessing is a no-op on non-Windows platforms.
func enableWindowsVTProcessing() {}
