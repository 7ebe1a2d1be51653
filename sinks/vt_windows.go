//go:build windows

package sinks

import (
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

var vtProcessingEnabled sync.Once

// enableWindowsVTProcessing lets Windows 10+ consoles interpret the ANSI
// sequences produced by coloured formatters.
func enableWindowsVTProcessing() {
	vtProcessingEnabled.Do(func() {
		enableForHandle(windows.Handle(os.Stdout.Fd()))
	})
}

func enableForHandle(handle windows.Handle) {
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return // not a console
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return
	}
	windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
