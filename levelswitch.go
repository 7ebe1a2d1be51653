package lvlog

import (
	"sync/atomic"

	"github.com/willibrandon/lvlog/core"
)

// LevelSwitch holds a logger threshold that can be changed at runtime.
// It is safe for concurrent use and may be shared by several loggers.
type LevelSwitch struct {
	level atomic.Int32
}

// NewLevelSwitch creates a switch with the given threshold. An invalid level
// falls back to core.InfoLevel.
func NewLevelSwitch(initial core.Level) *LevelSwitch {
	ls := &LevelSwitch{}
	if !ls.SetLevel(initial) {
		ls.level.Store(int32(core.InfoLevel))
	}
	return ls
}

// Level returns the current threshold.
func (ls *LevelSwitch) Level() core.Level {
	return core.Level(ls.level.Load())
}

// SetLevel updates the threshold. Levels outside the defined range are
// rejected and leave the threshold unchanged.
func (ls *LevelSwitch) SetLevel(level core.Level) bool {
	if !level.Valid() {
		return false
	}
	ls.level.Store(int32(level))
	return true
}

// IsEnabled returns true if a record at level would be written.
func (ls *LevelSwitch) IsEnabled(level core.Level) bool {
	return level.Valid() && level <= ls.Level()
}

// Fatal sets the threshold to Fatal.
func (ls *LevelSwitch) Fatal() *LevelSwitch {
	ls.SetLevel(core.FatalLevel)
	return ls
}

// Error sets the threshold to Error.
func (ls *LevelSwitch) Error() *LevelSwitch {
	ls.SetLevel(core.ErrorLevel)
	return ls
}

// Warn sets the threshold to Warn.
func (ls *LevelSwitch) Warn() *LevelSwitch {
	ls.SetLevel(core.WarnLevel)
	return ls
}

// Info sets the threshold to Info.
func (ls *LevelSwitch) Info() *LevelSwitch {
	ls.SetLevel(core.InfoLevel)
	return ls
}

// Debug sets the threshold to Debug.
func (ls *LevelSwitch) Debug() *LevelSwitch {
	ls.SetLevel(core.DebugLevel)
	return ls
}
