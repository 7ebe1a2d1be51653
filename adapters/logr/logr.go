// Package logr lets an lvlog Logger serve as the backend of a logr.Logger,
// the logging interface used across the Kubernetes ecosystem.
//
//	import (
//	    "github.com/willibrandon/lvlog"
//	    lvlogr "github.com/willibrandon/lvlog/adapters/logr"
//	)
//
//	logger, err := lvlogr.NewLogger(lvlog.WithLevel(core.DebugLevel))
//	if err != nil {
//	    return err
//	}
//	logger.Info("reconciling", "namespace", "default", "name", "my-app")
//	logger.Error(err, "failed to update resource")
//
// V-levels map to lvlog levels as follows:
//   - V(0) → info
//   - V(1+) → debug
//
// Key/value pairs are appended to the message as key=value.
package logr

import (
	"github.com/go-logr/logr"

	"github.com/willibrandon/lvlog"
)

// NewLogger creates a logr.Logger backed by a new lvlog Logger built from
// options. Construction errors, such as an unopenable file, are returned.
func NewLogger(options ...lvlog.Option) (logr.Logger, error) {
	logger, err := lvlog.New(options...)
	if err != nil {
		return logr.Discard(), err
	}
	return logr.New(NewLogrSink(logger)), nil
}
