// Package zlog provides a zerolog-backed observer for abortscope.
package zlog

import (
	"time"

	"github.com/rs/zerolog"
)

// Observer logs scope lifecycle events through a zerolog.Logger. Per-scope
// creation and pass boundaries log at debug level, per-operation events at
// trace level to keep busy fan-outs quiet by default.
type Observer struct {
	log zerolog.Logger
}

// New returns an Observer writing to log.
func New(log zerolog.Logger) *Observer { return &Observer{log: log} }

func (o *Observer) ScopeCreated() {
	o.log.Debug().Msg("scope created")
}

func (o *Observer) CancelStarted(pending int) {
	o.log.Debug().Int("pending", pending).Msg("cancel pass started")
}

func (o *Observer) OperationCanceled() {
	o.log.Trace().Msg("operation canceled")
}

func (o *Observer) ChildCanceled() {
	o.log.Trace().Msg("child scope canceled")
}

func (o *Observer) CancelFinished(dur time.Duration, ops int) {
	o.log.Debug().
		Dur("duration", dur).
		Int("operations", ops).
		Msg("cancel pass finished")
}
