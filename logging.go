// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"github.com/rs/zerolog"

	"github.com/stoutio/httpr/request"
)

// LogHandler returns an event handler that writes structured logs for
// request attempts using the given zerolog logger. Attempt starts are
// logged at debug level; attempt outcomes at info level on success
// and warn level on failure; the execution summary at info level.
//
// Nothing is logged unless the handler is installed, so the library
// stays silent by default. Install it for the events of interest, or
// for all of them with InstallLogHandler.
func LogHandler(log *zerolog.Logger) Handler {
	return HandlerFunc(func(evt Event, e *request.Execution) {
		switch evt {
		case BeforeAttempt:
			log.Debug().
				Str("method", e.Request.Method).
				Str("url", e.Request.URL.Redacted()).
				Int("attempt", e.Attempt).
				Msg("attempt start")
		case AfterAttempt:
			ev := log.Info()
			if e.Err != nil {
				ev = log.Warn().Err(e.Err)
			}
			ev.Str("method", e.Request.Method).
				Str("url", e.Request.URL.Redacted()).
				Int("attempt", e.Attempt).
				Int("status", e.StatusCode()).
				Dur("elapsed", e.Duration()).
				Msg("attempt end")
		case AfterExecutionEnd:
			ev := log.Info()
			if e.Err != nil {
				ev = log.Warn().Err(e.Err)
			}
			ev.Str("method", e.Plan.Method).
				Str("url", e.Plan.URL.Redacted()).
				Int("attempts", e.Attempt+1).
				Int("status", e.StatusCode()).
				Dur("elapsed", e.Duration()).
				Msg("execution end")
		}
	})
}

// InstallLogHandler installs LogHandler(log) into g for the attempt
// and execution lifecycle events it reports on.
func InstallLogHandler(g *HandlerGroup, log *zerolog.Logger) {
	h := LogHandler(log)
	g.PushBack(BeforeAttempt, h)
	g.PushBack(AfterAttempt, h)
	g.PushBack(AfterExecutionEnd, h)
}
