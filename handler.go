// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"github.com/stoutio/httpr/request"
)

// A HandlerGroup is a group of event handler chains which can be
// installed in a Client. Install all handlers before sharing the
// group with a client; a HandlerGroup must not be modified
// concurrently with executions that use it.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the handler chain for
// a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("httpr: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, e *request.Execution) {
	i := int(evt)
	if i < len(g.handlers) {
		for _, h := range g.handlers[i] {
			h.Handle(evt, e)
		}
	}
}

// A Handler handles the occurrence of an event during a request plan
// execution.
type Handler interface {
	Handle(Event, *request.Execution)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with the
// appropriate signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *request.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *request.Execution) {
	f(evt, e)
}
