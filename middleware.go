// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"net/http"
)

// A Middleware intercepts individual HTTP request attempts on their
// way to the transport. It receives the request about to be sent and
// the next element of the chain, and must either forward the request
// (possibly modified) via next.Do or produce its own response or
// error.
//
// Middleware composes with the retry layer from below: the retrying
// Client sees the combined behavior of the whole chain as a single
// HTTPDoer, so every attempt, including retries, traverses the full
// chain. Chaining is explicit via Wrap; there is no dynamic lookup.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Middleware interface {
	Handle(r *http.Request, next HTTPDoer) (*http.Response, error)
}

// The MiddlewareFunc type is an adapter to allow the use of ordinary
// functions as middleware. If f is a function with the appropriate
// signature, MiddlewareFunc(f) is a Middleware that calls f.
type MiddlewareFunc func(r *http.Request, next HTTPDoer) (*http.Response, error)

// Handle calls f(r, next).
func (f MiddlewareFunc) Handle(r *http.Request, next HTTPDoer) (*http.Response, error) {
	return f(r, next)
}

// Wrap composes zero or more middleware around an HTTPDoer and
// returns the resulting HTTPDoer. The first middleware is outermost:
// a request passes through mw[0], then mw[1], and so on, before
// reaching d; the response travels back in reverse order.
//
//	client := &httpr.Client{
//		HTTPDoer: httpr.Wrap(http.DefaultClient, authMW, governor.PerSecond(5)),
//	}
func Wrap(d HTTPDoer, mw ...Middleware) HTTPDoer {
	if d == nil {
		panic("httpr: nil doer")
	}
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] == nil {
			panic("httpr: nil middleware")
		}
		d = chained{mw: mw[i], next: d}
	}
	return d
}

type chained struct {
	mw   Middleware
	next HTTPDoer
}

func (c chained) Do(r *http.Request) (*http.Response, error) {
	return c.mw.Handle(r, c.next)
}

// CloseIdleConnections forwards to the wrapped HTTPDoer so a chain
// built by Wrap still honors Client.CloseIdleConnections.
func (c chained) CloseIdleConnections() {
	if ic, ok := c.next.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
