// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package governor

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/stoutio/httpr"
)

// A Governor is a middleware that paces request attempts through the
// transport using a token bucket rate limiter. Because every attempt,
// including retries, traverses the middleware chain, the governor
// bounds the aggregate request rate a retrying client can generate,
// protecting a struggling upstream from retry pressure.
//
// A Governor is safe for concurrent use by multiple goroutines; a
// single instance shared between clients enforces one combined rate.
type Governor struct {
	limiter *rate.Limiter
}

// New constructs a Governor from an existing rate limiter.
func New(l *rate.Limiter) *Governor {
	if l == nil {
		panic("httpr/governor: nil limiter")
	}
	return &Governor{limiter: l}
}

// PerSecond constructs a Governor allowing n attempts per second with
// a burst of n.
func PerSecond(n int) *Governor {
	if n < 1 {
		panic("httpr/governor: rate must be positive")
	}
	return New(rate.NewLimiter(rate.Limit(n), n))
}

// Handle blocks until the limiter grants a token or the request's
// context is cancelled, then forwards the request to next. The wait
// is cooperative: only the calling goroutine is suspended.
func (g *Governor) Handle(r *http.Request, next httpr.HTTPDoer) (*http.Response, error) {
	if err := g.limiter.Wait(r.Context()); err != nil {
		return nil, err
	}
	return next.Do(r)
}
