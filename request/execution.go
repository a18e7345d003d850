// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"time"

	"github.com/stoutio/httpr/transient"
)

// An Execution represents the state of a single Plan execution.
//
// When a plan execution is requested, an Execution is created for it.
// The Execution is updated as the execution progresses (when an HTTP
// response becomes available, or when a retry is started) and is
// ultimately returned as the result of the plan execution.
//
// An Execution is exclusively owned by the goroutine driving its plan;
// it is never shared between concurrent plan executions. Retry and
// timeout policies and event handlers may store values on an Execution
// using SetValue and read them back with Value, but should treat the
// exported fields as read-only, since the execution state drives the
// retry loop.
type Execution struct {
	// Plan specifies the request plan being executed. It is never nil.
	Plan *Plan

	// Start is the start time of the plan execution. It is assigned a
	// non-zero value when the execution starts and is constant
	// thereafter.
	Start time.Time

	// End is the end time of the plan execution. It contains the zero
	// value until the execution ends.
	End time.Time

	// Attempt is the zero-based number of the current attempt. It is
	// zero on the initial attempt, one on the first retry, and so on.
	//
	// When the execution has ended, Attempt contains the zero-based
	// number of the last attempt made, so an execution that ended
	// after an initial attempt plus two retries has Attempt == 2.
	Attempt int

	// AttemptTimeouts counts the attempts that ended in a timeout
	// during the execution. Plan-level timeouts (the plan context
	// deadline being exceeded) do not contribute to the counter.
	AttemptTimeouts int

	// Request is the HTTP request to be sent in the current attempt,
	// or already sent in the last attempt.
	Request *http.Request

	// Response is the HTTP response received in the most recent
	// attempt. It is nil if the most recent attempt ended in an
	// error, or while an attempt is underway.
	Response *http.Response

	// Err is the error received in the most recent attempt, nil if the
	// attempt ended without error. While the execution is in-flight,
	// Err may fluctuate between nil and non-nil values; once the
	// execution has ended it matches the error returned by the client.
	//
	// Transport-level errors always have type *url.Error. An execution
	// that ended because the retry budget or backoff ceiling was
	// consumed carries an *httpr.ExhaustedError.
	Err error

	// Body is the complete response body read after the most recent
	// attempt. It is nil if the attempt ended in an error before the
	// body could be fully read; treat Body as invalid unless Err is
	// nil.
	Body []byte

	// data carries arbitrary values set by policies and handlers.
	data context.Context
}

// StatusCode returns the status code of the HTTP response from the
// most recent attempt, or 0 if there is no HTTP response (the attempt
// ended in an error, or an attempt is underway, or the execution has
// not started).
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// Header returns the HTTP response headers from the most recent
// attempt, or a nil header if there is no HTTP response.
//
// A nil return value is safe for read-only operations, since
// http.Header is a map type.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}
	return e.Response.Header
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has ended, the duration is End minus Start. Otherwise it
// is the current time minus Start, so the return value is
// monotonically non-decreasing over the life of the execution.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}
	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended. Once it returns
// true, there will be no further changes to the execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// indicating a timeout, caused either by an attempt timeout or by a
// plan timeout detected after the most recent attempt.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// SetValue stores an arbitrary value on the execution under key.
//
// The key follows the same rules as the key parameter of
// context.WithValue: it may not be nil, must be comparable, and
// should not be of a built-in type, to avoid collisions between
// different policies or handlers storing data on the same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}
	e.data = context.WithValue(ctx, key, value)
}

// Value returns the value associated with this execution for key, or
// nil if no value is associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	if e.data == nil {
		return nil
	}
	return e.data.Value(key)
}
