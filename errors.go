// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"errors"
	"fmt"
)

// An ExhaustedError is returned by Client when a retry-eligible
// failure could not be retried because the retry budget was consumed
// or the policy's waiter signalled a stop. It distinguishes "gave up
// after N attempts" from "failed immediately, non-retryable": the
// latter never produces an ExhaustedError.
//
// The error wraps the last observed failure so the caller can inspect
// the underlying cause with errors.As and errors.Is.
type ExhaustedError struct {
	// Attempts is the total number of attempts made, including the
	// initial one.
	Attempts int
	// Status is the HTTP status code of the last attempt's response,
	// or 0 if the last attempt failed with a transport error.
	Status int
	// Err is the transport error from the last attempt, or nil if the
	// last attempt received an HTTP response.
	Err error
}

func (e *ExhaustedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("httpr: retries exhausted after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("httpr: retries exhausted after %d attempts: last status %d", e.Attempts, e.Status)
}

// Unwrap returns the last transport error, if any, allowing
// errors.Is and errors.As to reach the underlying cause.
func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the last observed failure was a timeout.
func (e *ExhaustedError) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// IsExhausted reports whether err, or an error it wraps, indicates
// that an execution gave up after consuming its retry budget.
func IsExhausted(err error) bool {
	var ee *ExhaustedError
	return errors.As(err, &ee)
}
