// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/stoutio/httpr/request"
)

// A Policy directs how the retrying client sets the timeout on each
// individual request attempt within a plan execution.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next request attempt
	// within the plan execution, based on the current execution state.
	Timeout(e *request.Execution) time.Duration
}

// DefaultPolicy is the default timeout policy. It imposes no
// per-attempt timeout: attempt deadlines are the responsibility of
// the underlying transport (or of the plan context), unless a policy
// constructed with Fixed or Adaptive is installed.
var DefaultPolicy Policy = Infinite

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that sets the same timeout value
// d on every attempt. This is the typical timeout behavior supported
// by most retrying HTTP client software.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a timeout policy that varies the next timeout
// value if the previous attempt timed out.
//
// Use Adaptive if the remote service exhibits one-off slow response
// times that are cured by quickly timing out and retrying, but you
// also need to protect against retry storms when the service goes
// through a burst of general slowness.
//
// Parameter usual is the timeout returned for the initial attempt and
// for any retry whose immediately preceding attempt did not time out.
// Parameter after contains the timeouts returned when the previous
// attempt did time out: after[0] following the execution's first
// timeout, after[1] following the second, and so on, with the last
// element repeated once the list is exceeded.
//
// Consider the policy:
//
//	p := timeout.Adaptive(200*time.Millisecond, time.Second, 10*time.Second)
//
// It uses 200 milliseconds as the usual timeout, 1 second after the
// execution's first attempt timeout, and 10 seconds after any
// subsequent one.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(e *request.Execution) time.Duration {
	if !e.Timeout() {
		return p[0]
	}

	i := e.AttemptTimeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}

	return p[i]
}
