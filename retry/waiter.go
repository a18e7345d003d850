// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"sync"
	"time"

	"github.com/stoutio/httpr/request"
)

// Stop is a sentinel return value for Waiter.Wait indicating that the
// execution should be aborted with an exhaustion error instead of
// waiting, for example because the waiter's total elapsed time ceiling
// would be exceeded.
const Stop time.Duration = -1

// A Waiter computes how long to wait before retrying a failed HTTP
// request attempt. As the attempt number grows, the returned duration
// should be non-decreasing in expectation, and jitter should be
// applied so concurrent clients do not retry in lockstep.
//
// Implementations of Waiter must be safe for concurrent use by
// multiple goroutines.
//
// The client will not consult the Waiter if the policy decision was
// not Again, or if the failed response carried a usable Retry-After
// hint (the hint takes precedence for that step).
type Waiter interface {
	Wait(e *request.Execution) time.Duration
}

// DefaultWaiter is the default retry wait policy. It uses a jittered
// exponential backoff formula with a base wait of 50 milliseconds and
// a maximum wait of 1 second.
var DefaultWaiter = NewExpWaiter(50*time.Millisecond, 1*time.Second, rand.NewSource(time.Now().UnixNano()))

// NewFixedWaiter constructs a Waiter that always returns the given
// duration, producing a constant retry backoff.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.Execution) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter constructs a Waiter implementing an exponential backoff
// formula with optional jitter.
//
// The formula implemented is the "Full Jitter" approach described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// Parameters base and max control the exponential calculation of the
// ceiling:
//
//	ceil := min(base * 2**attempt, max)
//
// Base and max must be positive values, and max must be at least
// equal to base.
//
// Parameter src is the randomness source used to draw a jittered wait
// in [0, ceil). Pass an explicit source (for example one seeded with a
// constant in tests) to make wait sequences deterministic. A nil src
// disables jitter, so the waiter returns ceil on each attempt.
func NewExpWaiter(base, max time.Duration, src rand.Source) Waiter {
	if base < 1 {
		panic("httpr/retry: base must be positive")
	}
	if max < base {
		panic("httpr/retry: max must be at least base")
	}
	w := &jitterExpWaiter{
		base: base,
		max:  max,
	}
	if src != nil {
		w.rand = rand.New(src)
	}
	return w
}

type jitterExpWaiter struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (w *jitterExpWaiter) Wait(e *request.Execution) time.Duration {
	exp := int64(1) << e.Attempt
	if exp < 1 {
		exp = 1<<63 - 1
	}

	ceil := int64(w.base) * exp
	if ceil < int64(w.base) || int64(w.max) < ceil {
		ceil = int64(w.max)
	}

	duration := ceil
	if ceil > 0 && w.rand != nil {
		w.lock.Lock()
		duration = w.rand.Int63n(ceil)
		w.lock.Unlock()
	}

	return time.Duration(duration)
}
