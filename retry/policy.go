// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/stoutio/httpr/request"
)

// A Decision is the verdict a Policy renders after each attempt in an
// HTTP request plan execution.
type Decision int

const (
	// Terminal means the outcome of the last attempt stands: a success
	// is returned as the result, and a non-eligible failure is
	// surfaced immediately, regardless of remaining retry budget.
	Terminal Decision = iota
	// Again means the last attempt failed in a retry-eligible way and
	// budget remains, so another attempt should be made after a wait.
	Again
	// Exhausted means the last attempt failed in a retry-eligible way
	// but the retry budget is consumed. The client gives up and wraps
	// the last failure in an exhaustion error.
	Exhausted
)

var decisionNames = []string{"Terminal", "Again", "Exhausted"}

// String returns the name of the decision.
func (d Decision) String() string {
	if d < Terminal || d > Exhausted {
		return "Unknown"
	}
	return decisionNames[int(d)]
}

// A Policy controls if and how retries are done during an HTTP
// request plan execution. After every attempt, the policy renders a
// Decision; when the decision is Again, the policy is further
// consulted for the wait duration before the next attempt (unless the
// server supplied a usable Retry-After hint, which takes precedence).
//
// A Policy is immutable once constructed and must be safe for
// concurrent use by multiple goroutines; a single Policy value is
// typically shared by every execution a client runs.
//
// Construct a Policy with NewPolicy from a retry-eligibility Decider,
// a budget Decider, and a Waiter, or use the built-in DefaultPolicy
// or Never.
type Policy interface {
	// Decide renders the retry verdict for the most recent attempt.
	Decide(e *request.Execution) Decision
	// Wait returns the duration to wait before the next attempt. It
	// is only consulted after Decide returned Again. A return value
	// of Stop aborts the execution with an exhaustion error even
	// though attempt budget remains.
	Wait(e *request.Execution) time.Duration
}

// DefaultPolicy is a general-purpose retry policy suitable for common
// use cases: DefaultEligibility for outcome classification, up to
// DefaultTimes retries, and DefaultWaiter for backoff.
var DefaultPolicy Policy = NewPolicy(DefaultEligibility, Times(DefaultTimes), DefaultWaiter)

// Never is a policy that never retries. It is useful if you want the
// other features of the client but do not want retries.
var Never Policy = NewPolicy(never, Times(0), NewFixedWaiter(0))

var never DeciderFunc = func(_ *request.Execution) bool { return false }

type policy struct {
	eligible Decider
	budget   Decider
	waiter   Waiter
}

// NewPolicy composes an eligibility Decider, a budget Decider, and a
// Waiter into a retry Policy.
//
// The eligibility decider classifies the outcome of the last attempt:
// false means the outcome is terminal (a success, a non-retryable
// status, or a retryable status on a non-eligible method). The budget
// decider is only consulted for eligible failures: false converts the
// failure into Exhausted.
func NewPolicy(eligible, budget Decider, w Waiter) Policy {
	if eligible == nil || budget == nil || w == nil {
		panic("httpr/retry: nil policy component")
	}
	return policy{eligible: eligible, budget: budget, waiter: w}
}

func (p policy) Decide(e *request.Execution) Decision {
	if !p.eligible.Decide(e) {
		return Terminal
	}
	if !p.budget.Decide(e) {
		return Exhausted
	}
	return Again
}

func (p policy) Wait(e *request.Execution) time.Duration {
	return p.waiter.Wait(e)
}
