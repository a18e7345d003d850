// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides policies deciding whether a failed HTTP
// request attempt should be retried, and how long to wait before
// retrying.
//
// The interface Policy defines a retry policy. A Policy is constructed
// with NewPolicy from three capabilities: an eligibility Decider
// (classifies the outcome of the last attempt), a budget Decider
// (decides whether attempt budget remains), and a Waiter (computes the
// backoff between attempts). All three have constructors for common
// use cases, so a useful policy can be assembled quickly:
//
//	eligible := retry.RetryableStatus.Or(retry.TransientErr).And(retry.Idempotent)
//	waiter := retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, nil)
//	policy := retry.NewPolicy(eligible, retry.Times(3).And(retry.Before(time.Minute)), waiter)
//
// The backoff math can also be delegated to the cenkalti/backoff
// library via NewBackoffWaiter, which additionally enforces a total
// elapsed time ceiling by returning Stop.
//
// Servers sometimes announce when a client should come back via the
// Retry-After response header. RetryAfter parses that hint; the client
// in the root package gives a well-formed hint precedence over the
// policy's Waiter for that step.
package retry
