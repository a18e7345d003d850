// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/stoutio/httpr/request"
)

// NewBackoffWaiter constructs a Waiter backed by the
// github.com/cenkalti/backoff library.
//
// Because a backoff.BackOff instance is stateful, newBackOff is a
// factory: it is invoked once per plan execution, and the resulting
// instance is carried on the execution for its remaining waits. This
// keeps the returned Waiter safe for concurrent use across executions
// while preserving the library's per-sequence state, including its
// elapsed time accounting.
//
// When the underlying instance returns backoff.Stop (for example
// because its MaxElapsedTime ceiling would be exceeded), Wait returns
// Stop and the client gives up with an exhaustion error even if
// attempt budget remains.
//
//	waiter := retry.NewBackoffWaiter(func() backoff.BackOff {
//		b := backoff.NewExponentialBackOff()
//		b.InitialInterval = 100 * time.Millisecond
//		b.MaxElapsedTime = time.Minute
//		return b
//	})
//	policy := retry.NewPolicy(retry.DefaultEligibility, retry.Times(5), waiter)
func NewBackoffWaiter(newBackOff func() backoff.BackOff) Waiter {
	if newBackOff == nil {
		panic("httpr/retry: nil backoff factory")
	}
	return &backoffWaiter{newBackOff: newBackOff}
}

type backoffWaiter struct {
	newBackOff func() backoff.BackOff
}

func (w *backoffWaiter) Wait(e *request.Execution) time.Duration {
	b, _ := e.Value(w).(backoff.BackOff)
	if b == nil {
		b = w.newBackOff()
		e.SetValue(w, b)
	}
	d := b.NextBackOff()
	if d == backoff.Stop {
		return Stop
	}
	return d
}
