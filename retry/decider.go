// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"strings"
	"time"

	"github.com/stoutio/httpr/request"
	"github.com/stoutio/httpr/transient"
)

// A Decider makes a boolean judgment about the current state of an
// HTTP request plan execution. Deciders serve two roles in a retry
// Policy: classifying whether the outcome of the last attempt is
// eligible for retry, and deciding whether any retry budget remains.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Times, Before, StatusCode, and
// Methods, and the built-in deciders TransientErr, RetryableStatus,
// and Idempotent; or implement your own. Use DeciderFunc to convert an
// ordinary function into a Decider and to compose deciders logically
// via DeciderFunc.And and DeciderFunc.Or.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as deciders. It implements the Decider interface and
// provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(e *request.Execution) bool

// DefaultTimes is the number of retries DefaultPolicy will allow.
const DefaultTimes = 3

// DefaultEligibility is the default retry eligibility rule. The
// outcome of an attempt is eligible for retry if the plan's method is
// idempotent AND either the response status code is in the default
// retryable set (RetryableStatus) or the attempt failed with a
// transient transport error (TransientErr).
//
// An eligible status code received on a non-idempotent method is
// deliberately not retried: replaying such a request may duplicate
// side effects. Callers who know better can opt in with Methods.
var DefaultEligibility = RetryableStatus.Or(TransientErr).And(Idempotent)

// TransientErr is a decider that reports true if the current error is
// transient according to transient.Categorize.
//
// TransientErr only looks at the error, so it always reports false
// when a valid HTTP response was received. Compose it with a status
// code decider to cover both failure modes.
var TransientErr DeciderFunc = transientErr

// RetryableStatus is a decider that reports true if the last attempt
// received an HTTP response whose status code conventionally signals
// a transient condition: 408 (Request Timeout), 429 (Too Many
// Requests), or any 5xx code except 501 (Not Implemented), which
// indicates a permanent capability gap rather than transient overload.
var RetryableStatus DeciderFunc = retryableStatus

// Idempotent is a decider that reports true if the plan's HTTP method
// is idempotent per RFC 7231: GET, HEAD, PUT, DELETE, OPTIONS, or
// TRACE. An empty method is interpreted as GET.
var Idempotent DeciderFunc = idempotent

// Decide returns the judgment of f about the current HTTP request
// plan execution state.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two deciders into a new decider which reports true if
// both sub-deciders report true, and false otherwise.
//
// Short-circuit logic is used, so g will not be evaluated if f reports
// false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two deciders into a new decider which reports true if
// either of the two sub-deciders reports true, but false if they both
// report false.
//
// Short-circuit logic is used, so g will not be evaluated if f reports
// true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a budget decider which allows up to n retries. The
// returned decider reports true while the execution attempt index
// e.Attempt is less than n, and false afterward, so a policy built
// with Times(n) makes at most n+1 attempts in total.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a budget decider allowing retries until a certain
// amount of time has elapsed since the start of the plan execution.
// The returned decider reports true while the execution duration is
// less than d, and false afterward.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

// StatusCode constructs an eligibility decider keyed on the HTTP
// response status code. If the most recent attempt received a valid
// HTTP response and the response status code is contained in ss, the
// decider reports true. Otherwise it reports false.
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(e *request.Execution) bool {
		for _, s := range ss2 {
			if e.StatusCode() == s {
				return true
			}
		}
		return false
	}
}

// Methods constructs an eligibility decider keyed on the plan's HTTP
// method. The decider reports true if the method is in the allow-list
// ms (compared case-insensitively). Use Methods to opt non-idempotent
// methods into retry, accepting the risk of duplicated side effects:
//
//	eligible := retry.RetryableStatus.Or(retry.TransientErr).
//		And(retry.Idempotent.Or(retry.Methods("POST")))
func Methods(ms ...string) DeciderFunc {
	ms2 := make([]string, len(ms))
	for i, m := range ms {
		ms2[i] = strings.ToUpper(m)
	}
	return func(e *request.Execution) bool {
		m := e.Plan.Method
		if m == "" {
			m = http.MethodGet
		}
		for _, allowed := range ms2 {
			if strings.ToUpper(m) == allowed {
				return true
			}
		}
		return false
	}
}

func transientErr(e *request.Execution) bool {
	return transient.Categorize(e.Err) != transient.Not
}

func retryableStatus(e *request.Execution) bool {
	switch s := e.StatusCode(); {
	case s == http.StatusRequestTimeout, s == http.StatusTooManyRequests:
		return true
	case s >= 500 && s <= 599 && s != http.StatusNotImplemented:
		return true
	}
	return false
}

func idempotent(e *request.Execution) bool {
	switch e.Plan.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete,
		http.MethodOptions, http.MethodTrace, "":
		return true
	}
	return false
}
