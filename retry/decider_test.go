// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stoutio/httpr/request"
)

var (
	transientErrs = []error{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ETIMEDOUT,
		&net.DNSError{Err: "no such host", Name: "test.invalid"},
	}
	nonTransientErrs = []error{
		nil,
		errors.New("ain't transient"),
		syscall.EHOSTUNREACH,
		syscall.ENETDOWN,
	}
)

func TestDefaultEligibility(t *testing.T) {
	t.Run("Retryable status codes", func(t *testing.T) {
		codes := []int{408, 429, 500, 502, 503, 504, 599}
		for i, code := range codes {
			e := request.Execution{
				Plan:     &request.Plan{Method: "GET"},
				Response: &http.Response{StatusCode: code},
			}
			t.Run(fmt.Sprintf("codes[%d]=%d", i, code), func(t *testing.T) {
				assert.True(t, DefaultEligibility(&e))
			})
		}
	})
	t.Run("Non-retryable status codes", func(t *testing.T) {
		codes := []int{200, 201, 204, 301, 400, 401, 403, 404, 409, 501}
		for i, code := range codes {
			e := request.Execution{
				Plan:     &request.Plan{Method: "GET"},
				Response: &http.Response{StatusCode: code},
			}
			t.Run(fmt.Sprintf("codes[%d]=%d", i, code), func(t *testing.T) {
				assert.False(t, DefaultEligibility(&e))
			})
		}
	})
	t.Run("Non-idempotent method blocks eligible status", func(t *testing.T) {
		for _, method := range []string{"POST", "PATCH"} {
			e := request.Execution{
				Plan:     &request.Plan{Method: method},
				Response: &http.Response{StatusCode: 503},
			}
			t.Run(method, func(t *testing.T) {
				assert.False(t, DefaultEligibility(&e))
			})
		}
	})
	t.Run("Transient errors", func(t *testing.T) {
		for i, te := range transientErrs {
			e := request.Execution{
				Plan: &request.Plan{Method: "GET"},
				Err:  te,
			}
			t.Run(fmt.Sprintf("transientErrs[%d]=%v", i, te), func(t *testing.T) {
				assert.True(t, DefaultEligibility(&e))
			})
		}
	})
	t.Run("Non-transient errors", func(t *testing.T) {
		for i, nte := range nonTransientErrs {
			e := request.Execution{
				Plan: &request.Plan{Method: "GET"},
				Err:  nte,
			}
			t.Run(fmt.Sprintf("nonTransientErrs[%d]=%v", i, nte), func(t *testing.T) {
				assert.False(t, DefaultEligibility(&e))
			})
		}
	})
	t.Run("Transient error on non-idempotent method", func(t *testing.T) {
		e := request.Execution{
			Plan: &request.Plan{Method: "POST"},
			Err:  syscall.ECONNRESET,
		}
		assert.False(t, DefaultEligibility(&e))
	})
}

func TestTransientErr(t *testing.T) {
	e := request.Execution{}
	for i, te := range transientErrs {
		t.Run(fmt.Sprintf("transientErrs[%d]=%v", i, te), func(t *testing.T) {
			e.Err = te
			assert.True(t, transientErr(&e))
			e.Err = &url.Error{Err: te}
			assert.True(t, transientErr(&e))
		})
	}
	for j, nte := range nonTransientErrs {
		t.Run(fmt.Sprintf("nonTransientErrs[%d]=%v", j, nte), func(t *testing.T) {
			e.Err = nte
			assert.False(t, transientErr(&e))
			e.Err = &url.Error{Err: nte}
			assert.False(t, transientErr(&e))
		})
	}
}

func TestIdempotent(t *testing.T) {
	for _, method := range []string{"GET", "HEAD", "PUT", "DELETE", "OPTIONS", "TRACE", ""} {
		t.Run("yes "+method, func(t *testing.T) {
			e := request.Execution{Plan: &request.Plan{Method: method}}
			assert.True(t, Idempotent(&e))
		})
	}
	for _, method := range []string{"POST", "PATCH", "CONNECT", "PROPFIND"} {
		t.Run("no "+method, func(t *testing.T) {
			e := request.Execution{Plan: &request.Plan{Method: method}}
			assert.False(t, Idempotent(&e))
		})
	}
}

func TestMethods(t *testing.T) {
	allow := Methods("POST", "patch")
	assert.True(t, allow(&request.Execution{Plan: &request.Plan{Method: "POST"}}))
	assert.True(t, allow(&request.Execution{Plan: &request.Plan{Method: "PATCH"}}))
	assert.False(t, allow(&request.Execution{Plan: &request.Plan{Method: "GET"}}))

	get := Methods("GET")
	assert.True(t, get(&request.Execution{Plan: &request.Plan{Method: ""}}), "empty method means GET")

	empty := Methods()
	assert.False(t, empty(&request.Execution{Plan: &request.Plan{Method: "GET"}}))
}

func TestDeciderAnd(t *testing.T) {
	true_ := DeciderFunc(func(_ *request.Execution) bool { return true })
	false_ := DeciderFunc(func(_ *request.Execution) bool { return false })
	assert.True(t, true_.And(true_)(&request.Execution{}))
	assert.False(t, true_.And(false_)(&request.Execution{}))
	assert.False(t, false_.And(true_)(&request.Execution{}))
	assert.False(t, false_.And(false_)(&request.Execution{}))
}

func TestDeciderOr(t *testing.T) {
	true_ := DeciderFunc(func(_ *request.Execution) bool { return true })
	false_ := DeciderFunc(func(_ *request.Execution) bool { return false })
	assert.True(t, true_.Or(true_)(&request.Execution{}))
	assert.True(t, true_.Or(false_)(&request.Execution{}))
	assert.True(t, false_.Or(true_)(&request.Execution{}))
	assert.False(t, false_.Or(false_)(&request.Execution{}))
}

func TestTimes(t *testing.T) {
	zero := Times(0)
	assert.False(t, zero(&request.Execution{}))
	one := Times(1)
	assert.True(t, one(&request.Execution{}))
	assert.False(t, one(&request.Execution{Attempt: 1}))
	two := Times(2)
	assert.True(t, two(&request.Execution{Attempt: 1}))
	assert.False(t, two(&request.Execution{Attempt: 2}))
}

func TestBefore(t *testing.T) {
	e := request.Execution{Start: time.Now()}
	before := Before(time.Minute)
	assert.True(t, before(&e))
	e.End = e.Start.Add(2 * time.Minute)
	assert.False(t, before(&e))
}

func TestStatusCode(t *testing.T) {
	empty := StatusCode()
	assert.False(t, empty(&request.Execution{}))
	one := StatusCode(602)
	assert.False(t, one(&request.Execution{}))
	r := http.Response{}
	e := request.Execution{Response: &r}
	assert.False(t, empty(&e))
	assert.False(t, one(&e))
	r.StatusCode = 602
	assert.True(t, one(&e))
	two := StatusCode(509, 602)
	assert.True(t, two(&e))
	r.StatusCode = 509
	assert.True(t, two(&e))
	r.StatusCode = 508
	assert.False(t, two(&e))
}
