// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stoutio/httpr/request"
)

func TestNewPolicyDecide(t *testing.T) {
	p := NewPolicy(DefaultEligibility, Times(2), NewFixedWaiter(time.Millisecond))

	t.Run("Terminal on success", func(t *testing.T) {
		e := request.Execution{
			Plan:     &request.Plan{Method: "GET"},
			Response: &http.Response{StatusCode: 200},
		}
		assert.Equal(t, Terminal, p.Decide(&e))
	})
	t.Run("Terminal on non-retryable status", func(t *testing.T) {
		e := request.Execution{
			Plan:     &request.Plan{Method: "GET"},
			Response: &http.Response{StatusCode: 404},
		}
		assert.Equal(t, Terminal, p.Decide(&e))
	})
	t.Run("Terminal on eligible status with non-idempotent method", func(t *testing.T) {
		e := request.Execution{
			Plan:     &request.Plan{Method: "POST"},
			Response: &http.Response{StatusCode: 503},
		}
		assert.Equal(t, Terminal, p.Decide(&e), "ambiguity resolves to terminal")
	})
	t.Run("Again while budget remains", func(t *testing.T) {
		e := request.Execution{
			Plan:     &request.Plan{Method: "GET"},
			Response: &http.Response{StatusCode: 503},
		}
		assert.Equal(t, Again, p.Decide(&e))
		e.Attempt = 1
		assert.Equal(t, Again, p.Decide(&e))
	})
	t.Run("Exhausted when budget consumed", func(t *testing.T) {
		e := request.Execution{
			Plan:     &request.Plan{Method: "GET"},
			Response: &http.Response{StatusCode: 503},
			Attempt:  2,
		}
		assert.Equal(t, Exhausted, p.Decide(&e))
	})
}

func TestNewPolicyWait(t *testing.T) {
	p := NewPolicy(DefaultEligibility, Times(2), NewFixedWaiter(42*time.Millisecond))
	assert.Equal(t, 42*time.Millisecond, p.Wait(&request.Execution{}))
}

func TestNewPolicyNilComponents(t *testing.T) {
	assert.Panics(t, func() { NewPolicy(nil, Times(1), NewFixedWaiter(0)) })
	assert.Panics(t, func() { NewPolicy(DefaultEligibility, nil, NewFixedWaiter(0)) })
	assert.Panics(t, func() { NewPolicy(DefaultEligibility, Times(1), nil) })
}

func TestNever(t *testing.T) {
	e := request.Execution{
		Plan:     &request.Plan{Method: "GET"},
		Response: &http.Response{StatusCode: 503},
	}
	assert.Equal(t, Terminal, Never.Decide(&e))
}

func TestDefaultPolicy(t *testing.T) {
	e := request.Execution{
		Plan:     &request.Plan{Method: "GET"},
		Response: &http.Response{StatusCode: 503},
	}
	for i := 0; i < DefaultTimes; i++ {
		e.Attempt = i
		assert.Equal(t, Again, DefaultPolicy.Decide(&e), "attempt %d", i)
	}
	e.Attempt = DefaultTimes
	assert.Equal(t, Exhausted, DefaultPolicy.Decide(&e))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "Terminal", Terminal.String())
	assert.Equal(t, "Again", Again.String())
	assert.Equal(t, "Exhausted", Exhausted.String())
	assert.Equal(t, "Unknown", Decision(17).String())
}
