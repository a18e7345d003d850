// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stoutio/httpr/request"
)

func TestNewFixedWaiter(t *testing.T) {
	w := NewFixedWaiter(250 * time.Millisecond)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 250*time.Millisecond, w.Wait(&request.Execution{Attempt: i}))
	}
}

func TestNewExpWaiterNoJitter(t *testing.T) {
	// With a nil randomness source the waiter returns the raw ceiling.
	w := NewExpWaiter(50*time.Millisecond, 400*time.Millisecond, nil)
	expect := []time.Duration{
		50 * time.Millisecond,
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		400 * time.Millisecond,
	}
	for i, d := range expect {
		assert.Equal(t, d, w.Wait(&request.Execution{Attempt: i}), "attempt %d", i)
	}
}

func TestNewExpWaiterJitterRange(t *testing.T) {
	w := NewExpWaiter(50*time.Millisecond, time.Second, rand.NewSource(1))
	for i := 0; i < 100; i++ {
		d := w.Wait(&request.Execution{Attempt: i % 8})
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.Less(t, d, time.Second)
	}
}

func TestNewExpWaiterDeterministicSeed(t *testing.T) {
	w1 := NewExpWaiter(50*time.Millisecond, time.Second, rand.NewSource(99))
	w2 := NewExpWaiter(50*time.Millisecond, time.Second, rand.NewSource(99))
	for i := 0; i < 20; i++ {
		e := request.Execution{Attempt: i}
		assert.Equal(t, w1.Wait(&e), w2.Wait(&e), "attempt %d", i)
	}
}

func TestNewExpWaiterHugeAttemptDoesNotOverflow(t *testing.T) {
	w := NewExpWaiter(50*time.Millisecond, time.Second, nil)
	assert.Equal(t, time.Second, w.Wait(&request.Execution{Attempt: 62}))
	assert.Equal(t, time.Second, w.Wait(&request.Execution{Attempt: 63}))
	assert.Equal(t, time.Second, w.Wait(&request.Execution{Attempt: 64}))
}

func TestNewExpWaiterBadArguments(t *testing.T) {
	assert.Panics(t, func() { NewExpWaiter(0, time.Second, nil) })
	assert.Panics(t, func() { NewExpWaiter(time.Second, time.Millisecond, nil) })
}

func TestDefaultWaiterBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		d := DefaultWaiter.Wait(&request.Execution{Attempt: i % 10})
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.Less(t, d, time.Second)
	}
}
