// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package governor

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/stoutio/httpr"
)

type countingDoer struct {
	n     int
	times []time.Time
}

func (d *countingDoer) Do(*http.Request) (*http.Response, error) {
	d.n++
	d.times = append(d.times, time.Now())
	return &http.Response{StatusCode: 200, Header: http.Header{}, Body: http.NoBody}, nil
}

func newRequest(t *testing.T, ctx context.Context) *http.Request {
	r, err := http.NewRequestWithContext(ctx, "GET", "http://example.com", nil)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "httpr/governor: nil limiter", func() { New(nil) })
	})
	t.Run("Valid", func(t *testing.T) {
		assert.NotNil(t, New(rate.NewLimiter(rate.Inf, 0)))
	})
}

func TestPerSecond(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		assert.PanicsWithValue(t, "httpr/governor: rate must be positive", func() { PerSecond(0) })
	})
	t.Run("Negative", func(t *testing.T) {
		assert.PanicsWithValue(t, "httpr/governor: rate must be positive", func() { PerSecond(-3) })
	})
	t.Run("Valid", func(t *testing.T) {
		assert.NotNil(t, PerSecond(100))
	})
}

func TestHandleForwards(t *testing.T) {
	d := &countingDoer{}
	g := New(rate.NewLimiter(rate.Inf, 0))

	resp, err := g.Handle(newRequest(t, context.Background()), d)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 1, d.n)
}

func TestHandlePaces(t *testing.T) {
	d := &countingDoer{}
	// 1 token immediately, then roughly one every 50ms.
	g := New(rate.NewLimiter(rate.Every(50*time.Millisecond), 1))

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := g.Handle(newRequest(t, context.Background()), d)
		require.NoError(t, err)
	}

	require.Equal(t, 3, d.n)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestHandleContextCancelled(t *testing.T) {
	d := &countingDoer{}
	g := New(rate.NewLimiter(rate.Every(time.Hour), 1))

	// Drain the single burst token.
	_, err := g.Handle(newRequest(t, context.Background()), d)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := g.Handle(newRequest(t, ctx), d)

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Equal(t, 1, d.n, "cancelled wait must not reach the transport")
}

func TestGovernorWithClient(t *testing.T) {
	d := &countingDoer{}
	g := New(rate.NewLimiter(rate.Every(30*time.Millisecond), 1))
	cl := &httpr.Client{
		HTTPDoer: httpr.Wrap(d, g),
	}

	start := time.Now()
	_, err := cl.Get("http://example.com")
	_, err2 := cl.Get("http://example.com")

	require.NoError(t, err)
	require.NoError(t, err2)
	assert.Equal(t, 2, d.n)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
