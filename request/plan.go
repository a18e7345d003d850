// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"
)

const nilCtxMsg = "httpr/request: nil context"

// A Plan is a logical HTTP request suitable for execution by a
// retrying client.
//
// Unlike the lower-level http.Request, which can only be sent once, a
// Plan can produce any number of equivalent http.Request values, one
// per attempt. To guarantee this, the request body is fully buffered
// into a byte slice when the plan is constructed, so replaying the
// body on a retry always yields byte-identical content even when the
// original body was a single-use stream.
//
// Like http.Request, a Plan has a context which governs the entire
// plan execution, including retry waits, and can be used to cancel an
// in-flight execution at any time.
type Plan struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string

	// URL specifies the URL to access.
	URL *urlpkg.URL

	// Header contains the request header fields sent with every
	// attempt.
	Header http.Header

	// Body is the pre-buffered request body. A nil or empty body means
	// no request body is sent.
	Body []byte

	// Close stipulates whether to close the connection after each
	// attempt, preventing re-use of TCP connections between attempts,
	// as if Transport.DisableKeepAlives were set.
	Close bool

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host is sent.
	Host string

	// ctx governs the whole plan execution. It should only be replaced
	// by copying the whole Plan using WithContext.
	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. Readers are drained and
// buffered; an io.ReadCloser is closed after buffering.
func NewPlan(method, url string, body interface{}) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url, body)
}

// NewPlanWithContext returns a new Plan given a method, URL, and
// optional body.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. Readers are drained and
// buffered; an io.ReadCloser is closed after buffering.
func NewPlanWithContext(ctx context.Context, method, url string, body interface{}) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("httpr/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
		Host:   u.Host,
	}, nil
}

// Context returns the plan's context. The context controls
// cancellation of the overall plan execution, including any retry
// wait in progress. To change the context, use WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// AddCookie adds a cookie to the plan. Per RFC 6265 section 5.4,
// AddCookie does not attach more than one Cookie header field, so all
// cookies are written into the same line, separated by semicolons.
func (p *Plan) AddCookie(c *http.Cookie) {
	c2 := &http.Cookie{Name: c.Name, Value: c.Value}
	s := c2.String()
	if h := p.Header.Get("Cookie"); h != "" {
		p.Header.Set("Cookie", h+"; "+s)
	} else {
		p.Header.Set("Cookie", s)
	}
}

// SetBasicAuth sets the plan's Authorization header to use HTTP Basic
// Authentication with the provided username and password, which are
// not encrypted.
func (p *Plan) SetBasicAuth(username, password string) {
	auth := username + ":" + password
	p.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(auth)))
}

// ToRequest creates an HTTP request for one attempt of the plan. The
// context of the new request is set to ctx, which must not be nil.
//
// Each call produces a fresh body reader over the same buffered bytes,
// so every attempt sends an identical body.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r, _ := http.NewRequestWithContext(ctx, "GET", "", nil)
	r.Method = p.Method
	r.URL = p.URL
	r.Header = p.Header
	if len(p.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(p.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.Body)), nil
		}
		r.ContentLength = int64(len(p.Body))
	}
	r.Close = p.Close
	r.Host = p.Host
	return r
}

func validMethod(method string) bool {
	// token grammar from RFC 7230 section 3.2.6. The empty string is
	// interpreted as GET before validation, so length is never zero.
	return strings.IndexFunc(method, func(r rune) bool { return !isTokenRune(r) }) == -1
}

func isTokenRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	}
	switch r {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// hasPort reports whether a string of the form "host", "host:port", or
// "[ipv6::address]:port" includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort strips the empty port in ":port" to "" as mandated
// by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
