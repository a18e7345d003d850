// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stoutio/httpr/request"
	"github.com/stoutio/httpr/retry"
	"github.com/stoutio/httpr/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package. It is the
// transport collaborator of the retrying client: everything about
// actually sending a request and receiving a response (connections,
// pooling, TLS, redirects) is its responsibility and is treated as
// opaque by this package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response, following
	// the contract documented on the standard library http.Client.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Client is a retrying HTTP client. Its zero value is a valid
// configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as
// the HTTPDoer, retry.DefaultPolicy as the retry policy,
// timeout.DefaultPolicy (no per-attempt timeout) as the timeout
// policy, and an empty handler group.
//
// All configuration is fixed at construction: none of the fields may
// be mutated once the client is in use. A Client holds no per-request
// state of its own, so a single instance is safe for concurrent use
// by any number of goroutines, and should be reused rather than
// created per request (its HTTPDoer typically caches TCP
// connections).
//
// Client interposes a retry decision-and-scheduling layer between the
// caller and the HTTPDoer. On top of the features the HTTPDoer
// provides, it:
//
// • retries failed attempts according to a customizable retry policy,
// re-sending an equivalent request with a freshly replayed body on
// each attempt;
//
// • honors a well-formed Retry-After hint from the server in
// preference to the policy's computed backoff;
//
// • reads and buffers the entire response body into the returned
// Execution;
//
// • invokes user-provided handler functions at designated plug-in
// points within the attempt/retry loop; and
//
// • implements the httpr.Executor interface.
//
// Client's HTTP methods follow the naming and rough parameter schema
// of the Go standard client, with two differences: Do consumes a
// request.Plan, which unlike an http.Request is suitable for multiple
// attempts, and all methods return a request.Execution carrying the
// final outcome plus execution metadata.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses. Use Wrap to compose middleware around it.
	//
	// If HTTPDoer is nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
	// RetryPolicy classifies attempt outcomes, decides when to retry
	// or give up, and computes the backoff between attempts.
	//
	// If RetryPolicy is nil, retry.DefaultPolicy is used.
	RetryPolicy retry.Policy
	// TimeoutPolicy optionally sets timeouts on individual request
	// attempts.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used, which
	// imposes no per-attempt timeout.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during execution of a request plan.
	//
	// If Handlers is nil, no custom handlers are run.
	Handlers *HandlerGroup
}

// Do executes an HTTP request plan and returns the final execution
// state, following the retry and timeout policies set on the Client
// and low-level policy set on the underlying HTTPDoer.
//
// The attempt loop works as follows. The plan is converted into an
// http.Request and sent through the HTTPDoer. The outcome is
// classified by the retry policy: a success or a non-retryable
// failure is terminal and returned immediately; a retryable failure
// with budget remaining leads to a wait and another attempt; a
// retryable failure with the budget consumed, or a Stop signal from
// the policy's waiter, ends the execution with an *ExhaustedError
// wrapping the last failure. The wait before each retry is the
// server's Retry-After hint when the failed response carries a valid
// one, and the policy's computed backoff otherwise.
//
// The wait is a cooperative suspension: it blocks only the calling
// goroutine and is aborted promptly if the plan's context is
// cancelled or times out. Executions for other plans proceed
// independently; no state is shared between them.
//
// An error is returned if the final attempt resulted in an error. A
// non-2XX status code in the final attempt is not an error: the
// response is returned as the result. Transport-level errors have
// type *url.Error; an execution that gave up after consuming its
// budget returns an *ExhaustedError; a cancelled plan returns the
// context's error.
//
// The returned Execution is never nil. If the returned error is nil,
// the Execution contains a non-nil Response and a non-nil (possibly
// empty) Body. If an error was returned, the Err field of the
// Execution references the same error.
//
// For simple use cases, the Get, Head, Post, and PostForm methods may
// prove easier to use than Do.
func (c *Client) Do(p *request.Plan) (*request.Execution, error) {
	e := request.Execution{
		Plan: p,
	}

	doer := c.doer()

	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}

	retryPolicy := c.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = retry.DefaultPolicy
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeExecutionStart, &e)
	e.Start = time.Now()

RetryLoop:
	for {
		sendAndReceive(p, &e, doer, handlers, timeoutPolicy)
		if e.Timeout() {
			e.AttemptTimeouts++
			handlers.run(AfterAttemptTimeout, &e)
		}
		handlers.run(AfterAttempt, &e)
		planCtxErr := p.Context().Err()
		if planCtxErr == context.DeadlineExceeded {
			handlers.run(AfterPlanTimeout, &e)
			break
		} else if planCtxErr != nil {
			e.Err = planCtxErr
			break
		}
		switch retryPolicy.Decide(&e) {
		case retry.Terminal:
			break RetryLoop
		case retry.Exhausted:
			e.Err = exhausted(&e)
			break RetryLoop
		}
		wait, hinted := retry.RetryAfter(e.Header(), time.Now())
		if !hinted {
			wait = retryPolicy.Wait(&e)
		}
		if wait == retry.Stop {
			e.Err = exhausted(&e)
			break
		}
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-p.Context().Done():
			timer.Stop()
			err := p.Context().Err()
			e.Err = urlErrorWrap(p, err)
			if err == context.DeadlineExceeded {
				handlers.run(AfterPlanTimeout, &e)
			}
			break RetryLoop
		}
		e.Response = nil
		e.Err = nil
		e.Body = nil
		e.Attempt++
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, &e)
	return &e, e.Err
}

func sendAndReceive(p *request.Plan, e *request.Execution, doer HTTPDoer, handlers *HandlerGroup, timeoutPolicy timeout.Policy) {
	ctx, cancel := context.WithTimeout(p.Context(), timeoutPolicy.Timeout(e))
	defer cancel()
	e.Request = p.ToRequest(ctx)
	handlers.run(BeforeAttempt, e)
	var err error
	e.Response, err = doer.Do(e.Request)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	} else {
		readBody(p, e, handlers)
	}
}

func readBody(p *request.Plan, e *request.Execution, handlers *HandlerGroup) {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	handlers.run(BeforeReadBody, e)
	var err error
	e.Body, err = io.ReadAll(e.Response.Body)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	}
}

func exhausted(e *request.Execution) error {
	return &ExhaustedError{
		Attempts: e.Attempt + 1,
		Status:   e.StatusCode(),
		Err:      e.Err,
	}
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
//
// To make a request plan with custom headers, use request.NewPlan and
// Client.Do.
func (c *Client) Get(url string) (*request.Execution, error) {
	return Get(c, url)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do.
//
// To make a request plan with custom headers, use request.NewPlan and
// Client.Do.
func (c *Client) Head(url string) (*request.Execution, error) {
	return Head(c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
//
// Note that POST is not an idempotent method, so under
// retry.DefaultPolicy a retryable failure of a POST is surfaced
// terminally after a single attempt. Opt in with a policy built from
// retry.Methods if replaying the request is known to be safe.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewPlan and request.BodyBytes,
// namely: string, []byte, io.Reader, and io.ReadCloser.
func (c *Client) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(c, url, contentType, body)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use request.NewPlan and Client.Do.
func (c *Client) PostForm(url string, data url.Values) (*request.Execution, error) {
	return PostForm(c, url, data)
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer, if the HTTPDoer has one, and otherwise does
// nothing.
func (c *Client) CloseIdleConnections() {
	doer := c.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
