// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpr interposes a retry decision-and-scheduling layer between
an HTTP client application and its transport. Given the outcome of a
request attempt (response or transport error), it decides whether to
retry, how long to wait before the next attempt, and when to give up.
Everything below it (connections, pooling, TLS, redirects) belongs to
the transport collaborator and is treated as opaque.

Create a Client to begin making requests.

	client := &httpr.Client{}
	e, err := client.Get("https://www.example.com")
	...
	e, err := client.Post("https://www.example.com/upload",
		"application/json", &buf)

For control over retry classification, budget, and backoff, build a
policy from components in package retry:

	eligible := retry.RetryableStatus.Or(retry.TransientErr).And(retry.Idempotent)
	waiter := retry.NewExpWaiter(250*time.Millisecond, 5*time.Second, nil)
	client := &httpr.Client{
		RetryPolicy: retry.NewPolicy(eligible, retry.Times(3), waiter),
	}

A valid Retry-After hint on an eligible failure response takes
precedence over the policy's computed backoff for that step. When the
retry budget or the waiter's elapsed-time ceiling is consumed, the
final failure is wrapped in an *ExhaustedError, so "gave up after N
attempts" is always distinguishable from "failed immediately".

For control over how requests are actually sent, install a custom
HTTPDoer, optionally composed with middleware via Wrap:

	client := &httpr.Client{
		HTTPDoer: httpr.Wrap(&http.Client{}, governor.PerSecond(10)),
	}

To hook into the fine-grained details of the attempt loop, install
handlers for the designated events, for example structured attempt
logging via LogHandler:

	handlers := &httpr.HandlerGroup{}
	httpr.InstallLogHandler(handlers, &log)
	client := &httpr.Client{Handlers: handlers}

Package httpr also provides basic interfaces for each method of the
client (Doer, Getter, Header, Poster, FormPoster, and IdleCloser), a
combined Executor interface, and utility functions for working with a
Doer (Inflate, Get, Head, Post, and PostForm).
*/
package httpr
