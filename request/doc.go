// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request models a logical HTTP request (Plan) and the state of
one execution of that request (Execution).

A Plan is the retryable analogue of an http.Request: its body is
buffered at construction time so the plan can be converted into a
fresh, equivalent http.Request for every attempt. An Execution tracks
everything the retry machinery needs to make decisions: the attempt
counter, timings, and the response or error produced by the most
recent attempt.

Construct a Plan with NewPlan or NewPlanWithContext and execute it
with a client from the root httpr package:

	p, err := request.NewPlan("PUT", "https://example.com/item/1", `{"id":1}`)
	...
	e, err := client.Do(p)
*/
package request
