// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpr

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with
// custom functionality, such as attempt logging.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// plan execution starts.
	//
	// When Client fires BeforeExecutionStart, the execution is
	// non-nil but the only field that has been set is the plan.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual HTTP request attempt during the plan execution.
	//
	// When Client fires BeforeAttempt, the execution's request field
	// is set to the HTTP request that WILL BE sent after all
	// BeforeAttempt handlers have finished.
	//
	// BeforeAttempt handlers may modify the execution's request, or
	// some of its fields, thus changing the HTTP request that will be
	// sent. However, handlers should clone request fields with
	// reference types (URL and Header) before changing them, as these
	// fields initially reference the same-named fields of the plan.
	BeforeAttempt
	// BeforeReadBody identifies the event that occurs after an HTTP
	// request attempt resulted in an HTTP response (as opposed to an
	// error) but before the response body is read and buffered.
	//
	// BeforeReadBody never fires if the attempt ended in an error, but
	// always fires when an HTTP response is received, regardless of
	// status code and regardless of whether the response has a
	// non-empty body.
	BeforeReadBody
	// AfterAttemptTimeout identifies the event that occurs after an
	// HTTP request attempt failed because of a timeout error.
	//
	// When Client fires AfterAttemptTimeout, the execution's error
	// field is set to the timeout error, and its attempt timeout
	// counter has been incremented.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after an HTTP
	// request attempt concludes, successfully or not.
	//
	// When Client fires AfterAttempt, either the execution's response
	// field or its error field OR BOTH may be non-nil, but never
	// neither. AfterAttempt fires on every attempt and runs before
	// the retry policy is consulted.
	AfterAttempt
	// AfterPlanTimeout identifies the event that occurs after a
	// timeout at the plan level (the deadline on the plan's context
	// is exceeded), detected either together with an attempt timeout
	// or during the retry wait.
	//
	// AfterPlanTimeout always occurs after AfterAttempt, even if the
	// plan timeout was detected at the same time as an attempt
	// timeout.
	AfterPlanTimeout
	// AfterExecutionEnd identifies the event that occurs after the
	// plan execution ends.
	//
	// When Client fires AfterExecutionEnd, the execution is in the
	// same state it was in after the final attempt EXCEPT that the
	// end time is set.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"AfterPlanTimeout",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur during
// a plan execution, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttemptTimeout,
		AfterAttempt,
		AfterPlanTimeout,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
