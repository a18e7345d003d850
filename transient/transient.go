// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"net"
	"syscall"
)

// A Category is the transience category of a particular error, as
// reported by Categorize.
//
// The category Not means the error is not transient from the
// perspective of completing an HTTP request attempt successfully: a
// retry after encountering this error is very unlikely to succeed.
// Every other category indicates a retry has some prospect of success.
type Category int

const (
	// Not indicates any non-transient error.
	Not Category = iota
	// Timeout indicates a client-side timeout. The server may be going
	// through a temporary period of slowness, or the client may
	// succeed on a future attempt by waiting longer.
	//
	// Categorize returns Timeout if the error or any of its wrapped
	// causes has a Timeout() function that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection,
	// corresponding to the POSIX error code ECONNREFUSED.
	//
	// Although connection refusal may be a permanent condition, it is
	// classified as transient because it also happens while the
	// service on the remote host is starting or restarting and not
	// yet listening on its port.
	ConnRefused
	// ConnReset indicates the remote host sent an RST packet on a
	// previously active TCP connection, corresponding to the POSIX
	// error code ECONNRESET.
	//
	// Connection resets are common when a service instance is taken
	// down while still responding to a request, or when the remote
	// host is a load balancer, so a reset tends to indicate a high
	// probability of success on retry.
	ConnReset
	// DNS indicates a name resolution failure. Resolution failures
	// are frequently caused by transient resolver or network
	// conditions rather than by a genuinely unknown host.
	//
	// Categorize returns DNS if the error is not a Timeout and the
	// error or one of its wrapped causes is a *net.DNSError.
	DNS
)

// Categorize returns the transience category of the given error. A nil
// error, and an error that is not transient from the perspective of
// completing an HTTP request attempt, both produce the return value
// Not.
//
// In assessing transience, Categorize unwraps cause errors contained
// within err, not just err itself. It never consults a Temporary()
// method, as the semantics of Temporary() aren't entirely clear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t hasTimeout
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return DNS
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
