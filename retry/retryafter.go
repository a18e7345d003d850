// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"strconv"
	"time"
)

// RetryAfter extracts the server's retry hint from the Retry-After
// response header, evaluated against the reference time now.
//
// Per RFC 7231 section 7.1.3, the header value is either a
// non-negative integer number of seconds or an HTTP-date. The date
// form is converted into a duration relative to now; a date in the
// past clamps to zero (retry immediately).
//
// The second return value reports whether a usable hint was found. A
// missing header, a malformed value, and a negative seconds count all
// report false, so callers fall back to their computed backoff.
func RetryAfter(h http.Header, now time.Time) (time.Duration, bool) {
	v := h.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		d := t.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}
