// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies transport-level errors by whether a
// retry of the failed HTTP request attempt has a prospect of success.
//
// The retry eligibility rules in package retry use Categorize to
// distinguish transient transport failures (timeouts, connection
// refusals and resets, DNS failures) from application-level errors,
// which are never retried.
package transient
