// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package governor provides a rate-limiting middleware for the
// retrying client in the root httpr package.
//
// A retry layer amplifies request volume by design. Wrapping the
// transport in a Governor keeps the combined rate of first attempts
// and retries under a fixed ceiling:
//
//	client := &httpr.Client{
//		HTTPDoer: httpr.Wrap(http.DefaultClient, governor.PerSecond(10)),
//	}
package governor
