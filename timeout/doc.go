// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout provides optional policies for setting timeouts on
// individual request attempts within a retrying plan execution.
package timeout
