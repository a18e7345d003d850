// Copyright 2026 The httpr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
)

const badBodyTypeMsg = "httpr/request: invalid type (for body use nil, " +
	"string, []byte, io.Reader or io.ReadCloser)"

// BodyBytes converts a generic body parameter to a byte slice for use
// as a request plan body.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser:
//
// • nil returns a nil byte slice and no error;
//
// • []byte is returned as-is, and string via the built-in conversion;
//
// • an io.Reader or io.ReadCloser is read to the end (and closed, if
// it implements Closer); a read or close error is returned with a nil
// slice.
//
// Any other type returns a nil byte slice and an error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		if err = x.Close(); err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return io.ReadAll(x)
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}
