// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bzip2 implements the block-sorting transform of the BZip2 format.
//
// The forward transform sorts all cyclic rotations of a block and outputs the
// byte preceding each rotation in sorted order, together with the origin
// pointer (the rank of the unrotated block) that the reverse transform needs.
// Bytes are compared as unsigned values, which is the order expected by the
// later stages of bzip2.
//
// Both transforms operate on a single in-memory block and keep no state
// between calls, so independent blocks may be transformed concurrently.
package bzip2

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bzip2: " + string(e) }

var (
	// ErrEmptyBlock is returned when the input block has no bytes.
	ErrEmptyBlock error = Error("empty block")

	// ErrShortBuffer is returned when the output buffer is smaller than the
	// input block.
	ErrShortBuffer error = Error("short buffer")

	// ErrInvalidPointer is returned when the origin pointer does not index
	// into the block.
	ErrInvalidPointer error = Error("invalid origin pointer")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
