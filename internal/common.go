// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the block sorting
// packages.
//
// For performance reasons, these packages lack strong error checking and
// require the caller to ensure that strict invariants are kept.
// Building with the "debug" tag turns on invariant checking.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "compress: " + string(e) }
