// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_ds_lib
// +build !no_ds_lib

package bench

import (
	"github.com/blocksort/compress/bzip2"
	"github.com/blocksort/compress/internal"
	"github.com/blocksort/compress/internal/testutil"
)

// maxNaiveSize is the largest block the naive transform accepts, since it
// compares whole rotations and degrades quadratically on repetitive data.
const maxNaiveSize = 1 << 16

var errNaiveSize error = internal.Error("block too large for naive transform")

func init() {
	RegisterTransform("mm", bzip2.ForwardBWT)
	RegisterTransform("naive", naiveBWT)
}

// naiveBWT sorts the rotations of src by direct comparison. It serves as the
// reference that other transforms are measured and checked against.
func naiveBWT(dst, src []byte) (int, error) {
	n := len(src)
	switch {
	case n == 0:
		return -1, bzip2.ErrEmptyBlock
	case len(dst) < n:
		return -1, bzip2.ErrShortBuffer
	case n > maxNaiveSize:
		return -1, errNaiveSize
	}

	out, ptr := testutil.NaiveBWT(src)
	copy(dst, out)
	return ptr, nil
}
