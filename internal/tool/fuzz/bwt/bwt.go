// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package bwt

import (
	"bytes"

	"github.com/blocksort/compress/bzip2"
	"github.com/blocksort/compress/internal/testutil"
)

func Fuzz(data []byte) int {
	if len(data) == 0 {
		if _, err := bzip2.ForwardBWT(nil, data); err != bzip2.ErrEmptyBlock {
			panic("expected empty block error")
		}
		return 0
	}
	ptr, out := testForward(data)
	testReverse(data, out, ptr)
	return 1
}

// testForward checks that the forward transform agrees with sorting the
// rotations by direct comparison.
func testForward(data []byte) (int, []byte) {
	out := make([]byte, len(data))
	ptr, err := bzip2.ForwardBWT(out, data)
	if err != nil {
		panic(err)
	}
	want, wantPtr := testutil.NaiveBWT(data)
	if ptr != wantPtr {
		panic("mismatching pointer")
	}
	if !bytes.Equal(out, want) {
		panic("mismatching bytes")
	}
	return ptr, out
}

// testReverse checks that the reverse transform restores the input, and that
// both transforms work in place.
func testReverse(data, out []byte, ptr int) {
	got := make([]byte, len(out))
	if err := bzip2.ReverseBWT(got, out, ptr); err != nil {
		panic(err)
	}
	if !bytes.Equal(got, data) {
		panic("mismatching bytes")
	}

	buf := append([]byte(nil), data...)
	if p, err := bzip2.ForwardBWT(buf, buf); err != nil || p != ptr {
		panic("in place forward transform failed")
	}
	if err := bzip2.ReverseBWT(buf, buf, ptr); err != nil || !bytes.Equal(buf, data) {
		panic("in place reverse transform failed")
	}
	if err := bzip2.ReverseBWT(got, out, len(out)); err != bzip2.ErrInvalidPointer {
		panic("expected invalid pointer error")
	}
}
