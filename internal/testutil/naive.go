// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"

	"golang.org/x/exp/slices"
)

// NaiveSA sorts the cyclic rotations of t by comparing them directly and
// returns their starting offsets in sorted order. Rotations that are entirely
// equal are ordered by descending offset.
//
// The cost is O(n^2 log n) on repetitive data, so it is only suitable as a
// reference for small inputs.
func NaiveSA(t []byte) []int {
	n := len(t)
	tt := append(append([]byte(nil), t...), t...)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(a, b int) int {
		if c := bytes.Compare(tt[a:a+n], tt[b:b+n]); c != 0 {
			return c
		}
		return b - a
	})
	return sa
}

// NaiveBWT computes the Burrows-Wheeler Transform of t using NaiveSA and
// returns the output along with the origin pointer.
func NaiveBWT(t []byte) (out []byte, ptr int) {
	n := len(t)
	out, ptr = make([]byte, n), -1
	for i, idx := range NaiveSA(t) {
		if idx == 0 {
			ptr = i
			idx = n
		}
		out[i] = t[idx-1]
	}
	return out, ptr
}
