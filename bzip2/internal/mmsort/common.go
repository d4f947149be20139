// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mmsort implements an O(n log n) suffix sort of cyclic strings.
package mmsort

// This package follows the prefix doubling algorithm by Manber and Myers.
// Every pass doubles the number of leading bytes that the current order
// accounts for, so at most ceil(log2(n)) passes are needed. Each pass is
// linear in the length of the input.
//
// Unlike a regular suffix array, the strings being sorted are the cyclic
// rotations of the input, which is what the BWT used in bzip2 operates on.
// Rotations are extended by wrapping around, so no sentinel is needed.
//
// References:
//	http://webglimpse.net/pubs/suffix.pdf
//	https://doi.org/10.1137/0222058

// ComputeSA computes the sorted order of the cyclic rotations of t and places
// the starting offset of each rotation in sa. Both t and sa must be the same
// length.
//
// Rotations that are entirely equal, which only happens when t is periodic,
// are ordered by descending offset.
func ComputeSA(t []byte, sa []int) {
	if len(sa) != len(t) {
		panic("mismatching sizes")
	}
	if len(t) == 0 {
		return
	}
	var s sorter
	s.Init(t, sa)
	for !s.Done() {
		s.Refine()
	}
	s.BreakTies()
}
