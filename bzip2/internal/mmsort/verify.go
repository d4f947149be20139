// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mmsort

import (
	"bytes"
	"fmt"

	"github.com/blocksort/compress/internal"
)

// The checks below verify the sorter invariants. They are run after every step
// when built with the "debug" tag and are used directly by the tests.

// fullChecks enables the checks that compare rotation prefixes, whose cost
// grows with every pass. Fuzz builds skip them.
const fullChecks = internal.Debug && !internal.GoFuzz

var (
	errHistogram error = internal.Error("invalid byte histogram")
	errCursor    error = internal.Error("invalid bucket cursor")
	errOrder     error = internal.Error("invalid rotation order")
	errRank      error = internal.Error("invalid rank")
)

func mustPass(errs ...error) {
	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}
}

// checkHistogram checks that cnt[v] is the number of bytes in t less than v.
func checkHistogram(t []byte, cnt []int) error {
	var hist [256]int
	for _, v := range t {
		hist[v]++
	}
	var sum int
	for v, c := range hist {
		if cnt[v] != sum {
			return fmt.Errorf("%w: cnt[%d] = %d, want %d", errHistogram, v, cnt[v], sum)
		}
		sum += c
	}
	return nil
}

// checkCursors checks that every bucket received exactly as many rotations as
// it holds, in which case its cursor stops at the start of the next bucket.
func checkCursors(head []bool, cnt []int, n int) error {
	for i, j := 0, 0; i < n; i = j {
		for j = i + 1; !head[j]; j++ {
		}
		if cnt[i] != j {
			return fmt.Errorf("%w: bucket %d ends at %d, want %d", errCursor, i, cnt[i], j)
		}
	}
	return nil
}

// checkOrder checks that sa is a permutation whose rotations are sorted by
// their first h bytes, and that the bucket heads mark exactly where those
// prefixes change.
func checkOrder(s *sorter) error {
	n := len(s.t)
	if len(s.sa) != n || len(s.head) != n+1 {
		return fmt.Errorf("%w: mismatching sizes", errOrder)
	}
	if !s.head[0] || !s.head[n] {
		return fmt.Errorf("%w: missing sentinel heads", errOrder)
	}
	seen := make([]bool, n)
	for _, p := range s.sa {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("%w: offset %d is not unique", errOrder, p)
		}
		seen[p] = true
	}

	m := s.h
	if m > n {
		m = n
	}
	tt := append(append([]byte(nil), s.t...), s.t[:m]...)
	var nb int
	for i := range s.sa {
		if s.head[i] {
			nb++
		}
		if i == 0 {
			continue
		}
		prev := tt[s.sa[i-1] : s.sa[i-1]+m]
		curr := tt[s.sa[i] : s.sa[i]+m]
		switch c := bytes.Compare(prev, curr); {
		case c > 0:
			return fmt.Errorf("%w: ranks %d and %d out of order", errOrder, i-1, i)
		case c == 0 && s.head[i]:
			return fmt.Errorf("%w: rank %d splits equal rotations", errOrder, i)
		case c < 0 && !s.head[i]:
			return fmt.Errorf("%w: rank %d joins distinct rotations", errOrder, i)
		}
	}
	if nb != s.buckets {
		return fmt.Errorf("%w: got %d buckets, want %d", errOrder, s.buckets, nb)
	}
	return nil
}

// checkRanks checks that rank is the inverse of sa.
func checkRanks(s *sorter) error {
	for i, p := range s.sa {
		if s.rank[p] != i {
			return fmt.Errorf("%w: rank[%d] = %d, want %d", errRank, p, s.rank[p], i)
		}
	}
	return nil
}
