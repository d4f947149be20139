// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mmsort

import (
	"golang.org/x/exp/slices"

	"github.com/blocksort/compress/internal"
)

// sorter holds the state of one cyclic suffix sort. All slices are owned by
// the sorter and must not be shared with another sort.
//
// Buckets are maximal runs of ranks whose rotations are equal in their first
// h bytes. A bucket starting at rank i and ending before rank j satisfies
// head[i] && head[j], with no heads in between.
type sorter struct {
	t    []byte
	sa   []int  // Offsets in rank order
	rank []int  // Rank of each offset; rank[sa[i]] == i after every pass
	cnt  []int  // Byte histogram during Init, bucket write cursors in Refine
	pend []bool // Heads of the sub-buckets found by the current pass
	head []bool // Bucket heads by rank; has len(t)+1 entries

	h       int // Number of leading bytes the current order accounts for
	buckets int // Number of buckets in the current order
	ops     int // Work performed so far, counted per bucket rather than per element
}

// Init bucket sorts all offsets of t by their first byte.
func (s *sorter) Init(t []byte, sa []int) {
	n := len(t)
	cn := n
	if cn < 256 {
		cn = 256
	}
	*s = sorter{
		t:    t,
		sa:   sa,
		rank: make([]int, n),
		cnt:  make([]int, cn),
		pend: make([]bool, n),
		head: make([]bool, n+1),
		h:    1,
	}

	// In its histogram role, cnt[v] ends up as the number of bytes less than v,
	// which is the first rank of the bucket for v.
	cnt := s.cnt[:256]
	for _, v := range t {
		cnt[v]++
	}
	for i := 1; i < len(cnt); i++ {
		cnt[i] += cnt[i-1]
	}
	for i, v := range t {
		cnt[v]--
		sa[cnt[v]] = i
	}
	for _, c := range cnt {
		s.head[c] = true
	}
	s.head[n] = true

	for i, p := range sa {
		s.rank[p] = i
	}
	for _, b := range s.head[:n] {
		if b {
			s.buckets++
		}
	}
	s.ops += n

	if internal.Debug {
		mustPass(checkHistogram(t, cnt))
	}
	if fullChecks {
		mustPass(checkOrder(s))
	}
}

// Done reports whether the current order is final. This is the case once the
// order accounts for every byte of the rotations, or when every bucket
// already holds a single rotation.
func (s *sorter) Done() bool {
	return s.h >= len(s.t) || s.buckets == len(s.t)
}

// Refine performs one doubling pass. Rotations within a bucket are ordered
// by the rank of the rotation h bytes further along, after which the order
// accounts for 2*h leading bytes.
func (s *sorter) Refine() {
	n, h := len(s.t), s.h
	hn := h % n // Shift within one rotation
	sa, rank, cnt, pend, head := s.sa, s.rank, s.cnt, s.pend, s.head

	// In its cursor role, cnt[i] is the next free rank in the bucket at i.
	for i, j := 0, 0; i < n; i = j {
		cnt[i] = i
		for j = i; j == i || !head[j]; j++ {
			rank[sa[j]] = i
			pend[j] = false
		}
	}

	// Visiting the buckets in rank order visits the rotations that start h
	// bytes before them in order of their second half. Moving each of those
	// to the front of its own bucket is therefore a stable sort on that half.
	for i, j := 0, 0; i < n; i = j {
		for j = i; j == i || !head[j]; j++ {
			d := sa[j] - hn
			if d < 0 {
				d += n
			}
			r := cnt[rank[d]]
			cnt[rank[d]]++
			rank[d] = r
			pend[r] = true
		}
		s.ops += j - i

		// Rotations moved by this bucket into the same destination bucket
		// form a contiguous run. Only the first rank of each run starts a new
		// sub-bucket. A mark is cleared at most once per pass.
		for j = i; j == i || !head[j]; j++ {
			d := sa[j] - hn
			if d < 0 {
				d += n
			}
			if e := rank[d]; pend[e] {
				for e++; !head[e] && pend[e]; e++ {
					pend[e] = false
				}
			}
		}
		s.ops += j - i
	}

	if internal.Debug {
		mustPass(checkCursors(head, cnt, n))
	}

	s.buckets = 0
	for i := 0; i < n; i++ {
		sa[rank[i]] = i
		if pend[i] {
			head[i] = true
		}
		if head[i] {
			s.buckets++
		}
	}
	s.ops += n
	s.h = 2 * h

	if internal.Debug {
		mustPass(checkRanks(s))
	}
	if fullChecks {
		mustPass(checkOrder(s))
	}
}

// BreakTies orders the rotations of every remaining bucket by descending
// offset. Once Done, any bucket holding more than one rotation contains only
// rotations that are entirely equal.
func (s *sorter) BreakTies() {
	n := len(s.t)
	if s.buckets == n {
		return
	}
	for i, j := 0, 0; i < n; i = j {
		for j = i + 1; !s.head[j]; j++ {
		}
		if j-i > 1 {
			slices.SortFunc(s.sa[i:j], func(a, b int) int { return b - a })
			for k := i; k < j; k++ {
				s.rank[s.sa[k]] = k
			}
		}
		s.ops += j - i
	}
}
