// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bzip2

import "github.com/blocksort/compress/bzip2/internal/mmsort"

// The Burrows-Wheeler Transform implementation used here sorts the cyclic
// rotations of the block directly with the prefix doubling algorithm by
// Manber and Myers, which runs in O(n log n). Since the rotations wrap around,
// there is no need to duplicate the input as with a regular suffix array.
//
// Given the sorted rotations, the BWT output at rank i is the byte that
// precedes the rotation of rank i, and the origin pointer is the rank of the
// rotation starting at offset 0.
//
// References:
//	http://www.hpl.hp.com/techreports/Compaq-DEC/SRC-RR-124.pdf
//	http://webglimpse.net/pubs/suffix.pdf
//	https://www.quora.com/How-can-I-optimize-burrows-wheeler-transform-and-inverse-transform-to-work-in-O-n-time-O-n-space
//
// The exported functions use a fresh burrowsWheelerTransform per call. A value
// that is reused, as in the benchmarks, keeps its output and permutation
// buffers, while the sorter allocates its own working arrays on every call.
type burrowsWheelerTransform struct {
	buf  []byte
	sa   []int
	perm []uint32
}

// ForwardBWT applies the Burrows-Wheeler Transform to src and writes the
// result to dst, which must be at least as long as src. The two slices may
// overlap exactly. It returns the origin pointer needed by ReverseBWT.
func ForwardBWT(dst, src []byte) (ptr int, err error) {
	defer errRecover(&err)
	if len(dst) < len(src) {
		return -1, ErrShortBuffer
	}
	ptr = -1
	dst = dst[:len(src)]
	copy(dst, src)
	var bwt burrowsWheelerTransform
	ptr = bwt.Encode(dst)
	return ptr, nil
}

// ReverseBWT undoes the Burrows-Wheeler Transform of src given the origin
// pointer and writes the original block to dst, which must be at least as
// long as src. The two slices may overlap exactly. On error, dst is left
// untouched.
func ReverseBWT(dst, src []byte, ptr int) (err error) {
	defer errRecover(&err)
	switch {
	case len(src) == 0:
		return ErrEmptyBlock
	case len(dst) < len(src):
		return ErrShortBuffer
	case ptr < 0 || ptr >= len(src):
		return ErrInvalidPointer
	}
	dst = dst[:len(src)]
	copy(dst, src)
	var bwt burrowsWheelerTransform
	bwt.Decode(dst, ptr)
	return nil
}

// Encode transforms buf in place and returns the origin pointer.
// The offset buffer is retained for future calls on the same value.
func (bwt *burrowsWheelerTransform) Encode(buf []byte) (ptr int) {
	if len(buf) == 0 {
		panic(ErrEmptyBlock)
	}

	// Step 1: Sort the cyclic rotations of the input. The input string, buf,
	// is not modified, while the starting offsets are written to sa.
	n := len(buf)
	if cap(bwt.sa) < n {
		bwt.sa = make([]int, n)
	}
	sa := bwt.sa[:n]
	mmsort.ComputeSA(buf, sa)

	// Step 2: Convert the sorted rotations to a BWT. The offsets in sa are
	// overwritten in place with the byte preceding each rotation, so that buf
	// is only read until every output byte is known.
	ptr = -1
	for i, idx := range sa {
		if idx == 0 {
			ptr = i
			idx = n
		}
		sa[i] = int(buf[idx-1])
	}
	for i, c := range sa {
		buf[i] = byte(c)
	}
	return ptr
}

// Decode reverses the transform of buf in place given the origin pointer.
func (bwt *burrowsWheelerTransform) Decode(buf []byte, ptr int) {
	if len(buf) == 0 {
		panic(ErrEmptyBlock)
	}
	if ptr < 0 || ptr >= len(buf) {
		panic(ErrInvalidPointer)
	}

	// Step 1: Compute cumm, where cumm[ch] reports the total number of
	// characters that precede the character ch in the alphabet.
	var cumm [256]int
	for _, v := range buf {
		cumm[v]++
	}
	var sum int
	for i, v := range cumm {
		cumm[i] = sum
		sum += v
	}

	// Step 2: Compute perm, where perm[ptr] contains a pointer to the next
	// byte in buf and the next pointer in perm itself.
	if cap(bwt.perm) < len(buf) {
		bwt.perm = make([]uint32, len(buf))
	}
	perm := bwt.perm[:len(buf)]
	for i, b := range buf {
		perm[cumm[b]] = uint32(i)
		cumm[b]++
	}

	// Step 3: Follow each pointer in perm to the next byte, starting with the
	// origin pointer.
	if cap(bwt.buf) < len(buf) {
		bwt.buf = make([]byte, len(buf))
	}
	buf2 := bwt.buf[:len(buf)]
	i := perm[ptr]
	for j := range buf2 {
		buf2[j] = buf[i]
		i = perm[i]
	}
	copy(buf, buf2)
}
