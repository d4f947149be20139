// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizeData(t *testing.T) {
	var vectors = []struct {
		input  []byte
		n      int
		output []byte
	}{
		{input: []byte("abc"), n: -1, output: []byte("abc")},
		{input: []byte("abc"), n: 2, output: []byte("ab")},
		{input: []byte("abc"), n: 7, output: []byte{'a', 'b', 'c', 'a' ^ 1, 'b' ^ 1, 'c' ^ 1, 'a' ^ 2}},
	}
	for i, v := range vectors {
		assert.Equal(t, v.output, ResizeData(v.input, v.n), "test %d", i)
	}
	assert.Panics(t, func() { ResizeData(nil, 1) })
}

func TestRandDeterminism(t *testing.T) {
	b1 := NewRand(7).Bytes(1000)
	b2 := NewRand(7).Bytes(1000)
	b3 := NewRand(8).Bytes(1000)
	assert.Equal(t, b1, b2)
	assert.NotEqual(t, b1, b3)

	for _, v := range NewRand(1).Symbols(1000, 3) {
		assert.Less(t, v, byte(3))
	}
	for i := 0; i < 1000; i++ {
		f := NewRand(i).Float32()
		assert.True(t, f >= 0 && f < 1, "Float32 = %v", f)
	}
}

func TestRepeats(t *testing.T) {
	for _, n := range []int{1, 100, 1 << 12, 1 << 16} {
		b1 := Repeats(0, n)
		b2 := Repeats(0, n)
		assert.Len(t, b1, n)
		assert.True(t, bytes.Equal(b1, b2), "Repeats(0, %d) is not deterministic", n)
	}
}

func TestNaiveBWT(t *testing.T) {
	var vectors = []struct {
		input  string
		sa     []int
		output string
		ptr    int
	}{
		{input: "banana", sa: []int{5, 3, 1, 0, 4, 2}, output: "nnbaaa", ptr: 3},
		{input: "aaaa", sa: []int{3, 2, 1, 0}, output: "aaaa", ptr: 3},
		{input: "abab", sa: []int{2, 0, 3, 1}, output: "bbaa", ptr: 1},
		{input: "x", sa: []int{0}, output: "x", ptr: 0},
	}
	for i, v := range vectors {
		assert.Equal(t, v.sa, NaiveSA([]byte(v.input)), "test %d", i)
		out, ptr := NaiveBWT([]byte(v.input))
		assert.Equal(t, v.output, string(out), "test %d", i)
		assert.Equal(t, v.ptr, ptr, "test %d", i)
	}
}
