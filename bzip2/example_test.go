// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bzip2_test

import (
	"fmt"

	"github.com/blocksort/compress/bzip2"
)

func ExampleForwardBWT() {
	block := []byte("banana")
	out := make([]byte, len(block))
	ptr, err := bzip2.ForwardBWT(out, block)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s %d\n", out, ptr)

	orig := make([]byte, len(out))
	if err := bzip2.ReverseBWT(orig, out, ptr); err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", orig)

	// Output:
	// nnbaaa 3
	// banana
}
