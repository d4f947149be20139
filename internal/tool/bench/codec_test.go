// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocksort/compress/bzip2"
)

var testFiles = []string{"binary", "random", "repeats", "text", "zeros"}

// TestTransforms tests that every registered transform agrees with the naive
// transform on small inputs.
func TestTransforms(t *testing.T) {
	ref := Transforms["naive"]
	if ref == nil {
		t.Skip("no reference transform available")
	}
	for _, f := range testFiles {
		for _, n := range []int{1, 2, 100, 4096} {
			input, err := LoadInput(f, n)
			require.NoError(t, err)
			want := make([]byte, n)
			wantPtr, err := ref(want, input)
			require.NoError(t, err)

			for name, tf := range Transforms {
				got := make([]byte, n)
				gotPtr, err := tf(got, input)
				if assert.NoError(t, err, "%s, %s", name, getName(f, n)) {
					assert.Equal(t, wantPtr, gotPtr, "%s, %s", name, getName(f, n))
					assert.Equal(t, want, got, "%s, %s", name, getName(f, n))
				}
			}
		}
	}
}

func TestNaiveLimit(t *testing.T) {
	_, err := naiveBWT(make([]byte, maxNaiveSize+1), make([]byte, maxNaiveSize+1))
	assert.Equal(t, errNaiveSize, err)
	_, err = naiveBWT(nil, nil)
	assert.Equal(t, bzip2.ErrEmptyBlock, err)
	_, err = naiveBWT(make([]byte, 1), make([]byte, 2))
	assert.Equal(t, bzip2.ErrShortBuffer, err)
}

// TestCodecs tests that the transformed output passed through each registered
// encoder and decoder pair restores the original input after the reverse
// transform.
func TestCodecs(t *testing.T) {
	if len(Encoders) == 0 {
		t.Skip("no codecs available")
	}
	for _, f := range testFiles {
		dd, err := LoadInput(f, 1e5)
		require.NoError(t, err)
		t.Run(fmt.Sprintf("File:%v", f), func(t *testing.T) { testEncoders(t, dd) })
	}
}

func testEncoders(t *testing.T, dd []byte) {
	t.Parallel()
	const level = 6 // Default compression on all encoders

	bwt := make([]byte, len(dd))
	ptr, err := bzip2.ForwardBWT(bwt, dd)
	require.NoError(t, err)

	for encName, enc := range Encoders {
		encName, enc := encName, enc
		dec := Decoders[encName]
		if dec == nil {
			continue
		}
		t.Run(fmt.Sprintf("Codec:%v", encName), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := enc(be, level)
			if _, err := io.Copy(zw, bytes.NewReader(bwt)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}

			bd := new(bytes.Buffer)
			zr := dec(bytes.NewReader(be.Bytes()))
			if _, err := io.Copy(bd, zr); err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}

			got := make([]byte, bd.Len())
			if err := bzip2.ReverseBWT(got, bd.Bytes(), ptr); err != nil {
				t.Fatalf("unexpected ReverseBWT error: %v", err)
			}
			if !bytes.Equal(got, dd) {
				t.Error("data mismatch")
			}
		})
	}
}
