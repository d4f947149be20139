// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

// Repeats generates n bytes of mostly random data, where most of the data is
// a copy of some earlier portion at a short or long distance. Such data has
// many long repeated contexts, which is the slow case for suffix sorting.
func Repeats(seed, n int) []byte {
	r := NewRand(seed)
	b := make([]byte, 0, n+512)

	randLen := func() (l int) {
		p := r.Float32()
		switch {
		case p <= 0.15: // 4..8
			l = 4 + r.Intn(4)
		case p <= 0.30: // 8..16
			l = 8 + r.Intn(8)
		case p <= 0.45: // 16..32
			l = 16 + r.Intn(16)
		case p <= 0.60: // 32..64
			l = 32 + r.Intn(32)
		case p <= 0.75: // 64..128
			l = 64 + r.Intn(64)
		case p <= 0.90: // 128..256
			l = 128 + r.Intn(128)
		default: // 256..512
			l = 256 + r.Intn(256)
		}
		return l
	}

	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			p := r.Float32()
			switch {
			case p <= 0.2: // 1..4
				d = 1 + r.Intn(3)
			case p <= 0.4: // 4..16
				d = 4 + r.Intn(12)
			case p <= 0.6: // 16..256
				d = 16 + r.Intn(240)
			case p <= 0.8: // 256..4096
				d = 256 + r.Intn(3840)
			default: // 4096..32768
				d = 4096 + r.Intn(28672)
			}
		}
		return d
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, byte(r.Int()))
		}
	}

	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < n {
		if r.Float32() <= 0.1 {
			writeRand(randLen())
		} else {
			writeCopy(randDist(), randLen())
		}
	}
	return b[:n]
}
