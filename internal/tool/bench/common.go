// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of block sorting implementations
// with respect to transform speed, growth rate across block sizes, and the
// compression ratio gained by general purpose codecs.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/dsnet/golib/unitconv"

	"github.com/blocksort/compress/internal/testutil"
)

const (
	TestTransformRate = iota
	TestGrowthRate
	TestCompressRatio
)

// Transform applies a forward block sorting transform to src, writing the
// result to dst and returning the origin pointer.
type Transform func(dst, src []byte) (int, error)

type Encoder func(io.Writer, int) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Transforms map[string]Transform
	Encoders   map[string]Encoder
	Decoders   map[string]Decoder

	// List of search paths for test files.
	Paths []string
)

func RegisterTransform(name string, tf Transform) {
	if Transforms == nil {
		Transforms = make(map[string]Transform)
	}
	Transforms[name] = tf
}

func RegisterEncoder(name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[string]Encoder)
	}
	Encoders[name] = enc
}

func RegisterDecoder(name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[string]Decoder)
	}
	Decoders[name] = dec
}

// Generators are the built-in inputs, which are used when a file name
// matches one of these keys.
var Generators = map[string]func(n int) []byte{
	"random":  func(n int) []byte { return testutil.NewRand(0).Bytes(n) },
	"binary":  func(n int) []byte { return testutil.NewRand(0).Symbols(n, 2) },
	"repeats": func(n int) []byte { return testutil.Repeats(0, n) },
	"zeros":   func(n int) []byte { return make([]byte, n) },
	"text": func(n int) []byte {
		const s = "Do not communicate by sharing memory; instead, share memory by communicating. "
		return testutil.ResizeData([]byte(s), n)
	},
}

// LoadInput loads n bytes of the named input, which is either a built-in
// generator or a file looked up in Paths.
func LoadInput(name string, n int) ([]byte, error) {
	if gen, ok := Generators[name]; ok {
		return gen(n), nil
	}
	return testutil.LoadFile(getPath(name), n)
}

// BenchmarkTransform benchmarks a single transform on the given input data
// and reports the result.
func BenchmarkTransform(input []byte, tf Transform) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if tf == nil {
			b.Fatalf("unexpected error: nil Transform")
		}
		output := make([]byte, len(input))
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := tf(output, input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s), cost (ns per n*log2(n)) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkTransformSuite runs multiple benchmarks across all transform
// implementations, files, and sizes.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(tfs)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkTransformSuite(tfs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	results, names = benchmarkSuite(tfs, files, sizes, tick,
		func(input []byte, tf string) Result {
			result := BenchmarkTransform(input, Transforms[tf])
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			rate := float64(result.Bytes) / us
			return Result{R: rate}
		})
	for _, row := range results {
		for j := range row {
			row[j].D = row[j].R / row[0].R
		}
	}
	return results, names
}

// BenchmarkGrowthSuite measures the cost of each transform normalized by
// n*log2(n). A transform that runs in O(n log n) reports a roughly constant
// cost across sizes. The delta is relative to the smallest size of each file.
//
// The values returned have the same structure as BenchmarkTransformSuite.
func BenchmarkGrowthSuite(tfs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	results, names = benchmarkSuite(tfs, files, sizes, tick,
		func(input []byte, tf string) Result {
			result := BenchmarkTransform(input, Transforms[tf])
			if result.N == 0 || len(input) < 2 {
				return Result{}
			}
			ns := float64(result.T.Nanoseconds()) / float64(result.N)
			n := float64(len(input))
			return Result{R: ns / (n * math.Log2(n))}
		})
	for i := range results {
		first := results[i-i%len(sizes)]
		for j := range results[i] {
			results[i][j].D = results[i][j].R / first[j].R
		}
	}
	return results, names
}

// BenchmarkRatioSuite measures how much the output of the given transform
// improves the compression ratio of every encoder. The ratio reported is for
// the transformed input, while the delta is relative to the ratio of the
// untransformed input.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(encs)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkRatioSuite(tf Transform, encs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	const level = 6 // Default compression on all encoders
	compRatio := func(input []byte, enc Encoder) float64 {
		buf := new(bytes.Buffer)
		wr := enc(buf, level)
		if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
			return 0
		}
		if wr.Close() != nil {
			return 0
		}
		return float64(len(input)) / float64(buf.Len())
	}
	return benchmarkSuite(encs, files, sizes, tick,
		func(input []byte, enc string) Result {
			output := make([]byte, len(input))
			if _, err := tf(output, input); err != nil {
				return Result{}
			}
			raw := compRatio(input, Encoders[enc])
			bwt := compRatio(output, Encoders[enc])
			return Result{R: bwt, D: bwt / raw}
		})
}

type benchFunc func(input []byte, codec string) Result

func benchmarkSuite(codecs, files []string, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(files) * len(sizes)
	d1 := len(codecs)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every codec, file, and size.
	var i int
	for _, f := range files {
		for _, n := range sizes {
			b, err := LoadInput(f, n)
			name := getName(f, len(b))
			for j, c := range codecs {
				if tick != nil {
					tick()
				}
				names[i] = name
				if err == nil {
					results[i][j] = run(b, c)
				}
			}
			i++
		}
	}
	return results, names
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := unitconv.FormatPrefix(float64(n), unitconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", path.Base(f), sn)
}
