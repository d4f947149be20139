// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare block sorting transforms. Individual
// implementations are referred to as codecs, while the general purpose
// compressors used by the ratio test are referred to as encoders.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-tests    rate,growth,ratio \
//		-codecs   mm,naive          \
//		-encoders fl,xz             \
//		-files    text,repeats      \
//		-sizes    1e4,1e5,1e6
//
//
//	BENCHMARK: rate
//		benchmark          mm MB/s  delta    naive MB/s  delta
//		text:1e4              ...
//
//	BENCHMARK: growth
//		benchmark          mm ns/nlogn  delta
//		repeats:1e4           ...
//
//	BENCHMARK: ratio
//		benchmark          fl ratio  delta      xz ratio  delta
//		text:1e4              ...
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dsnet/golib/unitconv"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/blocksort/compress/internal/tool/bench"
)

const defaultSizes = "1e4,1e5,1e6"

// The ratio test measures the output of a single reference transform.
const refTransform = "mm"

var (
	testToEnum = map[string]int{
		"rate":   bench.TestTransformRate,
		"growth": bench.TestGrowthRate,
		"ratio":  bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestTransformRate: "rate",
		bench.TestGrowthRate:    "growth",
		bench.TestCompressRatio: "ratio",
	}
)

func defaultTests() string {
	d := maps.Keys(enumToTest)
	slices.Sort(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultFiles() string {
	s := maps.Keys(bench.Generators)
	slices.Sort(s)
	return strings.Join(s, ",")
}

// defaultCodecs lists all transforms, with the reference transform first so
// that deltas are relative to it.
func defaultCodecs() string {
	s := maps.Keys(bench.Transforms)
	slices.Sort(s)
	if i := slices.Index(s, refTransform); i > 0 {
		s = append([]string{refTransform}, slices.Delete(s, i, i+1)...)
	}
	return strings.Join(s, ",")
}

func defaultEncoders() string {
	s := maps.Keys(bench.Encoders)
	slices.Sort(s)
	return strings.Join(s, ",")
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f1 := flag.String("codecs", defaultCodecs(), "List of transforms to benchmark")
	f2 := flag.String("encoders", defaultEncoders(), "List of encoders for the ratio test")
	f3 := flag.String("paths", "", "List of paths to search for test files")
	f4 := flag.String("files", defaultFiles(), "List of generated inputs or files to benchmark")
	f5 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var codecs, encoders, paths, files []string
	var tests, sizes []int
	codecs = sep.Split(*f1, -1)
	encoders = sep.Split(*f2, -1)
	paths = sep.Split(*f3, -1)
	files = sep.Split(*f4, -1)
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			fmt.Fprintf(os.Stderr, "invalid test: %q\n", s)
			os.Exit(2)
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f5, -1) {
		nf, err := unitconv.ParsePrefix(s, unitconv.AutoParse)
		if err != nil || nf < 1 {
			fmt.Fprintf(os.Stderr, "invalid size: %q\n", s)
			os.Exit(2)
		}
		sizes = append(sizes, int(nf))
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, codecs, encoders, tests, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func runBenchmarks(files, codecs, encoders []string, tests, sizes []int) {
	var tfs, encs []string
	for _, c := range codecs {
		if _, ok := bench.Transforms[c]; ok {
			tfs = append(tfs, c)
		}
	}
	for _, c := range encoders {
		if _, ok := bench.Encoders[c]; ok {
			encs = append(encs, c)
		}
	}

	for _, t := range tests {
		var results [][]bench.Result
		var names, cols []string
		var title, suffix string

		// Check that we can actually do this bench.
		fmt.Printf("BENCHMARK: %s\n", enumToTest[t])
		if len(tfs) == 0 {
			fmt.Print("\tSKIP: There are no transforms available.\n\n")
			continue
		}
		if len(encs) == 0 && t == bench.TestCompressRatio {
			fmt.Print("\tSKIP: There are no encoders available.\n\n")
			continue
		}

		// Progress ticker.
		var cnt int
		tick := func() {
			total := len(cols) * len(files) * len(sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Fprintf(os.Stderr, "\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		// Perform the bench. This may take some time.
		switch t {
		case bench.TestTransformRate:
			cols, title, suffix = tfs, "MB/s", ""
			results, names = bench.BenchmarkTransformSuite(tfs, files, sizes, tick)
		case bench.TestGrowthRate:
			cols, title, suffix = tfs, "ns/nlogn", ""
			results, names = bench.BenchmarkGrowthSuite(tfs, files, sizes, tick)
		case bench.TestCompressRatio:
			cols, title, suffix = encs, "ratio", "x"
			results, names = bench.BenchmarkRatioSuite(bench.Transforms[tfs[0]], encs, files, sizes, tick)
		default:
			panic("unknown test")
		}

		// Print all of the results.
		printResults(results, names, cols, title, suffix)
		fmt.Println()
	}
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
