// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package internal

// Fuzzing runs with the cheap invariant checks enabled. Checks whose cost
// grows with the length of the compared prefixes are skipped under GoFuzz so
// that the fuzzer keeps its throughput.
const (
	Debug  = true
	GoFuzz = true
)
