// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetName(t *testing.T) {
	var vectors = []struct {
		file string
		size int
		want string
	}{
		{"text", 1e4, "text:1e4"},
		{"zeros", 1e6, "zeros:1e6"},
		{"/tmp/data/twain.txt", 1e5, "twain.txt:1e5"},
		{"random", 1024, "random:1K"},
		{"binary", 100, "binary:100"},
	}
	for i, v := range vectors {
		assert.Equal(t, v.want, getName(v.file, v.size), "test %d", i)
	}
}

func TestLoadInput(t *testing.T) {
	for name := range Generators {
		b, err := LoadInput(name, 1000)
		require.NoError(t, err, name)
		assert.Len(t, b, 1000, name)

		// Generated inputs are deterministic.
		b2, _ := LoadInput(name, 1000)
		assert.Equal(t, b, b2, name)
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.txt"), []byte("abc"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), nil, 0644))
	defer func(p []string) { Paths = p }(Paths)
	Paths = []string{filepath.Join(dir, "missing"), dir}

	b, err := LoadInput("abc.txt", 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc`cbc"), b)

	_, err = LoadInput("empty.txt", 7)
	assert.Error(t, err)
	_, err = LoadInput("nonexistent.txt", 7)
	assert.Error(t, err)
}

func TestSuites(t *testing.T) {
	var tfs []string
	for name := range Transforms {
		tfs = append(tfs, name)
	}
	if len(tfs) == 0 {
		t.Skip("no transforms available")
	}
	files := []string{"text", "zeros"}
	sizes := []int{1 << 8, 1 << 10}

	var ticks int
	tick := func() { ticks++ }
	results, names := BenchmarkGrowthSuite(tfs, files, sizes, tick)
	require.Len(t, results, len(files)*len(sizes))
	require.Len(t, names, len(files)*len(sizes))
	assert.Equal(t, len(tfs)*len(files)*len(sizes), ticks)
	assert.Equal(t, "text:256", names[0])
	assert.Equal(t, "zeros:1K", names[3])
	for i, row := range results {
		require.Len(t, row, len(tfs))
		for j, r := range row {
			assert.Greater(t, r.R, 0.0, "%s, %s", names[i], tfs[j])
		}
		if i%len(sizes) == 0 {
			for _, r := range row {
				assert.Equal(t, 1.0, r.D, names[i])
			}
		}
	}

	var encs []string
	for name := range Encoders {
		encs = append(encs, name)
	}
	if len(encs) == 0 {
		return
	}
	results, names = BenchmarkRatioSuite(Transforms[tfs[0]], encs, files, sizes, nil)
	require.Len(t, results, len(files)*len(sizes))
	for i, row := range results {
		require.Len(t, row, len(encs))
		for j, r := range row {
			assert.Greater(t, r.R, 0.0, "%s, %s", names[i], encs[j])
			assert.Greater(t, r.D, 0.0, "%s, %s", names[i], encs[j])
		}
	}
}
