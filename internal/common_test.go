// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTags(t *testing.T) {
	if GoFuzz {
		assert.True(t, Debug, "fuzz builds must enable invariant checks")
	}
}

func TestError(t *testing.T) {
	var err error = Error("invalid rank")
	assert.Equal(t, "compress: invalid rank", err.Error())
}
