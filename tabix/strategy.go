// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabix

import "github.com/biogo/hts/bgzf/index"

// MergeStrategy coalesces a list of candidate bgzf.Chunks returned by a
// region query, typically to cut down the number of seeks a caller issuing
// many small queries would otherwise perform.
type MergeStrategy = index.MergeStrategy

var (
	// Identity leaves the chunk list unaltered.
	Identity = index.Identity

	// Adjacent merges contiguous chunks. This is applied automatically by
	// Chunks.
	Adjacent = index.Adjacent

	// Squash merges every chunk into a single spanning chunk.
	Squash = index.Squash
)
