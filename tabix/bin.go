// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabix

import (
	"github.com/biogo/hts/bgzf"
	"golang.org/x/exp/slices"
)

// These constants describe the UCSC-style hierarchical binning scheme
// shared by tabix and BAI indexes: six levels of bins, each one eighth the
// width of its parent, with bin numbers offset so that every level's bins
// occupy a disjoint range.
const (
	indexWordBits = 29
	nextBinShift  = 3
)

const (
	level0 = uint32(((1 << (iota * nextBinShift)) - 1) / 7)
	level1
	level2
	level3
	level4
	level5
)

const (
	level0Shift = indexWordBits - (iota * nextBinShift)
	level1Shift
	level2Shift
	level3Shift
	level4Shift
	level5Shift
)

// binFor returns the bin number for the interval [beg, end) (zero-based,
// half-open).
func binFor(beg, end int) uint32 {
	end--
	switch {
	case beg>>level5Shift == end>>level5Shift:
		return level5 + uint32(beg>>level5Shift)
	case beg>>level4Shift == end>>level4Shift:
		return level4 + uint32(beg>>level4Shift)
	case beg>>level3Shift == end>>level3Shift:
		return level3 + uint32(beg>>level3Shift)
	case beg>>level2Shift == end>>level2Shift:
		return level2 + uint32(beg>>level2Shift)
	case beg>>level1Shift == end>>level1Shift:
		return level1 + uint32(beg>>level1Shift)
	}
	return level0
}

// maxPos is the exclusive upper bound of the coordinate space the binning
// scheme covers (1<<29); a query starting at or beyond it has no bins.
const maxPos = 1 << indexWordBits

// candidateBins returns the bin numbers of every bin that could contain a
// feature overlapping [beg, end) (zero-based, half-open). It reports no
// bins at all once beg is at or past maxPos, and treats end==0 as covering
// only position 0, matching the source's "last covered position" clamp.
func candidateBins(beg, end int) []uint32 {
	if beg >= maxPos {
		return nil
	}
	var e int
	if end == 0 {
		e = 0
	} else {
		e = end - 1
		if e > maxPos-1 {
			e = maxPos - 1
		}
	}

	list := []uint32{level0}
	for _, r := range []struct {
		offset, shift uint32
	}{
		{level1, level1Shift},
		{level2, level2Shift},
		{level3, level3Shift},
		{level4, level4Shift},
		{level5, level5Shift},
	} {
		for k := r.offset + uint32(beg>>r.shift); k <= r.offset+uint32(e>>r.shift); k++ {
			list = append(list, k)
		}
	}
	return list
}

// vOffsetKey returns the 48:16 packed virtual offset comparison key for o.
func vOffsetKey(o bgzf.Offset) int64 {
	return o.File<<16 | int64(o.Block)
}

// mergeSortedChunks sorts chunks by their virtual begin offset. Candidate
// chunks collected across several bins are frequently out of order and may
// duplicate across adjacent bins, so the caller is expected to follow up
// with a MergeStrategy (see strategy.go) to coalesce overlapping spans.
func mergeSortedChunks(chunks []bgzf.Chunk) []bgzf.Chunk {
	slices.SortFunc(chunks, func(a, b bgzf.Chunk) bool {
		return vOffsetKey(a.Begin) < vOffsetKey(b.Begin)
	})
	return chunks
}
