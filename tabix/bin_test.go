// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabix

import (
	"testing"

	"github.com/biogo/hts/bgzf"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestBinFor(c *check.C) {
	for _, t := range []struct {
		beg, end int
		bin      uint32
	}{
		{0, 1, level5},
		{0, 1 << 14, level5},
		{0, 1<<14 + 1, level4},
		{0, 1 << 29, level0},
	} {
		c.Check(binFor(t.beg, t.end), check.Equals, t.bin, check.Commentf("beg=%d end=%d", t.beg, t.end))
	}
}

func (s *S) TestCandidateBinsIncludesBinFor(c *check.C) {
	for _, iv := range [][2]int{{0, 100}, {1 << 14, 1 << 15}, {0, 1 << 20}} {
		bin := binFor(iv[0], iv[1])
		cands := candidateBins(iv[0], iv[1])
		found := false
		for _, b := range cands {
			if b == bin {
				found = true
				break
			}
		}
		c.Check(found, check.Equals, true, check.Commentf("bin %d for [%d,%d) missing from candidates %v", bin, iv[0], iv[1], cands))
	}
}

func (s *S) TestMergeSortedChunksOrdering(c *check.C) {
	chunks := []bgzf.Chunk{
		{Begin: bgzf.Offset{File: 10}, End: bgzf.Offset{File: 20}},
		{Begin: bgzf.Offset{File: 0}, End: bgzf.Offset{File: 5}},
		{Begin: bgzf.Offset{File: 5}, End: bgzf.Offset{File: 10}},
	}
	sorted := mergeSortedChunks(chunks)
	for i := 1; i < len(sorted); i++ {
		c.Check(vOffsetKey(sorted[i-1].Begin) <= vOffsetKey(sorted[i].Begin), check.Equals, true)
	}
}

func (s *S) TestVirtualOffsetSplitCompose(c *check.C) {
	o := Compose(12345, 678)
	block, within := o.Split()
	c.Check(block, check.Equals, int64(12345))
	c.Check(within, check.Equals, uint16(678))

	bo := o.ToBgzf()
	c.Check(bo.File, check.Equals, int64(12345))
	c.Check(bo.Block, check.Equals, uint16(678))
	c.Check(FromBgzf(bo), check.Equals, o)
}

func (s *S) TestVirtualOffsetIsZero(c *check.C) {
	c.Check(VirtualOffset(0).IsZero(), check.Equals, true)
	c.Check(Compose(1, 0).IsZero(), check.Equals, false)
}
