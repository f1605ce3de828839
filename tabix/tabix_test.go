// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabix

import (
	"bytes"
	"encoding/binary"

	"github.com/biogo/hts/bgzf/index"
	"gopkg.in/check.v1"
)

// buildIndex writes a minimal, well-formed (but uncompressed; ReadFrom
// does not decompress) tabix index for a single reference "chr1" with one
// bin holding one chunk, and no interval tiles.
func buildIndex(withMagic bool) []byte {
	var buf bytes.Buffer
	if withMagic {
		buf.Write(tbiMagic[:])
	} else {
		buf.Write([]byte{0, 0, 0, 0})
	}
	binary.Write(&buf, binary.LittleEndian, int32(1)) // n_ref

	binary.Write(&buf, binary.LittleEndian, int32(0))   // format
	binary.Write(&buf, binary.LittleEndian, int32(1))   // col_seq
	binary.Write(&buf, binary.LittleEndian, int32(2))   // col_beg
	binary.Write(&buf, binary.LittleEndian, int32(3))   // col_end
	binary.Write(&buf, binary.LittleEndian, int32('#')) // meta
	binary.Write(&buf, binary.LittleEndian, int32(0))   // skip

	names := "chr1\x00"
	binary.Write(&buf, binary.LittleEndian, int32(len(names)))
	buf.WriteString(names)

	binary.Write(&buf, binary.LittleEndian, int32(1)) // n_bin
	binary.Write(&buf, binary.LittleEndian, uint32(level5))
	binary.Write(&buf, binary.LittleEndian, int32(1)) // n_chunk
	binary.Write(&buf, binary.LittleEndian, Compose(0, 0))
	binary.Write(&buf, binary.LittleEndian, Compose(100, 0))

	binary.Write(&buf, binary.LittleEndian, int32(0)) // n_intv

	return buf.Bytes()
}

func (s *S) TestReadFromRoundTrip(c *check.C) {
	idx, err := ReadFrom(bytes.NewReader(buildIndex(true)))
	c.Assert(err, check.IsNil)
	c.Check(idx.NumRefs(), check.Equals, 1)
	c.Check(idx.Names(), check.DeepEquals, []string{"chr1"})

	chunks, err := idx.Chunks("chr1", 0, 50)
	c.Assert(err, check.IsNil)
	c.Assert(len(chunks), check.Equals, 1)
	c.Check(chunks[0].Begin.File, check.Equals, int64(0))
	c.Check(chunks[0].End.File, check.Equals, int64(100))
}

func (s *S) TestReadFromUnknownReference(c *check.C) {
	idx, err := ReadFrom(bytes.NewReader(buildIndex(true)))
	c.Assert(err, check.IsNil)
	_, err = idx.Chunks("chrZ", 0, 1)
	c.Check(err, check.Equals, index.ErrNoReference)
}

func (s *S) TestAllChunksUnionsBins(c *check.C) {
	idx, err := ReadFrom(bytes.NewReader(buildIndex(true)))
	c.Assert(err, check.IsNil)

	chunks, err := idx.AllChunks("chr1")
	c.Assert(err, check.IsNil)
	c.Assert(len(chunks), check.Equals, 1)
	c.Check(chunks[0].End.File, check.Equals, int64(100))

	_, err = idx.AllChunks("chrZ")
	c.Check(err, check.Equals, index.ErrNoReference)
}

func (s *S) TestMagicCheckOffByDefault(c *check.C) {
	_, err := ReadFrom(bytes.NewReader(buildIndex(false)))
	c.Assert(err, check.IsNil)
}

func (s *S) TestMagicCheckOptIn(c *check.C) {
	_, err := ReadFrom(bytes.NewReader(buildIndex(false)), WithMagicCheck())
	c.Assert(err, check.NotNil)

	_, err = ReadFrom(bytes.NewReader(buildIndex(true)), WithMagicCheck())
	c.Assert(err, check.IsNil)
}
