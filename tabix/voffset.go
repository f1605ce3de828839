// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabix

import "github.com/biogo/hts/bgzf"

// VirtualOffset is a tabix/BAI packed virtual file offset: the upper 48
// bits give the offset of a BGZF block in the compressed file, and the
// lower 16 bits give the offset of a byte within that block's
// decompressed data.
type VirtualOffset uint64

// Split decomposes o into its compressed block offset and the
// within-block byte offset.
func (o VirtualOffset) Split() (blockOffset int64, withinBlock uint16) {
	return int64(o >> 16), uint16(o)
}

// Compose packs a block offset and within-block offset into a
// VirtualOffset.
func Compose(blockOffset int64, withinBlock uint16) VirtualOffset {
	return VirtualOffset(blockOffset<<16 | int64(withinBlock))
}

// ToBgzf converts a VirtualOffset to the equivalent bgzf.Offset.
func (o VirtualOffset) ToBgzf() bgzf.Offset {
	block, within := o.Split()
	return bgzf.Offset{File: block, Block: within}
}

// FromBgzf converts a bgzf.Offset to the equivalent VirtualOffset.
func FromBgzf(o bgzf.Offset) VirtualOffset {
	return Compose(o.File, o.Block)
}

// IsZero reports whether o is the zero virtual offset.
func (o VirtualOffset) IsZero() bool { return o == 0 }
