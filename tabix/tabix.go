// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabix implements reading of the binary tabix (.tbi) coordinate
// index used to seek directly to the BGZF chunks holding a genomic region
// of a block-compressed, coordinate-sorted file.
package tabix

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/biogo/hts/bgzf/index"
)

var tbiMagic = [4]byte{'T', 'B', 'I', 0x1}

// Index is a parsed tabix index.
type Index struct {
	Format    int32
	ZeroBased bool

	NameColumn  int32
	BeginColumn int32
	EndColumn   int32

	MetaChar rune
	Skip     int32

	refNames []string
	nameMap  map[string]int
	refs     []reference
}

// reference holds the per-bin chunk lists for a single reference sequence.
// intervals is the per-16kbp-tile linear index the tabix format also
// stores; it is read so the stream position stays correct but is not
// consulted when answering a query (see Chunks below and candidateBins
// in bin.go).
type reference struct {
	bins      map[uint32][]bgzf.Chunk
	intervals []VirtualOffset
}

// options configure ReadFrom.
type options struct {
	checkMagic bool
}

// Option configures the behaviour of ReadFrom.
type Option func(*options)

// WithMagicCheck makes ReadFrom reject an index whose leading 4 bytes are
// not the "TBI\x01" magic. This is off by default: real-world tabix
// indexes reliably start with this magic, but requiring it rejects
// otherwise well-formed indexes produced by tools that omit it.
func WithMagicCheck() Option {
	return func(o *options) { o.checkMagic = true }
}

// NumRefs returns the number of reference sequences in the index.
func (idx *Index) NumRefs() int { return len(idx.refs) }

// Names returns the reference names in the index, in index order. The
// returned slice must not be modified.
func (idx *Index) Names() []string { return idx.refNames }

// IDs returns a map of reference name to its index-order id. The returned
// map must not be modified.
func (idx *Index) IDs() map[string]int { return idx.nameMap }

// Chunks returns the BGZF chunks that may hold features of ref overlapping
// [beg, end) (zero-based, half-open). It returns index.ErrNoReference if
// ref is not present in the index. The candidate chunks are merged with
// the Adjacent strategy before being returned; MergeChunks can apply a
// further MergeStrategy to the index's stored chunk lists.
func (idx *Index) Chunks(ref string, beg, end int) ([]bgzf.Chunk, error) {
	id, ok := idx.nameMap[ref]
	if !ok {
		return nil, index.ErrNoReference
	}
	r := idx.refs[id]

	var chunks []bgzf.Chunk
	for _, bin := range candidateBins(beg, end) {
		chunks = append(chunks, r.bins[bin]...)
	}
	chunks = mergeSortedChunks(chunks)
	return Adjacent(chunks), nil
}

// AllChunks returns the union of every chunk recorded for ref, across all
// of its bins, merged with the Adjacent strategy. It returns
// index.ErrNoReference if ref is not present in the index.
func (idx *Index) AllChunks(ref string) ([]bgzf.Chunk, error) {
	id, ok := idx.nameMap[ref]
	if !ok {
		return nil, index.ErrNoReference
	}
	var chunks []bgzf.Chunk
	for _, c := range idx.refs[id].bins {
		chunks = append(chunks, c...)
	}
	chunks = mergeSortedChunks(chunks)
	return Adjacent(chunks), nil
}

// MergeChunks applies s to the chunk list of every bin in the index,
// replacing it in place.
func (idx *Index) MergeChunks(s MergeStrategy) {
	if s == nil {
		return
	}
	for i := range idx.refs {
		for bin, chunks := range idx.refs[i].bins {
			idx.refs[i].bins[bin] = s(mergeSortedChunks(chunks))
		}
	}
}

// ReadFrom reads a tabix index from r. The tabix specification stores the
// index itself BGZF-compressed; ReadFrom does not perform decompression,
// so callers reading a .tbi file from disk should wrap r in a bgzf.Reader
// first.
func ReadFrom(r io.Reader, opts ...Option) (*Index, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var magic [4]byte
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, err
	}
	if o.checkMagic && magic != tbiMagic {
		return nil, fmt.Errorf("tabix: magic number mismatch")
	}

	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}

	idx := &Index{nameMap: make(map[string]int)}
	if err := readHeader(r, idx); err != nil {
		return nil, err
	}
	if len(idx.refNames) != int(n) {
		return nil, fmt.Errorf("tabix: name count mismatch: %d != %d", len(idx.refNames), n)
	}
	for i, name := range idx.refNames {
		idx.nameMap[name] = i
	}

	idx.refs = make([]reference, n)
	for i := range idx.refs {
		ref, err := readReference(r)
		if err != nil {
			return nil, fmt.Errorf("tabix: reading reference %d: %w", i, err)
		}
		idx.refs[i] = ref
	}

	return idx, nil
}

func readHeader(r io.Reader, idx *Index) error {
	if err := binary.Read(r, binary.LittleEndian, &idx.Format); err != nil {
		return fmt.Errorf("tabix: failed to read format: %v", err)
	}
	idx.ZeroBased = idx.Format&0x10000 != 0

	if err := binary.Read(r, binary.LittleEndian, &idx.NameColumn); err != nil {
		return fmt.Errorf("tabix: failed to read name column index: %v", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &idx.BeginColumn); err != nil {
		return fmt.Errorf("tabix: failed to read begin column index: %v", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &idx.EndColumn); err != nil {
		return fmt.Errorf("tabix: failed to read end column index: %v", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &idx.MetaChar); err != nil {
		return fmt.Errorf("tabix: failed to read metacharacter: %v", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &idx.Skip); err != nil {
		return fmt.Errorf("tabix: failed to read skip count: %v", err)
	}

	var l int32
	if err := binary.Read(r, binary.LittleEndian, &l); err != nil {
		return fmt.Errorf("tabix: failed to read name block length: %v", err)
	}
	nameBytes := make([]byte, l)
	if _, err := io.ReadFull(r, nameBytes); err != nil {
		return fmt.Errorf("tabix: failed to read names: %v", err)
	}
	names := string(nameBytes)
	var refNames []string
	for _, name := range strings.Split(names, "\x00") {
		if name != "" {
			refNames = append(refNames, name)
		}
	}
	idx.refNames = refNames

	return nil
}

func readReference(r io.Reader) (reference, error) {
	ref := reference{bins: make(map[uint32][]bgzf.Chunk)}

	var nBin int32
	if err := binary.Read(r, binary.LittleEndian, &nBin); err != nil {
		return ref, fmt.Errorf("reading bin count: %w", err)
	}
	for b := int32(0); b < nBin; b++ {
		var bin uint32
		if err := binary.Read(r, binary.LittleEndian, &bin); err != nil {
			return ref, fmt.Errorf("reading bin number: %w", err)
		}
		var nChunk int32
		if err := binary.Read(r, binary.LittleEndian, &nChunk); err != nil {
			return ref, fmt.Errorf("reading chunk count: %w", err)
		}
		chunks := make([]bgzf.Chunk, nChunk)
		for c := int32(0); c < nChunk; c++ {
			var begin, end uint64
			if err := binary.Read(r, binary.LittleEndian, &begin); err != nil {
				return ref, fmt.Errorf("reading chunk begin: %w", err)
			}
			if err := binary.Read(r, binary.LittleEndian, &end); err != nil {
				return ref, fmt.Errorf("reading chunk end: %w", err)
			}
			chunks[c] = bgzf.Chunk{
				Begin: VirtualOffset(begin).ToBgzf(),
				End:   VirtualOffset(end).ToBgzf(),
			}
		}
		ref.bins[bin] = append(ref.bins[bin], chunks...)
	}

	var nIntv int32
	if err := binary.Read(r, binary.LittleEndian, &nIntv); err != nil {
		return ref, fmt.Errorf("reading interval count: %w", err)
	}
	ref.intervals = make([]VirtualOffset, nIntv)
	for i := int32(0); i < nIntv; i++ {
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return ref, fmt.Errorf("reading interval offset: %w", err)
		}
		ref.intervals[i] = VirtualOffset(v)
	}

	return ref, nil
}
