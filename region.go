// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"io"
	"strings"

	"github.com/biogo/hts/bgzf/index"

	"github.com/biogo/bed/internal/lineio"
)

// ReadRegion collects into out every record of refName overlapping
// [start, end) (zero-based, half-open), clearing out first so the caller
// can reuse one slice across many queries. It requires the Reader to have
// been opened with a companion tabix index over a BGZF container; see
// TabixNotOpenError and PlainBedRegionError.
//
// A refName absent from the index is not an error: ReadRegion leaves out
// empty and succeeds, matching the convention that an unindexed reference
// simply has no data rather than being a malformed query.
func (r *Reader) ReadRegion(refName string, start, end uint64, out *[]Record) error {
	*out = (*out)[:0]
	if r.tbi == nil {
		return &TabixNotOpenError{Name: r.name}
	}
	if r.bgz == nil {
		return &PlainBedRegionError{Name: r.name}
	}

	chunks, err := r.tbi.Chunks(refName, int(start), int(end))
	if err == index.ErrNoReference {
		return nil
	}
	if err != nil {
		return wrapBgzf(err)
	}
	if len(chunks) == 0 {
		return nil
	}

	cr, err := index.NewChunkReader(r.bgz, chunks)
	if err != nil {
		return wrapBgzf(err)
	}
	defer cr.Close()
	// The chunk reader has seeked the BGZF stream, so any line residue
	// buffered by a previous sequential read is no longer contiguous.
	defer r.lr.Reset(r.bgz)

	if err := r.readRecordsFrom(cr, out); err != nil {
		return err
	}

	// Bins are coarse and a chunk's tail may spill into the next
	// reference's records, so both the coordinate overlap and the
	// reference itself must be re-checked.
	refID := r.store.Intern(refName)
	kept := (*out)[:0]
	for _, rec := range *out {
		if rec.RefID() == refID && rec.Start() < end && rec.End() > start {
			kept = append(kept, rec)
		}
	}
	*out = kept
	return nil
}

// ReadAllInRef collects into out every record belonging to refName,
// without a coordinate filter, clearing out first. See ReadRegion for the
// index/container requirements and the no-reference-is-not-an-error
// convention.
func (r *Reader) ReadAllInRef(refName string, out *[]Record) error {
	*out = (*out)[:0]
	if r.tbi == nil {
		return &TabixNotOpenError{Name: r.name}
	}
	if r.bgz == nil {
		return &PlainBedRegionError{Name: r.name}
	}

	chunks, err := r.tbi.AllChunks(refName)
	if err == index.ErrNoReference {
		return nil
	}
	if err != nil {
		return wrapBgzf(err)
	}
	if len(chunks) == 0 {
		return nil
	}

	cr, err := index.NewChunkReader(r.bgz, chunks)
	if err != nil {
		return wrapBgzf(err)
	}
	defer cr.Close()
	defer r.lr.Reset(r.bgz)

	if err := r.readRecordsFrom(cr, out); err != nil {
		return err
	}

	refID := r.store.Intern(refName)
	kept := (*out)[:0]
	for _, rec := range *out {
		if rec.RefID() == refID {
			kept = append(kept, rec)
		}
	}
	*out = kept
	return nil
}

// readRecordsFrom drains every data line out of src, parsing each with
// the Reader's format and SymbolStore and appending to out. Any header
// lines encountered (region reads should not normally see one, since
// tabix chunks start at a data line boundary) are skipped rather than
// rejected.
func (r *Reader) readRecordsFrom(src io.Reader, out *[]Record) error {
	lr := lineio.New(src)
	for {
		line, err := lr.ReadLine()
		if line != "" {
			trimmed := strings.TrimSpace(line)
			if !strings.HasPrefix(trimmed, "track") && !strings.HasPrefix(trimmed, "browser") {
				rec, perr := parseRecord(r.store, r.format, trimmed)
				if perr != nil {
					return perr
				}
				*out = append(*out, rec)
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return wrapBgzf(err)
		}
	}
}
