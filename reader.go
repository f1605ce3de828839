// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/biogo/hts/bgzf/cache"
	"github.com/pkg/errors"

	"github.com/biogo/bed/internal/lineio"
	"github.com/biogo/bed/tabix"
)

// bgzfMagic is the leading two bytes of any gzip (and so any BGZF) stream.
var bgzfMagic = [2]byte{0x1f, 0x8b}

// Reader reads BED records, in any of the supported sub-formats, from a
// plain-text or BGZF-compressed stream, optionally indexed by a
// companion tabix file for region queries.
type Reader struct {
	name   string
	store  *SymbolStore
	format Format

	f   *os.File
	src io.ReadSeeker
	bgz *bgzf.Reader
	lr  *lineio.Reader

	tbi *tabix.Index

	track        *Track
	lastBrowser  BrowserMeta
	resetBrowser bool

	hasTracks, hasBrowsers bool

	pendingCache cache.Cache
	openErr      error
}

// Option configures a Reader at construction time.
type Option func(*Reader)

// WithSymbolStore makes Open/OpenReader intern reference names into store
// instead of a freshly allocated one, letting several Readers share a
// single RefID space.
func WithSymbolStore(store *SymbolStore) Option {
	return func(r *Reader) { r.store = store }
}

// WithBlockCache gives the Reader's BGZF layer an n-block FIFO cache, so
// repeated region queries that revisit a block avoid redecompressing it.
// It has no effect on a Reader opened over a plain (non-BGZF) stream.
func WithBlockCache(n int) Option {
	return func(r *Reader) { r.pendingCache = cache.NewFIFO(n) }
}

// Open opens the BED file at path, auto-detecting its sub-format and
// whether it is BGZF-compressed. If path ends in ".gz" and no tabix index
// is supplied via WithIndex, Open looks for a companion index at
// path+".tbi" (i.e. "foo.bed.gz" pairs with "foo.bed.gz.tbi") and opens it
// automatically if present.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "bed: open %s", path)
	}

	r, err := OpenReader(filepath.Base(path), f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}

	if r.tbi == nil && filepath.Ext(path) == ".gz" {
		tbiPath := path + ".tbi"
		if tf, err := os.Open(tbiPath); err == nil {
			idx, err := loadIndex(filepath.Base(tbiPath), tf)
			tf.Close()
			if err != nil {
				r.Close()
				return nil, err
			}
			r.tbi = idx
		}
	}

	return r, nil
}

// WithIndex attaches a tabix index, read from ir, to the Reader being
// opened, enabling ReadRegion/ReadAllInRef.
func WithIndex(ir io.Reader) Option {
	return func(r *Reader) {
		idx, err := loadIndex(r.name, ir)
		if err != nil {
			// Recorded so OpenReader can surface it; see openErr field
			// usage below.
			r.openErr = err
			return
		}
		r.tbi = idx
	}
}

func loadIndex(name string, r io.Reader) (*tabix.Index, error) {
	bgz, err := bgzf.NewReader(r, 1)
	if err != nil {
		return nil, &TabixFormatError{Name: name}
	}
	defer bgz.Close()
	idx, err := tabix.ReadFrom(bgz)
	if err != nil {
		return nil, errors.Wrapf(err, "bed: %s: reading tabix index", name)
	}
	return idx, nil
}

// OpenReader opens a Reader over r, seeking r back to its start after
// probing its container and sub-format: plain-text input is read
// directly, while an underlying BGZF container is detected by its
// leading gzip magic and decompressed transparently. name is used only
// in error messages.
func OpenReader(name string, r io.ReadSeeker, opts ...Option) (*Reader, error) {
	rd := &Reader{name: name, resetBrowser: true}
	for _, opt := range opts {
		opt(rd)
	}
	if rd.openErr != nil {
		return nil, rd.openErr
	}
	if rd.store == nil {
		rd.store = NewSymbolStore()
	}

	isBGZF, err := peekBGZF(r)
	if err != nil {
		return nil, errors.Wrap(err, "bed: detecting container")
	}

	if isBGZF {
		bgz, err := bgzf.NewReader(r, 1)
		if err != nil {
			return nil, wrapBgzf(err)
		}
		if rd.pendingCache != nil {
			bgz.SetCache(rd.pendingCache)
		}
		format, hasTracks, hasBrowsers, err := detectFormat(bufio.NewReader(bgz))
		if err != nil {
			return nil, wrapDetectErr(rd.name, err)
		}
		if err := bgz.Seek(bgzf.Offset{}); err != nil {
			return nil, wrapBgzf(err)
		}
		rd.bgz = bgz
		if f, ok := r.(*os.File); ok {
			rd.f = f
		}
		rd.format = format
		rd.hasTracks, rd.hasBrowsers = hasTracks, hasBrowsers
		rd.lr = lineio.New(bgz)
		return rd, nil
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "bed: seeking to start")
	}
	format, hasTracks, hasBrowsers, err := detectFormat(bufio.NewReader(r))
	if err != nil {
		return nil, wrapDetectErr(rd.name, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "bed: seeking to start")
	}

	rd.src = r
	if f, ok := r.(*os.File); ok {
		rd.f = f
	}
	rd.format = format
	rd.hasTracks, rd.hasBrowsers = hasTracks, hasBrowsers
	rd.lr = lineio.New(r)
	return rd, nil
}

// HasTrackLines reports whether a "track" header line was seen while
// auto-detecting the sub-format.
func (r *Reader) HasTrackLines() bool { return r.hasTracks }

// HasBrowserLines reports whether a "browser" header line was seen while
// auto-detecting the sub-format.
func (r *Reader) HasBrowserLines() bool { return r.hasBrowsers }

// peekBGZF reports whether r begins with the gzip magic bytes, leaving r
// positioned at its start (offset 0).
func peekBGZF(r io.ReadSeeker) (bool, error) {
	var magic [2]byte
	n, err := io.ReadFull(r, magic[:])
	if _, serr := r.Seek(0, io.SeekStart); serr != nil {
		return false, serr
	}
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}
	return n == 2 && magic == bgzfMagic, nil
}

// Format returns the BED sub-format this Reader was opened with.
func (r *Reader) Format() Format { return r.format }

// Name returns the name the Reader was opened or constructed with.
func (r *Reader) Name() string { return r.name }

// SymbolStore returns the SymbolStore this Reader interns reference names
// into.
func (r *Reader) SymbolStore() *SymbolStore { return r.store }

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	var err error
	if r.bgz != nil {
		err = r.bgz.Close()
	}
	if r.f != nil {
		if ferr := r.f.Close(); err == nil {
			err = ferr
		}
	}
	return err
}

// Rewind repositions the Reader at the start of the stream and resets its
// track/browser header state, so ReadNext/ReadNextWithMeta begin again
// from the first line.
func (r *Reader) Rewind() error {
	r.track = nil
	r.lastBrowser = nil
	r.resetBrowser = true

	if r.bgz != nil {
		if err := r.bgz.Seek(bgzf.Offset{}); err != nil {
			return wrapBgzf(err)
		}
		r.lr.Reset(r.bgz)
		return nil
	}
	if r.src != nil {
		if _, err := r.src.Seek(0, io.SeekStart); err != nil {
			return errors.Wrap(err, "bed: rewind")
		}
		r.lr.Reset(r.src)
		return nil
	}
	return nil
}

// ReadNext returns the next data record, along with the most recently
// seen track header, if any. Browser header lines are consumed but
// discarded, matching a reader that has no use for display metadata. It
// returns io.EOF when the stream is exhausted.
func (r *Reader) ReadNext() (Record, *Track, error) {
	for {
		line, rerr := r.lr.ReadLine()
		if line == "" {
			if rerr != nil {
				return nil, nil, eofOr(rerr)
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "track"):
			t := parseTrackLine(trimmed)
			r.track = &t
		case strings.HasPrefix(trimmed, "browser"):
			// Discarded: ReadNext does not track browser metadata.
		default:
			rec, err := parseRecord(r.store, r.format, trimmed)
			if err != nil {
				return nil, nil, err
			}
			return rec, r.track, nil
		}

		if rerr != nil {
			return nil, nil, eofOr(rerr)
		}
	}
}

// eofOr returns io.EOF unchanged and wraps any other read error, so that a
// stream simply running out is distinguishable from a failing one.
func eofOr(err error) error {
	if err == io.EOF {
		return io.EOF
	}
	return errors.Wrap(err, "bed: reading line")
}

// ReadNextWithMeta returns the next data record, its most recently seen
// track header, and the BrowserMeta block in effect for it.
//
// Consecutive "browser" lines accumulate into a single BrowserMeta block.
// A data line closes the current block: the next run of "browser" lines
// starts a fresh block rather than merging into the one that preceded the
// data. It returns io.EOF when the stream is exhausted.
func (r *Reader) ReadNextWithMeta() (Record, *Track, BrowserMeta, error) {
	for {
		line, rerr := r.lr.ReadLine()
		if line == "" {
			if rerr != nil {
				return nil, nil, nil, eofOr(rerr)
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "track"):
			t := parseTrackLine(trimmed)
			r.track = &t
		case strings.HasPrefix(trimmed, "browser"):
			parsed := parseBrowserLine(trimmed)
			if r.resetBrowser || r.lastBrowser == nil {
				r.lastBrowser = parsed
			} else {
				for k, v := range parsed {
					r.lastBrowser[k] = v
				}
			}
			r.resetBrowser = false
		default:
			r.resetBrowser = true
			rec, err := parseRecord(r.store, r.format, trimmed)
			if err != nil {
				return nil, nil, nil, err
			}
			return rec, r.track, r.lastBrowser.clone(), nil
		}

		if rerr != nil {
			return nil, nil, nil, eofOr(rerr)
		}
	}
}
