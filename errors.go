// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrAutoDetect is returned when format auto-detection runs out of
// non-blank, non-header lines before it can determine a sub-format.
var ErrAutoDetect = errors.New("bed: could not auto-detect format: no data line found")

// BedFormatError reports that name could not be recognised as any known
// BED sub-format.
type BedFormatError struct {
	Name string
}

func (e *BedFormatError) Error() string {
	return fmt.Sprintf("bed: %s: not in BED format", e.Name)
}

// BedMismatchError reports that a data line had a column count that did
// not match the format the reader was opened with.
type BedMismatchError struct {
	Expected Format
	Got      int
}

func (e *BedMismatchError) Error() string {
	return fmt.Sprintf("bed: expected %v (%d columns), got %d columns", e.Expected, int(e.Expected), e.Got)
}

// ParseError reports a malformed data line.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bed: could not parse line: %q", e.Line)
}

// TabixFormatError reports that an index file was not in tabix format.
type TabixFormatError struct {
	Name string
}

func (e *TabixFormatError) Error() string {
	return fmt.Sprintf("bed: %s: not in tabix format", e.Name)
}

// TabixNotOpenError reports that a region query was attempted on a Reader
// that was not opened with a companion tabix index.
type TabixNotOpenError struct {
	Name string
}

func (e *TabixNotOpenError) Error() string {
	return fmt.Sprintf("bed: %s: no tabix index open for region queries", e.Name)
}

// PlainBedRegionError reports that a region query was attempted against a
// plain (non-BGZF) BED stream; region queries require virtual-offset
// seeking, which only a BGZF container supports.
type PlainBedRegionError struct {
	Name string
}

func (e *PlainBedRegionError) Error() string {
	return fmt.Sprintf("bed: %s: region queries require a BGZF-compressed file", e.Name)
}

// NoIndexError reports that no companion tabix index could be found for
// name.
type NoIndexError struct {
	Name string
}

func (e *NoIndexError) Error() string {
	return fmt.Sprintf("bed: %s: no tabix index found", e.Name)
}

// BgzfError wraps an underlying error raised by the BGZF layer.
type BgzfError struct {
	Err error
}

func (e *BgzfError) Error() string {
	return fmt.Sprintf("bed: bgzf: %v", e.Err)
}

func (e *BgzfError) Unwrap() error { return e.Err }

// wrapBgzf wraps err, raised while reading a BGZF stream, as a *BgzfError,
// or returns nil if err is nil.
func wrapBgzf(err error) error {
	if err == nil {
		return nil
	}
	return &BgzfError{Err: errors.Wrap(err, "bgzf")}
}

// wrapDetectErr turns the 10-line probe exhausting without finding a data
// line into a *BedFormatError naming the stream that could not be
// classified; any other detectFormat error (e.g. a probed line with an
// unrecognised column count) is returned unchanged.
func wrapDetectErr(name string, err error) error {
	if err == ErrAutoDetect {
		return &BedFormatError{Name: name}
	}
	return err
}
