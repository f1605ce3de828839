// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"strconv"
	"strings"
)

// fields splits a data line into whitespace-separated tokens, the way every
// BED sub-format is columnar on runs of spaces or tabs.
func fields(line string) []string {
	return strings.Fields(line)
}

// parseUint parses s as a decimal, unsigned 64-bit integer, returning a
// ParseError wrapping line on overflow or non-digit input. It deliberately
// does not accept a leading sign or whitespace.
func parseUint(s, line string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Line: line}
	}
	return v, nil
}

// parseUint32 parses s as a decimal, unsigned 32-bit integer, returning a
// ParseError wrapping line when s overflows 32 bits or is not a number.
func parseUint32(s, line string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &ParseError{Line: line}
	}
	return uint32(v), nil
}

// parseFloat32 parses s as a 32-bit float, returning a ParseError wrapping
// line on failure.
func parseFloat32(s, line string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, &ParseError{Line: line}
	}
	return float32(v), nil
}

// parseUint32List splits s on commas and parses each non-empty piece as a
// uint32. A malformed item is silently treated as 0 rather than rejecting
// the whole record, matching the lenient comma-list handling the block
// fields of BED12/BedMethyl are read with.
func parseUint32List(s string) []uint32 {
	parts := strings.Split(s, ",")
	out := make([]uint32, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			out = append(out, 0)
			continue
		}
		out = append(out, uint32(v))
	}
	return out
}

// parseRecord parses line according to format, interning the reference
// name against store. It returns a Record whose concrete type matches
// format, or an error describing why the line could not be parsed.
func parseRecord(store *SymbolStore, format Format, line string) (Record, error) {
	f := fields(line)
	if len(f) != int(format) {
		return nil, &BedMismatchError{Expected: format, Got: len(f)}
	}

	start, err := parseUint(f[1], line)
	if err != nil {
		return nil, err
	}
	end, err := parseUint(f[2], line)
	if err != nil {
		return nil, err
	}
	core := RecordCore{store: store, ref: store.Intern(f[0]), start: start, end: end}

	switch format {
	case Bed3:
		return &Bed3Record{RecordCore: core}, nil
	case Bed4:
		return &Bed4Record{Bed3Record: Bed3Record{RecordCore: core}, Name: f[3]}, nil
	case Bed5:
		score, err := parseUint32(f[4], line)
		if err != nil {
			return nil, err
		}
		return &Bed5Record{
			Bed4Record: Bed4Record{Bed3Record: Bed3Record{RecordCore: core}, Name: f[3]},
			Score:      score,
		}, nil
	case Bed6:
		score, err := parseUint32(f[4], line)
		if err != nil {
			return nil, err
		}
		return &Bed6Record{
			Bed5Record: Bed5Record{
				Bed4Record: Bed4Record{Bed3Record: Bed3Record{RecordCore: core}, Name: f[3]},
				Score:      score,
			},
			Strand: ParseStrand(f[5]),
		}, nil
	case Bed12:
		score, err := parseUint32(f[4], line)
		if err != nil {
			return nil, err
		}
		thickStart, err := parseUint(f[6], line)
		if err != nil {
			return nil, err
		}
		thickEnd, err := parseUint(f[7], line)
		if err != nil {
			return nil, err
		}
		blockCount, err := parseUint32(f[9], line)
		if err != nil {
			return nil, err
		}
		return &Bed12Record{
			Bed6Record: Bed6Record{
				Bed5Record: Bed5Record{
					Bed4Record: Bed4Record{Bed3Record: Bed3Record{RecordCore: core}, Name: f[3]},
					Score:      score,
				},
				Strand: ParseStrand(f[5]),
			},
			ThickStart:  thickStart,
			ThickEnd:    thickEnd,
			ItemRGB:     f[8],
			BlockCount:  blockCount,
			BlockSizes:  parseUint32List(f[10]),
			BlockStarts: parseUint32List(f[11]),
		}, nil
	case BedMethyl:
		score, err := parseUint32(f[4], line)
		if err != nil {
			return nil, err
		}
		thickStart, err := parseUint(f[6], line)
		if err != nil {
			return nil, err
		}
		thickEnd, err := parseUint(f[7], line)
		if err != nil {
			return nil, err
		}
		nValidCov, err := parseUint32(f[9], line)
		if err != nil {
			return nil, err
		}
		fracMod, err := parseFloat32(f[10], line)
		if err != nil {
			return nil, err
		}
		nMod, err := parseUint32(f[11], line)
		if err != nil {
			return nil, err
		}
		nCanonical, err := parseUint32(f[12], line)
		if err != nil {
			return nil, err
		}
		nOtherMod, err := parseUint32(f[13], line)
		if err != nil {
			return nil, err
		}
		nDelete, err := parseUint32(f[14], line)
		if err != nil {
			return nil, err
		}
		nFail, err := parseUint32(f[15], line)
		if err != nil {
			return nil, err
		}
		nDiff, err := parseUint32(f[16], line)
		if err != nil {
			return nil, err
		}
		nNoCall, err := parseUint32(f[17], line)
		if err != nil {
			return nil, err
		}
		return &BedMethylRecord{
			Bed12Record: Bed12Record{
				Bed6Record: Bed6Record{
					Bed5Record: Bed5Record{
						Bed4Record: Bed4Record{Bed3Record: Bed3Record{RecordCore: core}, Name: f[3]},
						Score:      score,
					},
					Strand: ParseStrand(f[5]),
				},
				ThickStart: thickStart,
				ThickEnd:   thickEnd,
				ItemRGB:    f[8],
			},
			NValidCov:  nValidCov,
			FracMod:    fracMod,
			NMod:       nMod,
			NCanonical: nCanonical,
			NOtherMod:  nOtherMod,
			NDelete:    nDelete,
			NFail:      nFail,
			NDiff:      nDiff,
			NNoCall:    nNoCall,
		}, nil
	default:
		return nil, &ParseError{Line: line}
	}
}
