// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

// Format identifies a BED sub-format by its column count.
type Format int

const (
	Bed3      Format = 3
	Bed4      Format = 4
	Bed5      Format = 5
	Bed6      Format = 6
	Bed12     Format = 12
	BedMethyl Format = 18
)

// String returns a short name for f, e.g. "BED6".
func (f Format) String() string {
	switch f {
	case Bed3:
		return "BED3"
	case Bed4:
		return "BED4"
	case Bed5:
		return "BED5"
	case Bed6:
		return "BED6"
	case Bed12:
		return "BED12"
	case BedMethyl:
		return "BEDMethyl"
	default:
		return "unknown"
	}
}

// Record is implemented by every BED sub-format. Start and End are the
// 0-based, half-open coordinates common to all BED variants.
type Record interface {
	RefID() RefID
	RefName() string
	Start() uint64
	End() uint64
	Format() Format
}

// RecordCore holds the fields shared by every sub-format: the interned
// reference and its span.
type RecordCore struct {
	store      *SymbolStore
	ref        RefID
	start, end uint64
}

// RefID returns the interned reference id this record belongs to.
func (r *RecordCore) RefID() RefID { return r.ref }

// RefName resolves the record's RefID back to a string via its
// SymbolStore. It returns "" if the id is not known to the store.
func (r *RecordCore) RefName() string {
	if r.store == nil {
		return ""
	}
	name, _ := r.store.Resolve(r.ref)
	return name
}

// Start returns the 0-based start coordinate.
func (r *RecordCore) Start() uint64 { return r.start }

// End returns the 0-based, exclusive end coordinate.
func (r *RecordCore) End() uint64 { return r.end }

// Bed3Record is a minimal chrom/start/end feature.
type Bed3Record struct {
	RecordCore
}

// Format returns Bed3.
func (r *Bed3Record) Format() Format { return Bed3 }

// Bed4Record adds a feature name to Bed3Record.
type Bed4Record struct {
	Bed3Record
	Name string
}

// Format returns Bed4.
func (r *Bed4Record) Format() Format { return Bed4 }

// Bed5Record adds a score to Bed4Record.
type Bed5Record struct {
	Bed4Record
	Score uint32
}

// Format returns Bed5.
func (r *Bed5Record) Format() Format { return Bed5 }

// Bed6Record adds a strand to Bed5Record.
type Bed6Record struct {
	Bed5Record
	Strand Strand
}

// Format returns Bed6.
func (r *Bed6Record) Format() Format { return Bed6 }

// Bed12Record adds thick-render bounds, an optional RGB colour and the
// block (exon) structure to Bed6Record.
type Bed12Record struct {
	Bed6Record
	ThickStart, ThickEnd uint64
	ItemRGB              string // "" means absent
	BlockCount           uint32
	BlockSizes           []uint32
	BlockStarts          []uint32
}

// Format returns Bed12.
func (r *Bed12Record) Format() Format { return Bed12 }

// BedMethylRecord adds the modified-base call columns of the BedMethyl
// (modkit-style) extension to Bed12Record.
type BedMethylRecord struct {
	Bed12Record
	NValidCov  uint32
	NMod       uint32
	NCanonical uint32
	NOtherMod  uint32
	NDelete    uint32
	NFail      uint32
	NDiff      uint32
	NNoCall    uint32
	FracMod    float32
}

// Format returns BedMethyl.
func (r *BedMethylRecord) Format() Format { return BedMethyl }
