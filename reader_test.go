// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"bytes"
	"io"
	"testing"
)

func TestReaderBed3RoundTrip(t *testing.T) {
	const data = "chr1\t0\t100\nchr1\t200\t300\nchr2\t0\t50\n"
	r, err := OpenReader("test.bed", bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()
	if r.Format() != Bed3 {
		t.Fatalf("got format %v, want Bed3", r.Format())
	}

	var got []string
	for {
		rec, _, err := r.ReadNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadNext: %v", err)
		}
		got = append(got, rec.RefName())
	}
	want := []string{"chr1", "chr1", "chr2"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReaderTrackAndBrowserLifecycle(t *testing.T) {
	const data = "" +
		"track name=t1\n" +
		"browser position chr1:1-1000\n" +
		"browser hide all\n" +
		"chr1\t0\t10\t.\t0\t+\n" +
		"browser position chr2:1-2000\n" +
		"chr1\t20\t30\t.\t0\t-\n"

	r, err := OpenReader("test.bed", bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()
	if r.Format() != Bed6 {
		t.Fatalf("got format %v, want Bed6", r.Format())
	}
	if !r.HasTrackLines() || !r.HasBrowserLines() {
		t.Fatalf("expected both track and browser lines detected")
	}

	_, track, meta, err := r.ReadNextWithMeta()
	if err != nil {
		t.Fatalf("ReadNextWithMeta: %v", err)
	}
	if track == nil || track.Name != "t1" {
		t.Fatalf("unexpected track: %v", track)
	}
	if meta["position"] != "chr1:1-1000" || meta["hide"] != "all" {
		t.Fatalf("expected merged browser block, got %v", meta)
	}

	_, _, meta2, err := r.ReadNextWithMeta()
	if err != nil {
		t.Fatalf("ReadNextWithMeta: %v", err)
	}
	// A data line closed the previous browser block, so the single
	// "browser position ..." line after it starts a fresh block rather
	// than merging into the one the first record saw.
	if _, ok := meta2["hide"]; ok {
		t.Fatalf("expected browser block to have reset, got %v", meta2)
	}
	if meta2["position"] != "chr2:1-2000" {
		t.Fatalf("got %v", meta2)
	}

	if _, _, _, err := r.ReadNextWithMeta(); err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

func TestReaderRewind(t *testing.T) {
	const data = "chr1\t0\t10\n"
	r, err := OpenReader("test.bed", bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	if _, _, err := r.ReadNext(); err != nil {
		t.Fatalf("ReadNext: %v", err)
	}
	if _, _, err := r.ReadNext(); err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}

	if err := r.Rewind(); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	if _, _, err := r.ReadNext(); err != nil {
		t.Fatalf("ReadNext after rewind: %v", err)
	}
}

func TestReaderRegionRequiresIndex(t *testing.T) {
	const data = "chr1\t0\t10\n"
	r, err := OpenReader("test.bed", bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	var out []Record
	err = r.ReadRegion("chr1", 0, 10, &out)
	if _, ok := err.(*TabixNotOpenError); !ok {
		t.Fatalf("got %T (%v), want *TabixNotOpenError", err, err)
	}
	if len(out) != 0 {
		t.Fatalf("expected out cleared, got %d records", len(out))
	}
}

func TestReaderSharedSymbolStore(t *testing.T) {
	store := NewSymbolStore()
	store.Intern("chrX")

	r, err := OpenReader("test.bed", bytes.NewReader([]byte("chrX\t0\t10\n")), WithSymbolStore(store))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	rec, _, err := r.ReadNext()
	if err != nil {
		t.Fatalf("ReadNext: %v", err)
	}
	if rec.RefID() != 0 {
		t.Fatalf("expected the pre-interned id 0 to be reused, got %d", rec.RefID())
	}
}
