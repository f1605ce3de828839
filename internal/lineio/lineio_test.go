// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lineio

import (
	"io"
	"strings"
	"testing"
)

func TestReadLineSkipsBlankAndTrimsCRLF(t *testing.T) {
	r := New(strings.NewReader("a\r\n\n\nb\nc"))
	var got []string
	for {
		line, err := r.ReadLine()
		if line != "" {
			got = append(got, line)
		}
		if err != nil {
			if err != io.EOF {
				t.Fatalf("ReadLine: %v", err)
			}
			break
		}
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReadLineTrailingPartialLine(t *testing.T) {
	r := New(strings.NewReader("only"))
	line, err := r.ReadLine()
	if line != "only" {
		t.Fatalf("got %q, want %q", line, "only")
	}
	if err != io.EOF {
		t.Fatalf("got err %v, want io.EOF", err)
	}
}

func TestReadLineEmptyStream(t *testing.T) {
	r := New(strings.NewReader(""))
	if line, err := r.ReadLine(); line != "" || err != io.EOF {
		t.Fatalf("got (%q, %v), want (\"\", io.EOF)", line, err)
	}
}

func TestResetDiscardsResidue(t *testing.T) {
	r := New(strings.NewReader("first\nsecond\n"))
	if line, _ := r.ReadLine(); line != "first" {
		t.Fatalf("got %q, want %q", line, "first")
	}
	r.Reset(strings.NewReader("fresh\n"))
	if line, _ := r.ReadLine(); line != "fresh" {
		t.Fatalf("got %q after Reset, want %q", line, "fresh")
	}
}
