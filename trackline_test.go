// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import "testing"

func TestParseTrackLine(t *testing.T) {
	track := parseTrackLine(`track name="my track" description=test useScore=1 visibility=2`)
	if track.Name != "my track" {
		t.Fatalf("got name %q", track.Name)
	}
	if track.Description != "test" {
		t.Fatalf("got description %q", track.Description)
	}
	if track.UseScore != 1 || track.Visibility != 2 {
		t.Fatalf("got useScore=%d visibility=%d", track.UseScore, track.Visibility)
	}
}

func TestParseTrackLineUnknownKeyIgnored(t *testing.T) {
	track := parseTrackLine(`track name=foo bogusKey=bar`)
	if track.Name != "foo" {
		t.Fatalf("got name %q", track.Name)
	}
}

func TestParseBrowserLineEqualsAndSpaceForms(t *testing.T) {
	attrs := parseBrowserLine("browser position chr1:1-1000 hide=all")
	if attrs["position"] != "chr1:1-1000" {
		t.Fatalf("got position %q", attrs["position"])
	}
	if attrs["hide"] != "all" {
		t.Fatalf("got hide %q", attrs["hide"])
	}
}

func TestBrowserMetaCloneIsIndependent(t *testing.T) {
	m := BrowserMeta{"a": "1"}
	c := m.clone()
	c["a"] = "2"
	if m["a"] != "1" {
		t.Fatalf("clone mutated original: %v", m)
	}
}

func TestBrowserMetaCloneNil(t *testing.T) {
	var m BrowserMeta
	if m.clone() != nil {
		t.Fatal("expected clone of nil to be nil")
	}
}
