// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

// Track holds the metadata carried by a "track" header line. Zero values
// mean the corresponding attribute was not present on the line.
type Track struct {
	Name        string
	Description string
	Visibility  uint8
	ItemRGB     string
	Color       string
	UseScore    uint8
}

// BrowserMeta accumulates the attributes of one or more consecutive
// "browser" header lines. See Reader.ReadNextWithMeta for the lifecycle
// rules governing when a block of BrowserMeta is reset versus merged into.
type BrowserMeta map[string]string

// clone returns a shallow copy of m, or nil if m is nil.
func (m BrowserMeta) clone() BrowserMeta {
	if m == nil {
		return nil
	}
	c := make(BrowserMeta, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
