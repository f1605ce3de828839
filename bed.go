// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bed implements reading of BED and BED-family (BED3 through
// BED12, and the BedMethyl modified-base extension) genomic interval
// files, including region queries against a BGZF-compressed file with a
// companion tabix index.
package bed
