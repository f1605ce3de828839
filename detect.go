// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"bufio"
	"strings"
)

// maxDetectLines bounds how many non-blank lines detectFormat will read
// while probing for the first data line.
const maxDetectLines = 10

// detectFormat scans up to maxDetectLines non-blank lines from r looking
// for the first line that is neither a "track" nor a "browser" header. The
// number of whitespace-separated fields on that line determines the
// sub-format. It reports whether any track/browser header lines were seen
// along the way, so a caller can decide whether to keep them for replay.
//
// detectFormat does not rewind r; callers that need to re-read the probed
// lines must seek the underlying source back themselves.
func detectFormat(r *bufio.Reader) (format Format, hasTracks, hasBrowsers bool, err error) {
	for i := 0; i < maxDetectLines; {
		line, rerr := r.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if rerr != nil {
				break
			}
			continue
		}
		i++
		switch {
		case strings.HasPrefix(trimmed, "track"):
			hasTracks = true
		case strings.HasPrefix(trimmed, "browser"):
			hasBrowsers = true
		default:
			n := len(fields(trimmed))
			switch n {
			case 3:
				return Bed3, hasTracks, hasBrowsers, nil
			case 4:
				return Bed4, hasTracks, hasBrowsers, nil
			case 5:
				return Bed5, hasTracks, hasBrowsers, nil
			case 6:
				return Bed6, hasTracks, hasBrowsers, nil
			case 12:
				return Bed12, hasTracks, hasBrowsers, nil
			case 18:
				return BedMethyl, hasTracks, hasBrowsers, nil
			default:
				return 0, hasTracks, hasBrowsers, &ParseError{Line: trimmed}
			}
		}
		if rerr != nil {
			break
		}
	}
	return 0, hasTracks, hasBrowsers, ErrAutoDetect
}
