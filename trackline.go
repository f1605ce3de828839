// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"strconv"
	"strings"
)

// isKeyByte reports whether b may appear in a track/browser attribute key:
// alphanumerics, underscore and hyphen.
func isKeyByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == '-':
		return true
	default:
		return false
	}
}

// parseKeyValue reads one "key=value" pair from the front of s, where value
// may be double-quoted (allowing embedded whitespace) or a bare run of
// non-whitespace. It returns the key, the value, and the remainder of s
// after the pair and any trailing whitespace, or ok=false if s does not
// begin with a well-formed pair.
func parseKeyValue(s string) (key, value, rest string, ok bool) {
	i := 0
	for i < len(s) && isKeyByte(s[i]) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '=' {
		return "", "", s, false
	}
	key = s[:i]
	s = s[i+1:]

	if len(s) > 0 && s[0] == '"' {
		end := strings.IndexByte(s[1:], '"')
		if end < 0 {
			return "", "", s, false
		}
		value = s[1 : 1+end]
		rest = strings.TrimLeft(s[1+end+1:], " \t")
		return key, value, rest, true
	}

	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return key, s, "", true
	}
	return key, s[:end], strings.TrimLeft(s[end:], " \t"), true
}

// parseTrackLine parses a "track key=value ..." header line into a Track.
// Unrecognised keys are ignored; malformed numeric attributes are left at
// their zero value.
func parseTrackLine(line string) Track {
	var t Track
	rest := strings.TrimLeft(strings.TrimPrefix(line, "track"), " \t")
	for rest != "" {
		key, value, next, ok := parseKeyValue(rest)
		if !ok {
			break
		}
		switch key {
		case "name":
			t.Name = value
		case "description":
			t.Description = value
		case "visibility":
			if v, err := strconv.ParseUint(value, 10, 8); err == nil {
				t.Visibility = uint8(v)
			}
		case "itemRgb":
			t.ItemRGB = value
		case "color":
			t.Color = value
		case "useScore":
			if v, err := strconv.ParseUint(value, 10, 8); err == nil {
				t.UseScore = uint8(v)
			}
		}
		rest = next
	}
	return t
}

// parseBrowserPair reads one "key value" or "key=value" pair from the
// front of s, as browser lines accept either form for a given attribute.
func parseBrowserPair(s string) (key, value, rest string, ok bool) {
	i := 0
	for i < len(s) && isKeyByte(s[i]) {
		i++
	}
	if i == 0 {
		return "", "", s, false
	}
	key = s[:i]
	s = strings.TrimLeft(s[i:], " \t")
	if s == "" {
		return key, "", "", true
	}
	if s[0] == '=' {
		s = s[1:]
	}
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return key, s, "", true
	}
	return key, s[:end], strings.TrimLeft(s[end:], " \t"), true
}

// parseBrowserLine parses a "browser key value key value ..." header line
// into a flat attribute map.
func parseBrowserLine(line string) BrowserMeta {
	attrs := make(BrowserMeta)
	rest := strings.TrimLeft(strings.TrimPrefix(line, "browser"), " \t")
	for rest != "" {
		key, value, next, ok := parseBrowserPair(rest)
		if !ok {
			break
		}
		attrs[key] = value
		rest = next
	}
	return attrs
}
