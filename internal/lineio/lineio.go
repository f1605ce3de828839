// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lineio extracts newline-terminated records from a streaming
// io.Reader, transparently skipping blank lines and tolerating both LF and
// CRLF line endings. It is agnostic to what sits underneath it: a plain
// os.File or a bgzf.Reader that itself spans BGZF block boundaries work
// identically, since both simply satisfy io.Reader.
package lineio

import (
	"bufio"
	"io"
)

// Reader reads successive non-blank lines from an underlying io.Reader.
type Reader struct {
	br *bufio.Reader
}

// New returns a Reader buffering r.
func New(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 16384)}
}

// ReadLine returns the next non-blank line, with its trailing line ending
// stripped. It returns io.EOF once the underlying reader is exhausted and
// no further non-blank line remains.
func (l *Reader) ReadLine() (string, error) {
	for {
		line, err := l.br.ReadString('\n')
		if len(line) == 0 && err != nil {
			return "", err
		}
		trimmed := trimEOL(line)
		if trimmed == "" {
			if err != nil {
				return "", err
			}
			continue
		}
		return trimmed, err
	}
}

// trimEOL removes a single trailing "\n" or "\r\n" from line.
func trimEOL(line string) string {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
	}
	if n > 0 && line[n-1] == '\r' {
		n--
	}
	return line[:n]
}

// Reset discards any buffered residue and begins reading from r. Callers
// must call Reset after a random-access seek on the underlying stream,
// since previously buffered bytes are no longer contiguous with it.
func (l *Reader) Reset(r io.Reader) {
	l.br.Reset(r)
}
