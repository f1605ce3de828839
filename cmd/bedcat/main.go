// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bedcat streams a BED file's records to stdout, resolving each record's
// reference name and printing the track and browser metadata in effect
// for it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/biogo/bed"
)

func main() {
	region := flag.String("region", "", "reference:start-end to query instead of streaming the whole file (requires a tabix index)")
	cache := flag.Int("cache", 0, "number of BGZF blocks to cache (0 disables caching)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("bedcat: expecting a single BED file argument")
	}
	path := flag.Arg(0)

	var opts []bed.Option
	if *cache > 0 {
		opts = append(opts, bed.WithBlockCache(*cache))
	}

	r, err := bed.Open(path, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	fmt.Printf("%s: %v (tracks=%t browsers=%t)\n", path, r.Format(), r.HasTrackLines(), r.HasBrowserLines())

	if *region != "" {
		ref, start, end, err := parseRegion(*region)
		if err != nil {
			log.Fatal(err)
		}
		var recs []bed.Record
		if err := r.ReadRegion(ref, start, end, &recs); err != nil {
			log.Fatal(err)
		}
		for _, rec := range recs {
			fmt.Printf("%s\t%d\t%d\n", rec.RefName(), rec.Start(), rec.End())
		}
		return
	}

	var browserMeta bed.BrowserMeta
	for {
		rec, track, meta, err := r.ReadNextWithMeta()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		if meta != nil {
			browserMeta = meta
		}
		fmt.Printf("%s\t%d\t%d\ttrack=%v browser=%v\n", rec.RefName(), rec.Start(), rec.End(), track, browserMeta)
	}
}

// parseRegion splits a "ref:start-end" region string. A bare reference
// name with no colon queries the whole reference.
func parseRegion(s string) (ref string, start, end uint64, err error) {
	colon := strings.LastIndexByte(s, ':')
	if colon < 0 {
		return s, 0, 1 << 29, nil
	}
	ref = s[:colon]
	span := s[colon+1:]
	dash := strings.IndexByte(span, '-')
	if dash < 0 {
		return "", 0, 0, fmt.Errorf("bedcat: malformed region %q, expected ref:start-end", s)
	}
	start, err = strconv.ParseUint(span[:dash], 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("bedcat: malformed region start in %q: %v", s, err)
	}
	end, err = strconv.ParseUint(span[dash+1:], 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("bedcat: malformed region end in %q: %v", s, err)
	}
	return ref, start, end, nil
}
