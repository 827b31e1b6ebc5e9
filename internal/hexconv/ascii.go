// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

const (
	printableMin = 0x20 // space
	printableMax = 0x7E // tilde
	asciiDel     = 0x7F
)

// AsciiRuns renders data as alternating runs of printable ASCII text and
// "." markers. Printable bytes (0x20..0x7E) accumulate into text runs.
// A run of other bytes collapses into a single ".", except DEL (0x7F),
// which always produces its own marker. Concatenating the runs accounts
// for every input byte; empty data yields no runs.
func AsciiRuns(data []byte) []string {
	var runs []string
	var buf []byte
	lastWasMarker := false

	flush := func() {
		if len(buf) > 0 {
			runs = append(runs, string(buf))
			buf = buf[:0]
			lastWasMarker = false
		}
	}

	for _, b := range data {
		if b >= printableMin && b <= printableMax {
			buf = append(buf, b)
			continue
		}
		flush()
		if b == asciiDel {
			runs = append(runs, ".")
			lastWasMarker = true
		} else if !lastWasMarker {
			runs = append(runs, ".")
			lastWasMarker = true
		}
	}
	flush()
	return runs
}

// AsciiString maps data byte-for-byte: printable ASCII stays itself, every
// other byte becomes ".". Unlike AsciiRuns, nothing is coalesced.
func AsciiString(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= printableMin && b <= printableMax {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
