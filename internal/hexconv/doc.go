// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hexconv implements the byte/integer/text conversion core of hexspect.
//
// All conversions operate on byte sequences of at most MaxBytes (8) bytes.
// The package is pure: no I/O, no global state, and every function either
// returns a value or a typed error (*FormatError for malformed input,
// *RangeError for values that cannot be represented).
//
// # Key Functions
//
// Parsing:
//   - ParseHexBytes: flexible hex text to bytes (spaces, commas, 0x, continuous)
//   - ParseInt: integer text with 0x/0b/0o prefixes and underscores
//   - ParseGroupPattern: "1,1,6" style custom group patterns
//
// Integer codec:
//   - IntRangeFor: representable range per width and representation mode
//   - IntToBytes, BytesToInt: exact round-trip encode/decode in four modes
//
// Grouping and rendering:
//   - ChunkBytes, GroupInts, GroupHex: byte grouping with per-group endianness
//   - AsciiRuns, AsciiString: printable-ASCII rendering
//
// # Usage
//
//	data, err := hexconv.ParseHexBytes("E8 08 B0 04")
//	if err != nil {
//		return err
//	}
//	v := hexconv.BytesToInt(data, hexconv.TwosComplement, hexconv.Big)
//
// Endianness is applied per group after chunking, never to the whole
// sequence. Decoded "negative zero" bit patterns in ones' complement and
// sign-magnitude normalize to plain zero.
package hexconv
