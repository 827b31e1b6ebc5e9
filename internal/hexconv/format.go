// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import (
	"fmt"
	"math/big"
	"strings"
)

// HexBytes renders bytes as uppercase two-digit hex, space-separated.
func HexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = fmt.Sprintf("%02X", x)
	}
	return strings.Join(parts, " ")
}

// BinaryBytes renders bytes as 8-bit binary, space-separated.
func BinaryBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = fmt.Sprintf("%08b", x)
	}
	return strings.Join(parts, " ")
}

// GroupBinary renders data in binary, one string per group, with the same
// grouping and endianness rules as GroupHex.
func GroupBinary(data []byte, spec GroupSpec, endian Endian) []string {
	chunks := ChunkBytes(data, spec, endian)
	out := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		out = append(out, BinaryBytes(ch))
	}
	return out
}

// ScalarHex renders v's raw bit pattern at the given width as lowercase
// hex with a 0x prefix. Negative values show their two's-complement
// pattern, matching how the value would sit in a width-byte register.
func ScalarHex(v *big.Int, width int) string {
	bits := uint(8 * width)
	masked := new(big.Int).And(v, maxUnsigned(bits))
	return fmt.Sprintf("0x%x", masked)
}
