// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import "fmt"

// ChunkBytes splits data into groups per spec, then applies endianness to
// each group independently: little-endian reverses the bytes within every
// group, big-endian leaves them as-is. The input slice is never modified.
//
// Uniform specs chunk left to right with a possibly short final group.
// Custom specs consume sizes in order; leftover bytes form one final
// group, and an empty pattern keeps the whole sequence as a single group.
// Empty data always yields no groups.
func ChunkBytes(data []byte, spec GroupSpec, endian Endian) [][]byte {
	var chunks [][]byte

	if spec.IsCustom() {
		i := 0
		for _, sz := range spec.Sizes() {
			if sz <= 0 {
				continue
			}
			if i >= len(data) {
				break
			}
			end := i + sz
			if end > len(data) {
				end = len(data)
			}
			chunks = append(chunks, cloneBytes(data[i:end]))
			i = end
		}
		if i < len(data) {
			chunks = append(chunks, cloneBytes(data[i:]))
		}
	} else {
		g := spec.Size()
		for i := 0; i < len(data); i += g {
			end := i + g
			if end > len(data) {
				end = len(data)
			}
			chunks = append(chunks, cloneBytes(data[i:end]))
		}
	}

	if endian == Little {
		for _, ch := range chunks {
			reverse(ch)
		}
	}
	return chunks
}

// GroupInts chunks data into uniform groups of groupSize bytes and decodes
// each group twice: as an unsigned integer and as a two's-complement signed
// integer at the group's own width (a short final group decodes at its
// actual width). Group size must be 1, 2, 4, or 8.
func GroupInts(data []byte, endian Endian, groupSize int) (unsigned []uint64, signed []int64, err error) {
	switch groupSize {
	case 1, 2, 4, 8:
	default:
		return nil, nil, &RangeError{Reason: fmt.Sprintf("group size must be 1, 2, 4, or 8 (got %d)", groupSize)}
	}

	for i := 0; i < len(data); i += groupSize {
		end := i + groupSize
		if end > len(data) {
			end = len(data)
		}
		ch := data[i:end]

		var u uint64
		if endian == Big {
			for _, b := range ch {
				u = u<<8 | uint64(b)
			}
		} else {
			for j := len(ch) - 1; j >= 0; j-- {
				u = u<<8 | uint64(ch[j])
			}
		}
		unsigned = append(unsigned, u)

		bits := uint(8 * len(ch))
		s := int64(u)
		if bits < 64 && u >= 1<<(bits-1) {
			s = int64(u) - int64(1)<<bits
		}
		signed = append(signed, s)
	}
	return unsigned, signed, nil
}

// GroupHex renders data as hex strings, one per group, with the bytes of
// each group space-separated after endianness is applied. A uniform spec
// with a size outside {1, 2, 4, 8} yields no output.
func GroupHex(data []byte, spec GroupSpec, endian Endian) []string {
	if !spec.IsCustom() {
		switch spec.size {
		case 1, 2, 4, 8:
		default:
			return nil
		}
	}
	chunks := ChunkBytes(data, spec, endian)
	out := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		out = append(out, HexBytes(ch))
	}
	return out
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
