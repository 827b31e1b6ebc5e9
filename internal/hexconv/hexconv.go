// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import "strings"

// MaxBytes is the maximum length of any byte sequence handled by this package.
const MaxBytes = 8

// ============================================================================
// ENDIANNESS
// ============================================================================

// Endian selects the byte order used when a group of bytes is read as an
// integer or rendered for display. It applies per group, never to the
// whole sequence.
type Endian int

const (
	// Big reads the first byte of a group as the most significant.
	Big Endian = iota
	// Little reads the last byte of a group as the most significant.
	Little
)

// String returns the lowercase name used on the CLI and in config files.
func (e Endian) String() string {
	if e == Little {
		return "little"
	}
	return "big"
}

// ParseEndian converts a user-supplied name to an Endian.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be":
		return Big, nil
	case "little", "le":
		return Little, nil
	default:
		return Big, &FormatError{Reason: "endianness must be big or little", Token: s}
	}
}

// ============================================================================
// REPRESENTATION MODES
// ============================================================================

// Mode is the signed representation used to map integers to byte patterns.
type Mode int

const (
	// Unsigned covers [0, 2^n-1] for an n-bit width.
	Unsigned Mode = iota
	// TwosComplement covers [-2^(n-1), 2^(n-1)-1].
	TwosComplement
	// OnesComplement covers [-(2^(n-1)-1), 2^(n-1)-1]; all-ones decodes to 0.
	OnesComplement
	// SignMagnitude stores the sign bit in the logically highest byte;
	// 0x80-and-zeros decodes to 0.
	SignMagnitude
)

// String returns the human-readable label used in output and error messages.
func (m Mode) String() string {
	switch m {
	case TwosComplement:
		return "2's complement"
	case OnesComplement:
		return "1's complement"
	case SignMagnitude:
		return "sign-magnitude"
	default:
		return "unsigned"
	}
}

// Flag returns the short name accepted by the --repr flag.
func (m Mode) Flag() string {
	switch m {
	case TwosComplement:
		return "twos"
	case OnesComplement:
		return "ones"
	case SignMagnitude:
		return "signmag"
	default:
		return "unsigned"
	}
}

// Modes lists every representation mode in display order.
func Modes() []Mode {
	return []Mode{Unsigned, TwosComplement, OnesComplement, SignMagnitude}
}

// ParseMode converts a user-supplied name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unsigned", "u":
		return Unsigned, nil
	case "twos", "two", "2", "2c":
		return TwosComplement, nil
	case "ones", "one", "1", "1c":
		return OnesComplement, nil
	case "signmag", "sm", "sign-magnitude":
		return SignMagnitude, nil
	default:
		return Unsigned, &FormatError{Reason: "representation must be unsigned, twos, ones, or signmag", Token: s}
	}
}

// ============================================================================
// GROUP SPECIFICATIONS
// ============================================================================

// GroupSpec describes how a byte sequence is chunked: either into uniform
// groups of a fixed size, or by a custom pattern of sizes with any leftover
// bytes forming one final group.
type GroupSpec struct {
	size  int
	sizes []int
}

// UniformGroups returns a spec that chunks into groups of size bytes.
// Valid sizes are 1, 2, 4, and 8; anything else chunks as size 1.
func UniformGroups(size int) GroupSpec {
	return GroupSpec{size: size}
}

// PatternGroups returns a spec that chunks by the given sizes in order.
// An empty pattern keeps the whole sequence as a single group.
func PatternGroups(sizes []int) GroupSpec {
	return GroupSpec{sizes: sizes, size: -1}
}

// IsCustom reports whether the spec uses a custom size pattern.
func (g GroupSpec) IsCustom() bool {
	return g.size < 0
}

// Size returns the uniform group size, normalized to 1 when invalid.
// For custom specs it returns 0.
func (g GroupSpec) Size() int {
	if g.IsCustom() {
		return 0
	}
	switch g.size {
	case 1, 2, 4, 8:
		return g.size
	default:
		return 1
	}
}

// Sizes returns the custom pattern, or nil for uniform specs.
func (g GroupSpec) Sizes() []int {
	return g.sizes
}
