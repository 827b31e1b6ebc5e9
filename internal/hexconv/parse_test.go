// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// HEX PARSING TESTS
// =============================================================================

func TestParseHexBytes_AcceptedForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"space separated", "E8 08 B0 04 00 00 2C 01", []byte{0xE8, 0x08, 0xB0, 0x04, 0x00, 0x00, 0x2C, 0x01}},
		{"comma separated lowercase", "e8,08,b0,04,00,00,2c,01", []byte{0xE8, 0x08, 0xB0, 0x04, 0x00, 0x00, 0x2C, 0x01}},
		{"0x prefixes", "0xE8 0x08 0xB0 0x04", []byte{0xE8, 0x08, 0xB0, 0x04}},
		{"continuous even length", "E808B004", []byte{0xE8, 0x08, 0xB0, 0x04}},
		{"single digit tokens", "F A", []byte{0x0F, 0x0A}},
		{"underscore separated", "E8_08", []byte{0xE8, 0x08}},
		{"mixed separators", "E8, 08,,B0  04", []byte{0xE8, 0x08, 0xB0, 0x04}},
		{"trailing comma", "AA,", []byte{0xAA}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexBytes(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexBytes_Errors(t *testing.T) {
	bad := []string{
		"G1",
		"E808B0040", // odd continuous length
		"ZZ",
		"11 22 33 44 55 66 77 88 99", // more than 8 bytes
		"ABC 12",                     // 3-char token
	}
	for _, text := range bad {
		t.Run(text, func(t *testing.T) {
			_, err := ParseHexBytes(text)
			require.Error(t, err)
			assert.True(t, IsFormatError(err), "want *FormatError, got %T", err)
		})
	}
}

func TestParseHexBytes_MaxLengthBoundary(t *testing.T) {
	got, err := ParseHexBytes("11 22 33 44 55 66 77 88")
	require.NoError(t, err)
	assert.Len(t, got, MaxBytes)
}

// =============================================================================
// INTEGER PARSING TESTS
// =============================================================================

func TestParseInt_Forms(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{"1234", 1234},
		{"0x4D2", 1234},
		{"0X4D2", 1234},
		{"0b1010", 10},
		{"0o17", 15},
		{"1_000", 1000},
		{"-42", -42},
		{"-0x2A", -42},
		{"-0b101010", -42},
		{"-0o52", -42},
		{"+7", 7},
		{"0755", 755}, // bare leading zero stays decimal
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseInt(tt.text)
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(big.NewInt(tt.want)), "got %s, want %d", got, tt.want)
		})
	}
}

func TestParseInt_BeyondInt64(t *testing.T) {
	got, err := ParseInt("0xFFFFFFFFFFFFFFFF")
	require.NoError(t, err)

	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	assert.Zero(t, got.Cmp(want))
}

func TestParseInt_Errors(t *testing.T) {
	for _, text := range []string{"", " ", "abc", "0x", "12ab", "--5"} {
		t.Run("input "+text, func(t *testing.T) {
			_, err := ParseInt(text)
			require.Error(t, err)
			assert.True(t, IsFormatError(err))
		})
	}
}

// =============================================================================
// GROUP PATTERN PARSING TESTS
// =============================================================================

func TestParseGroupPattern(t *testing.T) {
	tests := []struct {
		text string
		want []int
	}{
		{"1,1,6", []int{1, 1, 6}},
		{"2 4", []int{2, 4}},
		{"1, x, 6", []int{1, 6}}, // junk tokens dropped
		{"0,-2,3", []int{3}},     // non-positive sizes dropped
		{"", nil},
		{" , , ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGroupPattern(tt.text))
		})
	}
}
