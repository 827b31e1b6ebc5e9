// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsciiRuns(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{"empty", nil, nil},
		{"all printable", []byte("ABC"), []string{"ABC"}},
		{"printable with greeting", []byte("Hello, CAN!"), []string{"Hello, CAN!"}},
		{"single marker splits text", []byte{'A', 0x00, 'B'}, []string{"A", ".", "B"}},
		{"del gets own marker", []byte{0x00, 'A', 0x00, 0x7F}, []string{".", "A", ".", "."}},
		{"run of nonprintable collapses", []byte{0x10, 0x11, 'T', 'e', 's', 't', 0x12}, []string{".", "Test", "."}},
		{"space is printable", []byte{0x20}, []string{" "}},
		{"del alone", []byte{0x7F}, []string{"."}},
		{"del run stays separate", []byte{0x7F, 0x7F, 0x7F}, []string{".", ".", "."}},
		{"generic after del coalesces", []byte{0x7F, 0x00, 0x01}, []string{"."}},
		{"tilde boundary", []byte{0x7E, 0x7F}, []string{"~", "."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AsciiRuns(tt.data))
		})
	}
}

// Concatenated runs must account for every input byte.
func TestAsciiRuns_AccountsForDotInput(t *testing.T) {
	got := AsciiRuns([]byte{'.', 0x00, '.'})
	assert.Equal(t, []string{".", ".", "."}, got)

	joined := strings.Join(got, "")
	assert.Len(t, joined, 3)
}

func TestAsciiString(t *testing.T) {
	assert.Equal(t, "A... ", AsciiString([]byte{0x41, 0x00, 0x7F, 0x80, 0x20}))
	assert.Equal(t, "", AsciiString(nil))
	assert.Equal(t, "Hello, CAN!", AsciiString([]byte("Hello, CAN!")))
}

func TestBinaryBytes(t *testing.T) {
	assert.Equal(t, "11101000 00001000", BinaryBytes([]byte{0xE8, 0x08}))
	assert.Equal(t, "", BinaryBytes(nil))
}

func TestGroupBinary(t *testing.T) {
	data := []byte{0xE8, 0x08, 0xB0, 0x04}
	assert.Equal(t,
		[]string{"11101000 00001000", "10110000 00000100"},
		GroupBinary(data, UniformGroups(2), Big))
	assert.Equal(t,
		[]string{"00001000 11101000", "00000100 10110000"},
		GroupBinary(data, UniformGroups(2), Little))
}

func TestHexBytes(t *testing.T) {
	assert.Equal(t, "E8 08 B0 04", HexBytes([]byte{0xE8, 0x08, 0xB0, 0x04}))
	assert.Equal(t, "", HexBytes(nil))
}
