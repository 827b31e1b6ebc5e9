// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canFrame = []byte{0xE8, 0x08, 0xB0, 0x04, 0x00, 0x00, 0x2C, 0x01}

// =============================================================================
// UNIFORM GROUPING TESTS
// =============================================================================

func TestGroupHex_Empty(t *testing.T) {
	assert.Nil(t, GroupHex(nil, UniformGroups(2), Big))
	assert.Nil(t, GroupHex(nil, UniformGroups(4), Little))
}

func TestGroupHex_InvalidUniformSize(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	for _, bad := range []int{0, 3, 9, -1, 16} {
		assert.Nil(t, GroupHex(data, UniformGroups(bad), Big), "size %d", bad)
		assert.Nil(t, GroupHex(data, UniformGroups(bad), Little), "size %d", bad)
	}
}

func TestGroupHex_SingleByteGroupsIgnoreEndian(t *testing.T) {
	data := []byte{0xE8, 0x08, 0xB0, 0x04}
	want := []string{"E8", "08", "B0", "04"}
	assert.Equal(t, want, GroupHex(data, UniformGroups(1), Big))
	assert.Equal(t, want, GroupHex(data, UniformGroups(1), Little))
}

func TestGroupHex_TwoByteGroups(t *testing.T) {
	assert.Equal(t,
		[]string{"E8 08", "B0 04", "00 00", "2C 01"},
		GroupHex(canFrame, UniformGroups(2), Big))
	assert.Equal(t,
		[]string{"08 E8", "04 B0", "00 00", "01 2C"},
		GroupHex(canFrame, UniformGroups(2), Little))
}

func TestGroupHex_FourByteGroups(t *testing.T) {
	assert.Equal(t,
		[]string{"E8 08 B0 04", "00 00 2C 01"},
		GroupHex(canFrame, UniformGroups(4), Big))
	assert.Equal(t,
		[]string{"04 B0 08 E8", "01 2C 00 00"},
		GroupHex(canFrame, UniformGroups(4), Little))
}

func TestGroupHex_ShortFinalGroup(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	assert.Equal(t,
		[]string{"AA BB CC DD", "EE FF"},
		GroupHex(data, UniformGroups(4), Big))
	assert.Equal(t,
		[]string{"DD CC BB AA", "FF EE"},
		GroupHex(data, UniformGroups(4), Little))
}

func TestChunkBytes_DoesNotMutateInput(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	_ = ChunkBytes(data, UniformGroups(4), Little)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, data)
}

// =============================================================================
// CUSTOM PATTERN TESTS
// =============================================================================

func TestChunkBytes_CustomPattern(t *testing.T) {
	data := []byte{0x01, 0x01, 0x45, 0x4D, 0x30, 0x33, 0x32, 0x44}
	sizes := []int{1, 1, 6}

	assert.Equal(t,
		[]string{"01", "01", "45 4D 30 33 32 44"},
		GroupHex(data, PatternGroups(sizes), Big))
	assert.Equal(t,
		[]string{"01", "01", "44 32 33 30 4D 45"},
		GroupHex(data, PatternGroups(sizes), Little))
}

func TestChunkBytes_CustomPatternLeftover(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE}

	// Leftover bytes form one trailing group, not size-2 repeats.
	assert.Equal(t,
		[]string{"AA BB", "CC DD EE"},
		GroupHex(data, PatternGroups([]int{2}), Big))
	assert.Equal(t,
		[]string{"BB AA", "EE DD CC"},
		GroupHex(data, PatternGroups([]int{2}), Little))
}

func TestChunkBytes_CustomPatternEdgeCases(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}

	// Empty pattern keeps the whole input as one group.
	got := ChunkBytes(data, PatternGroups(nil), Big)
	require.Len(t, got, 1)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got[0])

	// Non-positive sizes are skipped.
	assert.Equal(t,
		[]string{"01", "02 03"},
		GroupHex(data, PatternGroups([]int{0, 1, -3}), Big))

	// Pattern longer than the data stops at the end.
	assert.Equal(t,
		[]string{"01 02", "03"},
		GroupHex(data, PatternGroups([]int{2, 2, 2}), Big))

	// Empty data yields no groups regardless of pattern.
	assert.Empty(t, ChunkBytes(nil, PatternGroups([]int{1, 2}), Big))
}

// =============================================================================
// INTEGER GROUPING TESTS
// =============================================================================

func TestGroupInts_BadGroupSize(t *testing.T) {
	for _, bad := range []int{0, 3, 9} {
		_, _, err := GroupInts([]byte{0x01, 0x02, 0x03}, Big, bad)
		require.Error(t, err, "size %d", bad)
		assert.True(t, IsRangeError(err))
	}
}

func TestGroupInts_SingleByteBigEndian(t *testing.T) {
	u, s, err := GroupInts(canFrame, Big, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{232, 8, 176, 4, 0, 0, 44, 1}, u)
	assert.Equal(t, []int64{-24, 8, -80, 4, 0, 0, 44, 1}, s)
}

func TestGroupInts_TwoByteLittleEndian(t *testing.T) {
	u, s, err := GroupInts(canFrame, Little, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2280, 1200, 0, 300}, u)
	assert.Equal(t, []int64{2280, 1200, 0, 300}, s)
}

func TestGroupInts_FourByteBigEndianSignedness(t *testing.T) {
	u, s, err := GroupInts(canFrame, Big, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3892883460, 11265}, u)
	assert.Equal(t, []int64{-402083836, 11265}, s)
}

func TestGroupInts_FourByteLittleEndian(t *testing.T) {
	u, s, err := GroupInts(canFrame, Little, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0x04B008E8, 0x012C0000}, u)
	assert.Equal(t, []int64{0x04B008E8, 0x012C0000}, s)
}

func TestGroupInts_ShortFinalGroupDecodesAtOwnWidth(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	u, s, err := GroupInts(data, Big, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0xAABBCCDD, 0xEEFF}, u)
	assert.Equal(t, int64(0xAABBCCDD-(1<<32)), s[0])
	assert.Equal(t, int64(-4353), s[1]) // 0xEEFF as 16-bit two's complement
}

func TestGroupInts_FullWidthUnsigned(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	u, s, err := GroupInts(data, Big, 8)
	require.NoError(t, err)
	assert.Equal(t, []uint64{^uint64(0)}, u)
	assert.Equal(t, []int64{-1}, s)
}
