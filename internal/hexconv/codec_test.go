// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigPow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// =============================================================================
// RANGE TESTS
// =============================================================================

func TestIntRangeFor_Unsigned(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8} {
		lo, hi, err := IntRangeFor(width, Unsigned)
		require.NoError(t, err)

		wantHi := new(big.Int).Sub(bigPow2(uint(8*width)), big.NewInt(1))
		assert.Zero(t, lo.Sign(), "width %d: lo must be 0", width)
		assert.Zero(t, hi.Cmp(wantHi), "width %d: hi", width)
	}
}

func TestIntRangeFor_TwosComplement(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8} {
		lo, hi, err := IntRangeFor(width, TwosComplement)
		require.NoError(t, err)

		half := bigPow2(uint(8*width - 1))
		wantLo := new(big.Int).Neg(half)
		wantHi := new(big.Int).Sub(half, big.NewInt(1))
		assert.Zero(t, lo.Cmp(wantLo), "width %d: lo", width)
		assert.Zero(t, hi.Cmp(wantHi), "width %d: hi", width)
	}
}

func TestIntRangeFor_SymmetricModes(t *testing.T) {
	for _, mode := range []Mode{OnesComplement, SignMagnitude} {
		for _, width := range []int{1, 2, 4, 8} {
			lo, hi, err := IntRangeFor(width, mode)
			require.NoError(t, err)

			wantHi := new(big.Int).Sub(bigPow2(uint(8*width-1)), big.NewInt(1))
			assert.Zero(t, hi.Cmp(wantHi), "%s width %d: hi", mode, width)
			assert.Zero(t, lo.Cmp(new(big.Int).Neg(wantHi)), "%s width %d: lo must mirror hi", mode, width)
		}
	}
}

func TestIntRangeFor_BadWidth(t *testing.T) {
	for _, width := range []int{0, -1, 9} {
		_, _, err := IntRangeFor(width, Unsigned)
		require.Error(t, err, "width %d", width)
		assert.True(t, IsRangeError(err))
	}
}

// =============================================================================
// ENCODE TESTS
// =============================================================================

func TestIntToBytes_KnownPatterns(t *testing.T) {
	tests := []struct {
		name   string
		value  int64
		width  int
		mode   Mode
		endian Endian
		want   []byte
	}{
		{"unsigned big", 0x0102, 2, Unsigned, Big, []byte{0x01, 0x02}},
		{"unsigned little", 0x0102, 2, Unsigned, Little, []byte{0x02, 0x01}},
		{"twos -1 big", -1, 2, TwosComplement, Big, []byte{0xFF, 0xFF}},
		{"twos min big", -128, 1, TwosComplement, Big, []byte{0x80}},
		{"ones -1 big", -1, 2, OnesComplement, Big, []byte{0xFF, 0xFE}},
		{"ones -5 big", -5, 1, OnesComplement, Big, []byte{0xFA}},
		{"signmag -1 big", -1, 2, SignMagnitude, Big, []byte{0x80, 0x01}},
		{"signmag -1 little", -1, 2, SignMagnitude, Little, []byte{0x01, 0x80}},
		{"signmag -5 big", -5, 4, SignMagnitude, Big, []byte{0x80, 0x00, 0x00, 0x05}},
		{"zero wide", 0, 8, TwosComplement, Little, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntToBytes(big.NewInt(tt.value), tt.width, tt.mode, tt.endian)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntToBytes_OutOfRange(t *testing.T) {
	for _, endian := range []Endian{Big, Little} {
		for _, width := range []int{1, 2, 4, 8} {
			bits := uint(8 * width)

			// Unsigned rejects negatives and hi+1.
			_, err := IntToBytes(big.NewInt(-1), width, Unsigned, endian)
			assert.True(t, IsRangeError(err), "unsigned -1 width %d", width)
			_, err = IntToBytes(bigPow2(bits), width, Unsigned, endian)
			assert.True(t, IsRangeError(err), "unsigned 2^n width %d", width)

			// Twos rejects one past each end.
			half := bigPow2(bits - 1)
			_, err = IntToBytes(half, width, TwosComplement, endian)
			assert.True(t, IsRangeError(err), "twos hi+1 width %d", width)
			tooLow := new(big.Int).Neg(new(big.Int).Add(half, big.NewInt(1)))
			_, err = IntToBytes(tooLow, width, TwosComplement, endian)
			assert.True(t, IsRangeError(err), "twos lo-1 width %d", width)

			// Ones and sign-magnitude reject -2^(n-1), which twos accepts.
			negHalf := new(big.Int).Neg(half)
			_, err = IntToBytes(negHalf, width, OnesComplement, endian)
			assert.True(t, IsRangeError(err), "ones -2^(n-1) width %d", width)
			_, err = IntToBytes(negHalf, width, SignMagnitude, endian)
			assert.True(t, IsRangeError(err), "signmag -2^(n-1) width %d", width)
		}
	}
}

// =============================================================================
// DECODE TESTS
// =============================================================================

func TestBytesToInt_Empty(t *testing.T) {
	for _, mode := range Modes() {
		assert.Zero(t, BytesToInt(nil, mode, Big).Sign(), "%s", mode)
	}
}

func TestBytesToInt_NegativeZeroNormalizes(t *testing.T) {
	for _, endian := range []Endian{Big, Little} {
		for _, width := range []int{1, 2, 4, 8} {
			allOnes := make([]byte, width)
			for i := range allOnes {
				allOnes[i] = 0xFF
			}
			got := BytesToInt(allOnes, OnesComplement, endian)
			assert.Zero(t, got.Sign(), "ones all-FF width %d %s", width, endian)

			signOnly := make([]byte, width)
			if endian == Big {
				signOnly[0] = 0x80
			} else {
				signOnly[width-1] = 0x80
			}
			got = BytesToInt(signOnly, SignMagnitude, endian)
			assert.Zero(t, got.Sign(), "signmag 0x80 width %d %s", width, endian)
		}
	}
}

func TestBytesToInt_SignMagnitudeSignByte(t *testing.T) {
	// 0x80 0x05 big-endian: sign bit set, magnitude 5.
	got := BytesToInt([]byte{0x80, 0x05}, SignMagnitude, Big)
	assert.Zero(t, got.Cmp(big.NewInt(-5)))

	// Little-endian puts the sign bit in the last stored byte.
	got = BytesToInt([]byte{0x05, 0x80}, SignMagnitude, Little)
	assert.Zero(t, got.Cmp(big.NewInt(-5)))
}

// =============================================================================
// ROUND-TRIP TESTS
// =============================================================================

// Every representable value at widths 1 and 2, all modes, both endians.
func TestRoundTrip_Exhaustive(t *testing.T) {
	for _, width := range []int{1, 2} {
		for _, mode := range Modes() {
			for _, endian := range []Endian{Big, Little} {
				lo, hi, err := IntRangeFor(width, mode)
				require.NoError(t, err)

				one := big.NewInt(1)
				for v := new(big.Int).Set(lo); v.Cmp(hi) <= 0; v.Add(v, one) {
					b, err := IntToBytes(v, width, mode, endian)
					require.NoError(t, err, "%s width %d %s value %s", mode, width, endian, v)
					require.Len(t, b, width)

					back := BytesToInt(b, mode, endian)
					if back.Cmp(v) != 0 {
						t.Fatalf("%s width %d %s: %s -> % X -> %s", mode, width, endian, v, b, back)
					}
				}
			}
		}
	}
}

// Boundary and spot values at the wider widths.
func TestRoundTrip_WideWidths(t *testing.T) {
	spot := []int64{0, 1, -1, 255, 256, -257, 65535, 1<<31 - 1, -(1 << 31)}

	for _, width := range []int{3, 4, 5, 6, 7, 8} {
		for _, mode := range Modes() {
			for _, endian := range []Endian{Big, Little} {
				lo, hi, err := IntRangeFor(width, mode)
				require.NoError(t, err)

				values := []*big.Int{
					new(big.Int).Set(lo),
					new(big.Int).Add(lo, big.NewInt(1)),
					new(big.Int).Set(hi),
					new(big.Int).Sub(hi, big.NewInt(1)),
				}
				for _, s := range spot {
					values = append(values, big.NewInt(s))
				}

				for _, v := range values {
					if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
						continue
					}
					b, err := IntToBytes(v, width, mode, endian)
					require.NoError(t, err)
					require.Len(t, b, width)

					back := BytesToInt(b, mode, endian)
					assert.Zero(t, back.Cmp(v),
						"%s width %d %s: %s -> % X -> %s", mode, width, endian, v, b, back)
				}
			}
		}
	}
}

// Decode never yields -0: the sign of the result always matches Sign().
func TestDecode_NoNegativeZero(t *testing.T) {
	for _, mode := range Modes() {
		for _, endian := range []Endian{Big, Little} {
			for pattern := 0; pattern < 256; pattern++ {
				got := BytesToInt([]byte{byte(pattern)}, mode, endian)
				if got.Sign() == 0 {
					assert.Equal(t, "0", got.String(),
						"%s %s pattern %02X", mode, endian, pattern)
				}
			}
		}
	}
}

func TestScalarHex_MaskedPattern(t *testing.T) {
	tests := []struct {
		value int64
		width int
		want  string
	}{
		{0xE808B004, 4, "0xe808b004"},
		{-1, 2, "0xffff"},
		{-1, 8, "0xffffffffffffffff"},
		{0, 4, "0x0"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d w%d", tt.value, tt.width), func(t *testing.T) {
			assert.Equal(t, tt.want, ScalarHex(big.NewInt(tt.value), tt.width))
		})
	}
}
