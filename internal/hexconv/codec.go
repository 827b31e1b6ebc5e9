// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import (
	"fmt"
	"math/big"
)

// IntRangeFor returns the inclusive range of integers representable in
// width bytes under the given mode. Width must be 1..MaxBytes.
func IntRangeFor(width int, mode Mode) (lo, hi *big.Int, err error) {
	if width < 1 || width > MaxBytes {
		return nil, nil, &RangeError{Reason: fmt.Sprintf("width must be 1..%d", MaxBytes)}
	}
	bits := uint(8 * width)
	switch mode {
	case Unsigned:
		lo = big.NewInt(0)
		hi = maxUnsigned(bits)
	case TwosComplement:
		hi = maxSigned(bits)
		lo = new(big.Int).Neg(pow2(bits - 1))
	default: // OnesComplement, SignMagnitude: symmetric about zero
		hi = maxSigned(bits)
		lo = new(big.Int).Neg(hi)
	}
	return lo, hi, nil
}

// IntToBytes encodes v into exactly width bytes under the given mode and
// endianness. Values outside IntRangeFor's range yield a *RangeError.
func IntToBytes(v *big.Int, width int, mode Mode, endian Endian) ([]byte, error) {
	lo, hi, err := IntRangeFor(width, mode)
	if err != nil {
		return nil, err
	}
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return nil, &RangeError{
			Reason: fmt.Sprintf("value out of range for %d-byte %s (valid: %s to %s)", width, mode, lo, hi),
		}
	}

	bits := uint(8 * width)
	switch mode {
	case TwosComplement:
		if v.Sign() < 0 {
			// Wrap into [0, 2^n) then encode the bit pattern.
			u := new(big.Int).Add(v, pow2(bits))
			return encodeMagnitude(u, width, endian), nil
		}
		return encodeMagnitude(v, width, endian), nil

	case OnesComplement:
		if v.Sign() < 0 {
			b := encodeMagnitude(new(big.Int).Neg(v), width, endian)
			for i := range b {
				b[i] = ^b[i]
			}
			return b, nil
		}
		return encodeMagnitude(v, width, endian), nil

	case SignMagnitude:
		b := encodeMagnitude(new(big.Int).Abs(v), width, endian)
		if v.Sign() < 0 {
			// Sign bit lives in the logically highest byte.
			if endian == Big {
				b[0] |= 0x80
			} else {
				b[len(b)-1] |= 0x80
			}
		}
		return b, nil

	default:
		return encodeMagnitude(v, width, endian), nil
	}
}

// BytesToInt decodes a byte sequence as an integer under the given mode
// and endianness. An empty sequence decodes to zero. Negative-zero bit
// patterns in ones' complement and sign-magnitude normalize to zero, so
// the sign of the result matches v.Sign().
func BytesToInt(b []byte, mode Mode, endian Endian) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}
	bits := uint(8 * len(b))

	switch mode {
	case Unsigned:
		return decodeMagnitude(b, endian)

	case TwosComplement:
		u := decodeMagnitude(b, endian)
		if u.Cmp(pow2(bits-1)) >= 0 {
			return u.Sub(u, pow2(bits))
		}
		return u

	case OnesComplement:
		u := decodeMagnitude(b, endian)
		if u.Cmp(pow2(bits-1)) < 0 {
			return u
		}
		// Negative: magnitude is the bitwise complement.
		mag := new(big.Int).Sub(maxUnsigned(bits), u)
		if mag.Sign() == 0 {
			return mag
		}
		return mag.Neg(mag)

	default: // SignMagnitude
		buf := make([]byte, len(b))
		copy(buf, b)
		signIdx := 0
		if endian == Little {
			signIdx = len(buf) - 1
		}
		negative := buf[signIdx]&0x80 != 0
		buf[signIdx] &= 0x7F
		mag := decodeMagnitude(buf, endian)
		if negative && mag.Sign() != 0 {
			mag.Neg(mag)
		}
		return mag
	}
}

// encodeMagnitude writes a non-negative v that fits in width bytes.
func encodeMagnitude(v *big.Int, width int, endian Endian) []byte {
	out := make([]byte, width)
	v.FillBytes(out)
	if endian == Little {
		reverse(out)
	}
	return out
}

// decodeMagnitude reads the raw unsigned value of b.
func decodeMagnitude(b []byte, endian Endian) *big.Int {
	if endian == Little {
		buf := make([]byte, len(b))
		for i, x := range b {
			buf[len(b)-1-i] = x
		}
		return new(big.Int).SetBytes(buf)
	}
	return new(big.Int).SetBytes(b)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// pow2 returns 2^n.
func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// maxUnsigned returns 2^n - 1.
func maxUnsigned(n uint) *big.Int {
	return new(big.Int).Sub(pow2(n), big.NewInt(1))
}

// maxSigned returns 2^(n-1) - 1.
func maxSigned(n uint) *big.Int {
	return new(big.Int).Sub(pow2(n-1), big.NewInt(1))
}
