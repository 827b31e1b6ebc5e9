// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ParseHexBytes converts hex text into a byte sequence. Accepted forms:
//
//   - space or comma separated byte tokens: "E8 08 B0 04", "e8,08,b0,04"
//   - tokens with 0x/0X prefixes: "0xE8 0x08"
//   - underscores as separators: "E8_08"
//   - one continuous even-length string: "E808B004"
//   - single-digit tokens, zero-extended: "F A" -> 0F 0A
//
// Whitespace-only input yields an empty (nil) sequence. More than MaxBytes
// bytes, an odd-length continuous string, or any non-hex token is a
// *FormatError.
func ParseHexBytes(text string) ([]byte, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, nil
	}

	// Normalize separators and prefixes before tokenizing.
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "0x", "")
	s = strings.ReplaceAll(s, "0X", "")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.Join(strings.Fields(s), " ")

	var tokens []string
	if strings.Contains(s, " ") {
		tokens = strings.Split(s, " ")
	} else {
		if len(s)%2 != 0 {
			return nil, &FormatError{Reason: "continuous hex string must have an even number of characters"}
		}
		for i := 0; i < len(s); i += 2 {
			tokens = append(tokens, s[i:i+2])
		}
	}

	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if len(tok) == 1 {
			tok = "0" + tok
		}
		if len(tok) != 2 || !isHexByte(tok) {
			return nil, &FormatError{Reason: "invalid hex byte", Token: tok}
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, &FormatError{Reason: "invalid hex byte", Token: tok}
		}
		out = append(out, byte(v))
	}

	if len(out) > MaxBytes {
		return nil, &FormatError{Reason: fmt.Sprintf("more than %d bytes provided", MaxBytes)}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func isHexByte(tok string) bool {
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseInt parses integer text. Underscores are ignored anywhere, an
// optional sign is followed by an optional base prefix (0x/0X hex, 0b/0B
// binary, 0o/0O octal), and everything else is decimal. A bare leading
// zero is not octal: "0755" parses as decimal 755.
//
// The result is a big.Int because an 8-byte unsigned value exceeds int64.
func ParseInt(text string) (*big.Int, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, &FormatError{Reason: "enter a number (e.g., 1234 or 0x4D2)"}
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, s = 16, s[2:]
		case 'b', 'B':
			base, s = 2, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		}
	}
	// big.Int.SetString accepts its own sign; a second sign here is malformed.
	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, &FormatError{Reason: "not a valid number", Token: strings.TrimSpace(text)}
	}

	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, &FormatError{Reason: "not a valid number", Token: strings.TrimSpace(text)}
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// ParseGroupPattern parses a custom group size pattern such as "1,1,6" or
// "2 4". Tokens that are not positive integers are dropped rather than
// rejected, so "1,x,6" yields [1 6]. The result may be empty.
func ParseGroupPattern(text string) []int {
	s := strings.ReplaceAll(text, ",", " ")
	var sizes []int
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}
