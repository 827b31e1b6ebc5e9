// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// docs_cmd.go - Docs command implementation for hexspect.
//
// Command: docs
// Short:   Render the built-in reference card
// Aliases: doc, reference
//
// The reference card covers the signed representations, their ranges per
// width, input formats, and grouping rules. Rendered as styled markdown
// on a terminal; plain markdown when piped.
package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const referenceCard = `# hexspect reference

## Input formats

| Form | Example | Notes |
|------|---------|-------|
| Spaced hex | ` + "`E8 08 B0 04`" + ` | One or two digits per byte |
| Continuous hex | ` + "`E808B004`" + ` | Even number of digits |
| Commas / prefixes | ` + "`0xE8, 0x08`" + ` | Commas, 0x, and _ are ignored |
| Decimal | ` + "`1234`" + ` | Number command |
| Hex / binary / octal | ` + "`0x4D2 0b1010 0o17`" + ` | Number command |

Byte strings hold at most 8 bytes. A bare leading zero stays decimal:
` + "`0755`" + ` is seven hundred fifty-five, not octal.

## Signed representations

| Representation | Negative encoding | Range at n bits |
|----------------|-------------------|-----------------|
| unsigned | none | 0 to 2^n - 1 |
| 2's complement | value + 2^n | -2^(n-1) to 2^(n-1) - 1 |
| 1's complement | bitwise NOT of magnitude | -(2^(n-1) - 1) to 2^(n-1) - 1 |
| sign-magnitude | sign bit + magnitude | -(2^(n-1) - 1) to 2^(n-1) - 1 |

1's complement and sign-magnitude each have two encodings of zero; both
decode to plain 0. The sign-magnitude sign bit lives in the logically
highest byte: the first byte shown when big-endian, the last when
little-endian.

## Grouping

Uniform group sizes are 1, 2, 4, or 8 bytes. Endianness applies inside
each group only; group order never changes. A short final group keeps
the bytes that are left.

Custom patterns like ` + "`1,1,6`" + ` split the bytes left to right; any
leftover bytes become one trailing group.

## ASCII view

Printable bytes are 0x20 through 0x7E. A run of consecutive
non-printable bytes collapses to a single ` + "`.`" + ` marker; DEL (0x7F)
always gets its own marker.
`

// HandleDocs handles the "docs" command.
func HandleDocs(args Args) error {
	// Plain markdown when piped or colors are off; glamour otherwise.
	if !ColorsEnabled() {
		fmt.Print(referenceCard)
		return nil
	}

	width := GetTerminalWidth()
	if width > 100 {
		width = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Print(referenceCard)
		return nil
	}

	out, err := renderer.Render(referenceCard)
	if err != nil {
		fmt.Print(referenceCard)
		return nil
	}

	fmt.Print(out)
	return nil
}
