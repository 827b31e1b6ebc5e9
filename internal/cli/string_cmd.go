// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// string_cmd.go - String command implementation for hexspect.
//
// Command: string <text>
// Short:   Encode text as bytes and show the byte-level view
// Aliases: str, text, s
//
// Text encodes one byte per character: runes up to U+00FF map to their
// code point (ASCII and Latin-1 pass through), anything wider becomes
// '?' so the byte view always matches the character count.
//
// Examples:
//   hexspect string "Hello, CAN!"
//   hexspect string "Hello" --group 2 --endian big
//   echo -n "payload" | hexspect string
//
// Flags:
//   --endian big|little   Byte order within each group
//   --group N             Uniform group size (1, 2, 4, 8)
//   --groups a,b,c        Custom group pattern
//   --copy                Copy encoded bytes to the clipboard
//   --json                Output in JSON format
package cli

import (
	"fmt"
)

// HandleString handles the "string" command.
func HandleString(args Args) error {
	cfg := loadConfigOrDefault(args.Verbose)

	opts, err := resolveOptions(args, cfg)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	input, err := resolveInput(args, "string")
	if err != nil {
		return HandleError(err, args.JSON)
	}

	data := EncodeText(input)
	report := BuildReport("string", input, data, opts)

	if args.JSON {
		if err := NewJSONResponse("string", report).Print(); err != nil {
			return err
		}
	} else {
		fmt.Print(report.Render(args.Verbose))
	}

	if args.Copy {
		copyToClipboard(report.Bytes, args.Quiet)
	}

	recordConversion("string", report, opts, args, cfg)
	return nil
}

// EncodeText converts text to bytes, one byte per rune. Runes above
// U+00FF have no single-byte value and encode as '?'.
func EncodeText(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return out
}
