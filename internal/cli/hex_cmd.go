// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// hex_cmd.go - Hex command implementation for hexspect.
//
// Command: hex <bytes>
// Short:   Decode a hex byte string and show every reading of it
// Aliases: h, x, bytes
//
// Examples:
//   hexspect hex "E8 08 B0 04 00 00 2C 01"
//   hexspect hex E808B004                  Continuous pairs
//   hexspect hex "0xE8, 0x08, 0xB0"        Prefixes and commas accepted
//   hexspect hex "E8 08 B0 04" --group 2   16-bit groups
//   hexspect hex "E8 08 B0 04" --group 4 --endian big
//   hexspect hex "E8 08 B0 04 00 00 2C 01" --groups 1,1,6
//   echo "DE AD BE EF" | hexspect hex      Read from stdin
//   hexspect hex "E8 08" --json            Machine-readable output
//
// Flags:
//   --endian big|little   Byte order within each group
//   --group N             Uniform group size (1, 2, 4, 8)
//   --groups a,b,c        Custom group pattern (overrides --group)
//   --copy                Copy normalized bytes to the clipboard
//   --json                Output in JSON format
package cli

import (
	"fmt"

	"github.com/jeranaias/hexspect/internal/hexconv"
)

// HandleHex handles the "hex" command.
func HandleHex(args Args) error {
	cfg := loadConfigOrDefault(args.Verbose)

	opts, err := resolveOptions(args, cfg)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	input, err := resolveInput(args, "hex")
	if err != nil {
		return HandleError(err, args.JSON)
	}

	data, err := hexconv.ParseHexBytes(input)
	if err != nil {
		return HandleError(err, args.JSON)
	}
	if data == nil {
		return HandleError(NewValidationError("input", input, "no bytes to decode"), args.JSON)
	}

	report := BuildReport("hex", input, data, opts)

	if args.JSON {
		if err := NewJSONResponse("hex", report).Print(); err != nil {
			return err
		}
	} else {
		fmt.Print(report.Render(args.Verbose))
	}

	if args.Copy {
		copyToClipboard(report.Bytes, args.Quiet)
	}

	recordConversion("hex", report, opts, args, cfg)
	return nil
}
