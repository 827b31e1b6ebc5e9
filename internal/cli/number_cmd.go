// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// number_cmd.go - Number command implementation for hexspect.
//
// Command: number <value>
// Short:   Encode an integer as bytes at a chosen width and representation
// Aliases: num, int, n
//
// Examples:
//   hexspect number 1234
//   hexspect number 0x4D2 --width 4        Hex input
//   hexspect number 0b1010 --width 2       Binary input
//   hexspect number 0o17                   Octal input
//   hexspect number 1_000_000              Underscore separators
//   hexspect number -42 --repr twos        Two's complement (default)
//   hexspect number -42 --repr ones        One's complement
//   hexspect number -42 --repr signmag     Sign-magnitude
//   hexspect number 1234 --width 4 --endian big
//
// Flags:
//   --width N             Byte width 1..8
//   --repr REPR           unsigned, twos, ones, signmag
//   --endian big|little   Byte order
//   --copy                Copy encoded bytes to the clipboard
//   --json                Output in JSON format
package cli

import (
	"fmt"

	"github.com/jeranaias/hexspect/internal/hexconv"
)

// HandleNumber handles the "number" command.
func HandleNumber(args Args) error {
	cfg := loadConfigOrDefault(args.Verbose)

	opts, err := resolveOptions(args, cfg)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	input, err := resolveInput(args, "number")
	if err != nil {
		return HandleError(err, args.JSON)
	}

	value, err := hexconv.ParseInt(input)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	data, err := hexconv.IntToBytes(value, opts.Width, opts.Mode, opts.Endian)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	report := BuildReport("number", input, data, opts)
	report.Value = FormatGrouped(value)
	report.ScalarHex = hexconv.ScalarHex(value, opts.Width)
	report.Range = RangeLabel(opts.Width, opts.Mode)
	report.Width = opts.Width

	if args.JSON {
		if err := NewJSONResponse("number", report).Print(); err != nil {
			return err
		}
	} else {
		fmt.Print(report.Render(args.Verbose))
	}

	if args.Copy {
		copyToClipboard(report.Bytes, args.Quiet)
	}

	recordConversion("number", report, opts, args, cfg)
	return nil
}
