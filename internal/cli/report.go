// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// report.go - Conversion report shared by the hex, number, and string
// commands and the repl.
//
// A report is every reading of the same bytes side by side: the raw
// bytes, binary, grouped hex under the active endianness, unsigned and
// signed values per group, and the printable-ASCII view.
package cli

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/hexspect/internal/config"
	"github.com/jeranaias/hexspect/internal/hexconv"
)

// Options are the resolved conversion settings for one command run.
// Flags override config; config overrides defaults.
type Options struct {
	Endian hexconv.Endian
	Mode   hexconv.Mode
	Spec   hexconv.GroupSpec
	Width  int
}

// resolveOptions merges command-line flags with the active configuration.
func resolveOptions(args Args, cfg *config.Config) (Options, error) {
	opts := Options{}

	endian := args.Endian
	if endian == "" {
		endian = cfg.Input.Endianness
	}
	e, err := hexconv.ParseEndian(endian)
	if err != nil {
		return opts, NewValidationErrorWithExample("endianness", endian,
			"must be big or little", "--endian little")
	}
	opts.Endian = e

	repr := args.Repr
	if repr == "" {
		repr = cfg.Input.Representation
	}
	m, err := hexconv.ParseMode(repr)
	if err != nil {
		return opts, NewValidationErrorWithExample("representation", repr,
			"must be unsigned, twos, ones, or signmag", "--repr twos")
	}
	opts.Mode = m

	switch {
	case args.Groups != "":
		opts.Spec = hexconv.PatternGroups(hexconv.ParseGroupPattern(args.Groups))
	case args.GroupSize != 0:
		if !validGroupSize(args.GroupSize) {
			return opts, NewValidationErrorWithExample("group size",
				fmt.Sprintf("%d", args.GroupSize), "must be 1, 2, 4, or 8", "--group 4")
		}
		opts.Spec = hexconv.UniformGroups(args.GroupSize)
	case cfg.Input.GroupPattern != "":
		opts.Spec = hexconv.PatternGroups(hexconv.ParseGroupPattern(cfg.Input.GroupPattern))
	default:
		opts.Spec = hexconv.UniformGroups(cfg.Input.GroupSize)
	}

	width := args.Width
	if width == 0 {
		width = cfg.Input.Width
	}
	if width < 1 || width > hexconv.MaxBytes {
		return opts, NewValidationErrorWithExample("width",
			fmt.Sprintf("%d", width), "must be between 1 and 8 bytes", "--width 4")
	}
	opts.Width = width

	return opts, nil
}

func validGroupSize(n int) bool {
	return n == 1 || n == 2 || n == 4 || n == 8
}

// Report is a full conversion report for one input.
type Report struct {
	Input  string `json:"input"`
	Kind   string `json:"kind"`
	Length int    `json:"length"`
	Endian string `json:"endian"`
	Mode   string `json:"representation"`

	Bytes     string   `json:"bytes"`
	Binary    string   `json:"binary"`
	HexGroups []string `json:"hex_groups"`
	Unsigned  []uint64 `json:"unsigned,omitempty"`
	Signed    []int64  `json:"signed,omitempty"`
	Ascii     string   `json:"ascii"`
	AsciiRuns []string `json:"ascii_runs"`

	// String command only: grouped binary and text views
	BinGroups  []string `json:"bin_groups,omitempty"`
	TextGroups []string `json:"text_groups,omitempty"`

	// Whole-buffer readings under the other signed representations,
	// decoded big-endian from the raw byte order.
	SignedOnes    string `json:"signed_ones_whole,omitempty"`
	SignMagnitude string `json:"sign_magnitude_whole,omitempty"`

	// Number command only
	Value     string `json:"value,omitempty"`
	ScalarHex string `json:"scalar_hex,omitempty"`
	Range     string `json:"range,omitempty"`
	Width     int    `json:"width,omitempty"`
}

// BuildReport assembles a report from raw bytes.
// Per-group unsigned and signed readings are only computed for uniform
// group sizes; custom patterns still get grouped hex.
func BuildReport(kind, input string, data []byte, opts Options) *Report {
	r := &Report{
		Input:     input,
		Kind:      kind,
		Length:    len(data),
		Endian:    opts.Endian.String(),
		Mode:      opts.Mode.String(),
		Bytes:     hexconv.HexBytes(data),
		Binary:    hexconv.BinaryBytes(data),
		HexGroups: hexconv.GroupHex(data, opts.Spec, opts.Endian),
		Ascii:     hexconv.AsciiString(data),
		AsciiRuns: hexconv.AsciiRuns(data),
	}

	if !opts.Spec.IsCustom() {
		if u, s, err := hexconv.GroupInts(data, opts.Endian, opts.Spec.Size()); err == nil {
			r.Unsigned = u
			r.Signed = s
		}
	}

	if kind == "hex" && len(data) > 0 {
		r.SignedOnes = hexconv.BytesToInt(data, hexconv.OnesComplement, hexconv.Big).String()
		r.SignMagnitude = hexconv.BytesToInt(data, hexconv.SignMagnitude, hexconv.Big).String()
	}

	if kind == "string" {
		r.BinGroups = hexconv.GroupBinary(data, opts.Spec, opts.Endian)
		for _, chunk := range hexconv.ChunkBytes(data, opts.Spec, opts.Endian) {
			r.TextGroups = append(r.TextGroups, hexconv.AsciiString(chunk))
		}
	}

	return r
}

// Render writes the report as aligned label/value lines.
func (r *Report) Render(verbose bool) string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(RenderLabel(label))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}

	line("Input", r.Input)
	line("Length", fmt.Sprintf("%d byte(s)", r.Length))
	line("Bytes", r.Bytes)
	line("Binary", r.Binary)

	if len(r.HexGroups) > 0 {
		label := fmt.Sprintf("Groups (%s)", r.Endian)
		b.WriteString(RenderLabel(label))
		b.WriteString(HighlightStyle.Render(strings.Join(r.HexGroups, "  ")))
		b.WriteString("\n")
	}

	if r.Unsigned != nil {
		line("Unsigned", joinUint64(r.Unsigned))
		line("Signed 2's", joinInt64(r.Signed))
	}
	if r.SignedOnes != "" {
		line("Signed 1's (whole)", r.SignedOnes)
		line("Sign-mag (whole)", r.SignMagnitude)
	}
	if r.BinGroups != nil {
		line("Bin groups", strings.Join(r.BinGroups, "  "))
		line("Text groups", strings.Join(r.TextGroups, "  "))
	}

	line("ASCII", r.Ascii)
	if verbose {
		line("ASCII runs", strings.Join(r.AsciiRuns, " "))
	}

	if r.Value != "" {
		line("Value", r.Value)
		line("Scalar hex", r.ScalarHex)
		if r.Range != "" {
			b.WriteString(RenderLabel("Range"))
			b.WriteString(DimStyle.Render(r.Range))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func joinUint64(vals []uint64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "  ")
}

func joinInt64(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "  ")
}

// =============================================================================
// NUMBER FORMATTING
// =============================================================================

// groupedPrinter formats integers with thousands separators.
var groupedPrinter = message.NewPrinter(language.English)

// FormatGrouped renders a big.Int with thousands separators.
// All values here fit eight bytes, so int64/uint64 cover the range.
func FormatGrouped(v *big.Int) string {
	if v.Sign() < 0 {
		return groupedPrinter.Sprintf("%d", v.Int64())
	}
	return groupedPrinter.Sprintf("%d", v.Uint64())
}

// RangeLabel describes the representable range for a width and mode,
// e.g. "4-byte 2's complement: -2,147,483,648 to 2,147,483,647".
func RangeLabel(width int, mode hexconv.Mode) string {
	lo, hi, err := hexconv.IntRangeFor(width, mode)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d-byte %s: %s to %s",
		width, mode, FormatGrouped(lo), FormatGrouped(hi))
}
