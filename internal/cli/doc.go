// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for hexspect.
//
// This package implements all CLI commands for the hexspect TUI application,
// providing both the interactive inspector and non-interactive one-shot
// conversions suitable for scripting and pipelines.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments with global and command-specific flags
//   - Report: A full conversion report (bytes, groups, signed readings, ASCII)
//
// # Usage
//
// Parse and execute commands:
//
//	cmd, args := cli.Parse(os.Args[1:])
//	switch cmd {
//	case cli.CmdHex:
//	    return cli.HandleHex(args)
//	case cli.CmdNumber:
//	    return cli.HandleNumber(args)
//	// ... other commands
//	}
//
// # Commands Overview
//
// Core Commands:
//   - hex: Decode a hex byte string and show every reading of it
//   - number: Encode an integer at a chosen width and representation
//   - string: Encode text as bytes and show the byte-level view
//   - repl: Interactive line-based conversion loop
//   - history: Browse, search, export, and clear recorded conversions
//   - config: Configuration management
//   - docs: Render the built-in reference card
//
// All conversion commands support --json for machine-readable output.
package cli
