// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for hexspect.
package cli

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdHex
	CmdNumber
	CmdString
	CmdRepl
	CmdHistory
	CmdConfig
	CmdDocs
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool
	NoColor bool

	// Conversion flags
	Endian    string // "big" or "little"
	Width     int    // byte width for number encoding (1..8)
	Repr      string // signed representation: unsigned/twos/ones/signmag
	GroupSize int    // uniform group size (1, 2, 4, 8)
	Groups    string // custom group pattern, e.g. "1,1,6"
	Copy      bool   // copy the hex bytes to the clipboard
	NoHistory bool   // skip recording this conversion

	// Command-specific
	Query      string // joined input (hex string, number, or text)
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string

	// Options holds command-specific named options
	Options map[string]string
}

const usageText = `hexspect - byte, integer, and text inspector for the terminal

Hexspect converts between hex byte strings, integers, and text, showing
every reading of the same bytes side by side: grouped hex, binary,
unsigned and signed values in four representations, and printable ASCII.

Usage:
  hexspect                        Start the interactive inspector (default)
  hexspect hex "E8 08 B0 04"      Decode a hex byte string
  hexspect number 0x4D2           Encode an integer as bytes
  hexspect string "Hello"         Encode text as bytes
  hexspect repl                   Interactive line-based conversion loop
  hexspect history [subcommand]   Browse recorded conversions
  hexspect config [show|set]      Configuration
  hexspect docs                   Render the built-in reference card
  hexspect version                Show version information

Hex Command:
  hexspect hex "E8 08 B0 04 00 00 2C 01"
  hexspect hex E808B004           Continuous pairs work too
  hexspect hex "0xE8, 0x08"       Commas and 0x prefixes are accepted
    --endian big|little           Byte order within each group (default: little)
    --group 1|2|4|8               Uniform group size (default: 1)
    --groups 1,1,6                Custom group pattern (overrides --group)

Number Command:
  hexspect number 1234
  hexspect number 0x4D2 --width 4
  hexspect number -42 --repr ones
  hexspect number 0b1010 --width 2 --endian big
    --width N                     Byte width 1..8 (default: 4)
    --repr REPR                   unsigned, twos, ones, or signmag (default: twos)
    --endian big|little           Byte order (default: little)

String Command:
  hexspect string "Hello, CAN!"
    --endian big|little           Byte order within each group
    --group 1|2|4|8               Uniform group size

History Commands:
  hexspect history list           List recent conversions (default: 20)
    --limit N                     Show last N entries
  hexspect history show <id>      Show one entry in full
  hexspect history search <text>  Search conversions by input
  hexspect history stats          Show history statistics
  hexspect history export         Write conversions to a file
    --format json|csv|md          Output format (default: json)
    --output FILE                 Exact path (default: timestamped file)
  hexspect history clear --confirm
                                  Delete all recorded conversions

Config Commands:
  hexspect config show            Display current configuration
  hexspect config get <key>       Read a single value
  hexspect config set <key> <value>
                                  Set a configuration value
  hexspect config reset           Reset to defaults
  hexspect config path            Show configuration file location

  Keys: input.endianness, input.group_size, input.group_pattern,
        input.width, input.representation, display.theme,
        display.compact_mode, display.show_binary, display.show_ascii,
        history.enabled, history.max_entries, history.db_path

Global Flags:
  --json                          Machine-readable JSON output
  --copy                          Copy the hex bytes to the clipboard
  --no-history                    Do not record this conversion
  --no-color                      Disable colored output
  -q, --quiet                     Suppress non-essential output
  -v, --verbose                   Verbose output

A bare byte string is treated as a hex command:
  hexspect "E8 08 B0 04"          Same as: hexspect hex "E8 08 B0 04"

When no input argument is given, hex and string read from stdin, so
pipelines work: echo "DE AD BE EF" | hexspect hex --group 2
`

// Parse parses command-line arguments and returns the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]

	switch cmd {
	case "hex", "h", "x", "bytes":
		parseConversionArgs(&parsedArgs, remaining)
		return CmdHex, parsedArgs

	case "number", "num", "int", "n":
		parseConversionArgs(&parsedArgs, remaining)
		return CmdNumber, parsedArgs

	case "string", "str", "text", "s":
		parseConversionArgs(&parsedArgs, remaining)
		return CmdString, parsedArgs

	case "repl", "i", "interactive":
		return CmdRepl, parsedArgs

	case "history", "hist":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
			parsedArgs.Raw = remaining[1:]
		}
		return CmdHistory, parsedArgs

	case "config", "cfg":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "docs", "doc", "reference":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
		}
		return CmdDocs, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Not a known command - treat the whole line as hex input.
		// This makes `hexspect "E8 08 B0 04"` do the obvious thing.
		parseConversionArgs(&parsedArgs, append([]string{cmd}, remaining...))
		return CmdHex, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	parsedArgs := Args{
		Width:   0, // 0 means "use configured default"
		Options: make(map[string]string),
	}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--copy", "-y":
			parsedArgs.Copy = true
		case "--no-history":
			parsedArgs.NoHistory = true
		case "--endian", "-e":
			if i+1 < len(args) {
				i++
				parsedArgs.Endian = args[i]
			}
		case "--width", "-w":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					parsedArgs.Width = n
				}
			}
		case "--repr", "-r":
			if i+1 < len(args) {
				i++
				parsedArgs.Repr = args[i]
			}
		case "--group", "-g":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					parsedArgs.GroupSize = n
				}
			}
		case "--groups":
			if i+1 < len(args) {
				i++
				parsedArgs.Groups = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--endian="):
				parsedArgs.Endian = strings.TrimPrefix(arg, "--endian=")
			case strings.HasPrefix(arg, "--width="):
				if n, err := strconv.Atoi(strings.TrimPrefix(arg, "--width=")); err == nil {
					parsedArgs.Width = n
				}
			case strings.HasPrefix(arg, "--repr="):
				parsedArgs.Repr = strings.TrimPrefix(arg, "--repr=")
			case strings.HasPrefix(arg, "--group="):
				if n, err := strconv.Atoi(strings.TrimPrefix(arg, "--group=")); err == nil {
					parsedArgs.GroupSize = n
				}
			case strings.HasPrefix(arg, "--groups="):
				parsedArgs.Groups = strings.TrimPrefix(arg, "--groups=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseConversionArgs parses hex/number/string command arguments.
// Everything that is not a flag is joined into the input query, so
// unquoted byte strings like `hexspect hex E8 08 B0 04` work.
func parseConversionArgs(args *Args, remaining []string) {
	var input []string
	for _, arg := range remaining {
		if strings.HasPrefix(arg, "--") {
			// Stray flag that parseGlobalFlags did not claim; remember it
			// so handlers can reject it with a useful message.
			name := strings.TrimLeft(arg, "-")
			if k, v, ok := strings.Cut(name, "="); ok {
				args.Options[k] = v
			} else {
				args.Options[name] = "true"
			}
			continue
		}
		input = append(input, arg)
	}
	args.Query = strings.Join(input, " ")
	args.Raw = remaining
}

// parseConfigArgs parses config command arguments.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		return
	}
	args.Subcommand = remaining[0]
	switch args.Subcommand {
	case "get":
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
	case "set":
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			args.ConfigVal = remaining[2]
		}
	}
	args.Raw = remaining[1:]
}

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion prints version information.
func PrintVersion(jsonMode bool) error {
	if jsonMode {
		resp := NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		})
		return resp.Print()
	}

	fmt.Printf("hexspect %s\n", Version)
	if GitCommit != "unknown" {
		fmt.Printf("  commit: %s\n", GitCommit)
		fmt.Printf("  built:  %s\n", BuildDate)
	}
	fmt.Printf("  go:     %s\n", runtime.Version())
	return nil
}
