// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for hexspect.
//
// Command: config [subcommand]
// Short:   View and modify configuration
// Aliases: cfg
//
// Subcommands:
//   show (default)      Display current configuration
//   get <key>           Read a single value
//   set <key> <value>   Set a configuration value
//   reset               Reset to default configuration
//   path                Show configuration file path
//
// Examples:
//   hexspect config                       Show current config (default)
//   hexspect config show --json           Config in JSON format
//   hexspect config get input.width
//   hexspect config set input.endianness big
//   hexspect config set input.width 4
//   hexspect config set input.representation ones
//   hexspect config set display.show_binary false
//   hexspect config set history.max_entries 500
//   hexspect config reset                 Reset to defaults
//   hexspect config path                  Show config file location
//
// Configuration Keys:
//   input.endianness      Byte order (big/little)
//   input.group_size      Uniform group size (1/2/4/8)
//   input.group_pattern   Custom group pattern, e.g. "1,1,6"
//   input.width           Default byte width for numbers (1..8)
//   input.representation  Signed representation (unsigned/twos/ones/signmag)
//   display.theme         Color theme (dark/light/auto)
//   display.compact_mode  Hide secondary report lines (true/false)
//   display.show_binary   Show the binary line (true/false)
//   display.show_ascii    Show the ASCII line (true/false)
//   history.enabled       Record conversions (true/false)
//   history.max_entries   Entries kept before pruning
//   history.db_path       Override history database location
//
// Flags:
//   --json              Output in JSON format
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/hexspect/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)

	case "get":
		return handleConfigGet(args)

	case "set":
		return handleConfigSet(args)

	case "reset":
		return handleConfigReset(args)

	case "path":
		return handleConfigPath(args)

	default:
		return HandleError(NewValidationError("subcommand", args.Subcommand,
			"must be show, get, set, reset, or path"), args.JSON)
	}
}

func handleConfigShow(args Args) error {
	cfg := loadConfigOrDefault(args.Verbose)

	if args.JSON {
		return NewJSONResponse("config", cfg).Print()
	}

	fmt.Println(TitleStyle.Render("Configuration"))

	fmt.Println(SectionStyle.Render("Input"))
	fmt.Printf("%s%s\n", RenderLabel("  endianness"), cfg.Input.Endianness)
	fmt.Printf("%s%d\n", RenderLabel("  group_size"), cfg.Input.GroupSize)
	pattern := cfg.Input.GroupPattern
	if pattern == "" {
		pattern = DimStyle.Render("(none)")
	}
	fmt.Printf("%s%s\n", RenderLabel("  group_pattern"), pattern)
	fmt.Printf("%s%d\n", RenderLabel("  width"), cfg.Input.Width)
	fmt.Printf("%s%s\n", RenderLabel("  representation"), cfg.Input.Representation)

	fmt.Println(SectionStyle.Render("Display"))
	fmt.Printf("%s%s\n", RenderLabel("  theme"), cfg.Display.Theme)
	fmt.Printf("%s%t\n", RenderLabel("  compact_mode"), cfg.Display.CompactMode)
	fmt.Printf("%s%t\n", RenderLabel("  show_binary"), cfg.Display.ShowBinary)
	fmt.Printf("%s%t\n", RenderLabel("  show_ascii"), cfg.Display.ShowAscii)

	fmt.Println(SectionStyle.Render("History"))
	fmt.Printf("%s%t\n", RenderLabel("  enabled"), cfg.History.Enabled)
	fmt.Printf("%s%d\n", RenderLabel("  max_entries"), cfg.History.MaxEntries)
	dbPath := cfg.History.DBPath
	if dbPath == "" {
		dbPath = DimStyle.Render("(default)")
	}
	fmt.Printf("%s%s\n", RenderLabel("  db_path"), dbPath)

	if path, err := config.ConfigPathTOML(); err == nil {
		fmt.Printf("\n%s%s\n", RenderLabel("Path"), DimStyle.Render(path))
	}
	return nil
}

func handleConfigGet(args Args) error {
	if args.ConfigKey == "" {
		return HandleError(NewValidationErrorWithExample("key", "",
			"get needs a key", "hexspect config get input.width"), args.JSON)
	}

	cfg := loadConfigOrDefault(args.Verbose)
	val, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return HandleError(NewNotFoundError("config key", args.ConfigKey), args.JSON)
	}

	if args.JSON {
		return NewJSONResponse("config", map[string]interface{}{
			"key":   args.ConfigKey,
			"value": val,
		}).Print()
	}
	fmt.Printf("%v\n", val)
	return nil
}

func handleConfigSet(args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return HandleError(NewValidationErrorWithExample("set", "",
			"set needs a key and a value", "hexspect config set input.width 4"), args.JSON)
	}

	cfg := loadConfigOrDefault(args.Verbose)

	if err := cfg.Set(args.ConfigKey, coerceConfigValue(args.ConfigVal)); err != nil {
		return HandleError(NewValidationError(args.ConfigKey, args.ConfigVal, err.Error()), args.JSON)
	}

	// Validate the whole config so a bad value never reaches disk.
	if err := cfg.Validate(); err != nil {
		return HandleError(NewValidationError(args.ConfigKey, args.ConfigVal, err.Error()), args.JSON)
	}

	if err := config.Save(cfg); err != nil {
		return HandleError(NewCommandError("config", "save", "write failed", err), args.JSON)
	}
	config.SetGlobal(cfg)

	if args.JSON {
		return NewJSONResponse("config", map[string]string{
			"key":    args.ConfigKey,
			"value":  args.ConfigVal,
			"status": "saved",
		}).Print()
	}
	fmt.Printf("%s %s = %s\n", SuccessStyle.Render("[OK]"), args.ConfigKey, args.ConfigVal)
	return nil
}

func handleConfigReset(args Args) error {
	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return HandleError(NewCommandError("config", "reset", "write failed", err), args.JSON)
	}
	config.SetGlobal(cfg)

	if args.JSON {
		return NewJSONResponse("config", map[string]string{"status": "reset"}).Print()
	}
	fmt.Println(SuccessStyle.Render("[OK]") + " configuration reset to defaults")
	return nil
}

func handleConfigPath(args Args) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return HandleError(NewCommandError("config", "path", "cannot resolve path", err), args.JSON)
	}

	if args.JSON {
		return NewJSONResponse("config", map[string]string{"path": path}).Print()
	}
	fmt.Println(path)
	return nil
}

// coerceConfigValue turns a CLI string into the type Set expects:
// bools and ints pass through as themselves, everything else stays a string.
func coerceConfigValue(s string) interface{} {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
