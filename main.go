// hexspect - byte, integer, and text inspector for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hexspect/internal/cli"
	"github.com/jeranaias/hexspect/internal/config"
	"github.com/jeranaias/hexspect/internal/history"
	"github.com/jeranaias/hexspect/internal/ui/inspect"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	if args.NoColor {
		cli.ForceColorsEnabled(false)
	}

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdHex:
		err = cli.HandleHex(args)
	case cli.CmdNumber:
		err = cli.HandleNumber(args)
	case cli.CmdString:
		err = cli.HandleString(args)
	case cli.CmdRepl:
		err = cli.HandleRepl(args)
	case cli.CmdHistory:
		err = cli.HandleHistory(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdDocs:
		err = cli.HandleDocs(args)
	case cli.CmdVersion:
		err = cli.PrintVersion(args.JSON)
	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}

// runTUI starts the interactive inspector.
func runTUI(args cli.Args) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed, using defaults: %v\n", err)
		cfg = config.Default()
	}
	config.SetGlobal(cfg)

	// History is optional; the inspector works without it.
	var store *history.Store
	if cfg.History.Enabled && !args.NoHistory {
		path := cfg.History.DBPath
		if path == "" {
			path, err = history.DefaultPath()
		}
		if err == nil {
			if s, openErr := history.Open(path, cfg.History.MaxEntries); openErr == nil {
				store = s
				defer store.Close()
			} else if args.Verbose {
				fmt.Fprintf(os.Stderr, "history unavailable: %v\n", openErr)
			}
		}
	}

	p := tea.NewProgram(inspect.New(cfg, store), tea.WithAltScreen())

	// Pick up config edits made while the inspector is open.
	watcher, watchErr := config.NewWatcher(500*time.Millisecond, func(updated *config.Config) {
		p.Send(inspect.ConfigReloadedMsg{Config: updated})
	})
	if watchErr == nil {
		if err := watcher.Watch(); err == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspector failed: %w", err)
	}
	return nil
}
