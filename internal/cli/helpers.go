// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface functionality.
// This file contains shared helper functions used across multiple CLI commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/jeranaias/hexspect/internal/config"
	"github.com/jeranaias/hexspect/internal/history"
)

// maxStdinBytes caps piped input so a misdirected pipe cannot balloon
// memory. Far beyond any sensible byte string.
const maxStdinBytes = 1 << 20

// resolveInput returns the conversion input: the command argument if one
// was given, otherwise piped stdin.
func resolveInput(args Args, command string) (string, error) {
	if args.Query != "" {
		return args.Query, nil
	}

	if IsTTY() {
		return "", NewValidationErrorWithExample("input", "",
			"no input given and stdin is a terminal",
			fmt.Sprintf("hexspect %s \"E8 08 B0 04\"", command))
	}

	data, err := io.ReadAll(io.LimitReader(os.Stdin, maxStdinBytes))
	if err != nil {
		return "", NewCommandError(command, "read stdin", "failed to read input", err)
	}

	input := strings.TrimSpace(string(data))
	if input == "" {
		return "", NewValidationError("input", "", "stdin was empty")
	}
	return input, nil
}

// copyToClipboard copies text to the system clipboard when --copy is set.
// Clipboard failures (headless hosts, no X) are reported but never fail
// the conversion itself.
func copyToClipboard(text string, quiet bool) {
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintf(os.Stderr, "%s clipboard unavailable: %v\n",
			WarningStyle.Render("[WARN]"), err)
		return
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "%s copied to clipboard\n", DimStyle.Render("->"))
	}
}

// recordConversion appends a conversion to the history database.
// History failures are deliberately quiet: a broken database should not
// break a conversion that already succeeded.
func recordConversion(kind string, r *Report, opts Options, args Args, cfg *config.Config) {
	if args.NoHistory || !cfg.History.Enabled {
		return
	}

	path := cfg.History.DBPath
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return
		}
	}

	store, err := history.Open(path, cfg.History.MaxEntries)
	if err != nil {
		if args.Verbose {
			fmt.Fprintf(os.Stderr, "%s history unavailable: %v\n",
				WarningStyle.Render("[WARN]"), err)
		}
		return
	}
	defer store.Close()

	entry := &history.Entry{
		Kind:   kind,
		Input:  r.Input,
		Bytes:  r.Bytes,
		Endian: opts.Endian.String(),
		Mode:   opts.Mode.Flag(),
		Width:  opts.Width,
	}
	if err := store.Record(context.Background(), entry); err != nil && args.Verbose {
		fmt.Fprintf(os.Stderr, "%s history record failed: %v\n",
			WarningStyle.Render("[WARN]"), err)
	}
}

// loadConfigOrDefault loads the global configuration, falling back to
// defaults if loading fails. A broken config file should degrade, not
// make every conversion error out.
func loadConfigOrDefault(verbose bool) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "%s config load failed, using defaults: %v\n",
				WarningStyle.Render("[WARN]"), err)
		}
		return config.Default()
	}
	return cfg
}
