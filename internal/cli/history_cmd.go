// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - History command implementation for hexspect.
//
// Command: history [subcommand]
// Short:   Browse, search, export, and clear recorded conversions
// Aliases: hist
//
// Subcommands:
//   list (default)      List recent conversions
//     --limit N         Show last N entries (default: 20)
//   show <id>           Show one entry in full
//   search <text>       Search conversions by input text
//     --limit N         Cap results (default: 20)
//   stats               Show history statistics
//   export              Write conversions to a file
//     --format FMT      json (default), csv, or md
//     --output FILE     Exact output path (default: timestamped file in cwd)
//     --limit N         Export last N entries (default: all)
//   clear --confirm     Delete all recorded conversions
//
// Examples:
//   hexspect history
//   hexspect history list --limit 50
//   hexspect history search "E8 08"
//   hexspect history stats --json
//   hexspect history export --format csv --output conversions.csv
//   hexspect history clear --confirm
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeranaias/hexspect/internal/export"
	"github.com/jeranaias/hexspect/internal/history"
	"github.com/jeranaias/hexspect/internal/util"
)

// HandleHistory handles the "history" command.
func HandleHistory(args Args) error {
	cfg := loadConfigOrDefault(args.Verbose)

	path := cfg.History.DBPath
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return HandleError(NewCommandError("history", "resolve path",
				"cannot determine history location", err), args.JSON)
		}
	}

	store, err := history.Open(path, cfg.History.MaxEntries)
	if err != nil {
		return HandleError(NewCommandError("history", "open database",
			"cannot open history", err), args.JSON)
	}
	defer store.Close()

	parser := NewArgParser(args.Raw)
	ctx := context.Background()

	switch args.Subcommand {
	case "", "list":
		limit := parser.FlagIntOrDefault("limit", 20)
		entries, err := store.Recent(ctx, limit)
		if err != nil {
			return HandleError(NewCommandError("history", "list",
				"query failed", err), args.JSON)
		}
		return printEntries("history", entries, args.JSON)

	case "search":
		query := JoinPositionalArgs(parser, 0)
		if query == "" {
			return HandleError(NewValidationErrorWithExample("query", "",
				"search needs text to look for", `hexspect history search "E8 08"`), args.JSON)
		}
		limit := parser.FlagIntOrDefault("limit", 20)
		entries, err := store.Search(ctx, query, limit)
		if err != nil {
			return HandleError(NewCommandError("history", "search",
				"query failed", err), args.JSON)
		}
		return printEntries("history", entries, args.JSON)

	case "show":
		id := parser.Positional(0)
		if id == "" {
			return HandleError(NewValidationErrorWithExample("id", "",
				"show needs an entry ID", "hexspect history show <id>"), args.JSON)
		}
		entry, err := store.Get(ctx, id)
		if err != nil {
			if errors.Is(err, history.ErrNotFound) {
				return HandleError(NewNotFoundError("history entry", id), args.JSON)
			}
			return HandleError(NewCommandError("history", "show",
				"query failed", err), args.JSON)
		}
		return printEntryDetail(entry, args.JSON)

	case "stats":
		return handleHistoryStats(ctx, store, path, args)

	case "export":
		return handleHistoryExport(ctx, store, parser, args)

	case "clear":
		if !parser.BoolFlag("confirm") {
			return HandleError(NewValidationErrorWithExample("clear", "",
				"requires --confirm", "hexspect history clear --confirm"), args.JSON)
		}
		if err := store.Clear(ctx); err != nil {
			return HandleError(NewCommandError("history", "clear",
				"delete failed", err), args.JSON)
		}
		if args.JSON {
			return NewJSONResponse("history", map[string]string{"status": "cleared"}).Print()
		}
		fmt.Println(SuccessStyle.Render("[OK]") + " history cleared")
		return nil

	default:
		return HandleError(NewValidationError("subcommand", args.Subcommand,
			"must be list, show, search, stats, export, or clear"), args.JSON)
	}
}

func printEntryDetail(e *history.Entry, jsonMode bool) error {
	if jsonMode {
		return NewJSONResponse("history", HistoryEntryData{
			ID:        e.ID,
			Kind:      e.Kind,
			Input:     e.Input,
			Bytes:     e.Bytes,
			Endian:    e.Endian,
			Mode:      e.Mode,
			Width:     e.Width,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}).Print()
	}

	fmt.Printf("%s%s\n", RenderLabel("ID"), DimStyle.Render(e.ID))
	fmt.Printf("%s%s\n", RenderLabel("Kind"), InfoStyle.Render(e.Kind))
	fmt.Printf("%s%s\n", RenderLabel("Input"), e.Input)
	fmt.Printf("%s%s\n", RenderLabel("Bytes"), HighlightStyle.Render(e.Bytes))
	fmt.Printf("%s%s\n", RenderLabel("Endian"), e.Endian)
	fmt.Printf("%s%s\n", RenderLabel("Mode"), e.Mode)
	if e.Width > 0 {
		fmt.Printf("%s%d\n", RenderLabel("Width"), e.Width)
	}
	fmt.Printf("%s%s\n", RenderLabel("Recorded"), e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func handleHistoryExport(ctx context.Context, store *history.Store, parser *ArgParser, args Args) error {
	exporter, err := export.ForFormat(parser.FlagOrDefault("format", "json"))
	if err != nil {
		return HandleError(NewValidationErrorWithExample("format", parser.Flag("format"),
			"must be json, csv, or md", "hexspect history export --format csv"), args.JSON)
	}

	// No limit flag means export everything the store still holds.
	limit := parser.FlagIntOrDefault("limit", 1_000_000)
	entries, err := store.Recent(ctx, limit)
	if err != nil {
		return HandleError(NewCommandError("history", "export",
			"query failed", err), args.JSON)
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	outputPath := parser.Flag("output")
	if outputPath != "" {
		err = export.ExportToPath(entries, exporter, outputPath)
	} else {
		outputPath, err = export.ExportToFile(entries, exporter, ".")
	}
	if err != nil {
		return HandleError(NewCommandError("history", "export",
			"write failed", err), args.JSON)
	}

	if args.JSON {
		return NewJSONResponse("history", map[string]any{
			"path":    outputPath,
			"entries": len(entries),
		}).Print()
	}
	fmt.Printf("%s exported %d entries to %s\n",
		SuccessStyle.Render("[OK]"), len(entries), outputPath)
	return nil
}

func printEntries(command string, entries []history.Entry, jsonMode bool) error {
	if jsonMode {
		data := HistoryListData{Count: len(entries)}
		for _, e := range entries {
			data.Entries = append(data.Entries, HistoryEntryData{
				ID:        e.ID,
				Kind:      e.Kind,
				Input:     e.Input,
				Bytes:     e.Bytes,
				Endian:    e.Endian,
				Mode:      e.Mode,
				Width:     e.Width,
				CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		return NewJSONResponse(command, data).Print()
	}

	if len(entries) == 0 {
		fmt.Println(DimStyle.Render("no recorded conversions"))
		return nil
	}

	for _, e := range entries {
		ts := e.CreatedAt.Local().Format("2006-01-02 15:04")
		input := util.PadWidth(util.TruncateRunes(e.Input, 24), 24)
		fmt.Printf("%s  %-7s %s %s\n",
			DimStyle.Render(ts),
			InfoStyle.Render(e.Kind),
			input,
			HighlightStyle.Render(e.Bytes))
	}
	return nil
}

func handleHistoryStats(ctx context.Context, store *history.Store, path string, args Args) error {
	stats, err := store.GetStats(ctx)
	if err != nil {
		return HandleError(NewCommandError("history", "stats",
			"query failed", err), args.JSON)
	}

	if args.JSON {
		data := HistoryStatsData{
			Total:  stats.Total,
			ByKind: stats.ByKind,
			Path:   path,
		}
		if !stats.Oldest.IsZero() {
			data.Oldest = stats.Oldest.UTC().Format(time.RFC3339)
			data.Newest = stats.Newest.UTC().Format(time.RFC3339)
		}
		return NewJSONResponse("history", data).Print()
	}

	fmt.Println(TitleStyle.Render("History"))
	fmt.Printf("%s%d\n", RenderLabel("Entries"), stats.Total)
	for kind, n := range stats.ByKind {
		fmt.Printf("%s%d\n", RenderLabel("  "+kind), n)
	}
	if !stats.Oldest.IsZero() {
		fmt.Printf("%s%s\n", RenderLabel("Oldest"), stats.Oldest.Local().Format("2006-01-02 15:04"))
		fmt.Printf("%s%s\n", RenderLabel("Newest"), stats.Newest.Local().Format("2006-01-02 15:04"))
	}
	fmt.Printf("%s%s\n", RenderLabel("Location"), DimStyle.Render(path))
	return nil
}
