// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes recorded conversions to files in exchange formats.
//
// # Key Types
//
//   - Exporter: Format-agnostic export interface
//   - JSONExporter: Faithful, re-importable JSON
//   - CSVExporter: Spreadsheet-friendly CSV with a header row
//   - MarkdownExporter: A paste-ready Markdown table
//
// # Usage
//
//	exporter, err := export.ForFormat("csv")
//	if err != nil {
//	    return err
//	}
//	path, err := export.ExportToFile(entries, exporter, ".")
//
// Files are written atomically so a crashed export never leaves a
// truncated file behind.
package export
