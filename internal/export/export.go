// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes recorded conversions to files in exchange formats.
// Supports JSON for re-import and tooling, CSV for spreadsheets, and
// Markdown for pasting into docs and issues.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/hexspect/internal/history"
	"github.com/jeranaias/hexspect/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for history exporters.
type Exporter interface {
	// Export renders the entries in the target format.
	Export(entries []history.Entry) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".csv").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return &JSONExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s (want json, csv, or md)", format)
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile writes entries to a file in the given directory.
// The filename carries a timestamp so repeated exports never collide.
// Returns the output file path.
func ExportToFile(entries []history.Entry, exporter Exporter, outputDir string) (string, error) {
	content, err := exporter.Export(entries)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if outputDir == "" {
		outputDir = "."
	}

	filename := fmt.Sprintf("hexspect_history_%s%s",
		time.Now().Format("20060102_150405"),
		exporter.FileExtension(),
	)
	outputPath := filepath.Join(outputDir, filename)

	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return outputPath, nil
}

// ExportToPath writes entries to an exact path.
func ExportToPath(entries []history.Entry, exporter Exporter, path string) error {
	content, err := exporter.Export(entries)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if err := util.AtomicWriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
