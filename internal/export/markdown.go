// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/hexspect/internal/history"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports history entries as a Markdown table, ready to
// paste into an issue or a commit message.
type MarkdownExporter struct{}

// Export renders the entries as Markdown.
func (e *MarkdownExporter) Export(entries []history.Entry) ([]byte, error) {
	if entries == nil {
		return nil, fmt.Errorf("no entries to export")
	}

	var b strings.Builder
	b.WriteString("# hexspect history\n\n")
	b.WriteString(fmt.Sprintf("Exported %s, %d entries.\n\n",
		time.Now().UTC().Format(time.RFC3339), len(entries)))

	b.WriteString("| When | Kind | Input | Bytes | Endian | Mode | Width |\n")
	b.WriteString("|------|------|-------|-------|--------|------|-------|\n")
	for _, entry := range entries {
		width := ""
		if entry.Width > 0 {
			width = fmt.Sprintf("%d", entry.Width)
		}
		b.WriteString(fmt.Sprintf("| %s | %s | `%s` | `%s` | %s | %s | %s |\n",
			entry.CreatedAt.UTC().Format("2006-01-02 15:04"),
			entry.Kind,
			escapeCell(entry.Input),
			entry.Bytes,
			entry.Endian,
			entry.Mode,
			width,
		))
	}

	return []byte(b.String()), nil
}

// escapeCell keeps table markup intact when inputs contain pipes.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}
