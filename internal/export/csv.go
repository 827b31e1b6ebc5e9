// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jeranaias/hexspect/internal/history"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// csvHeader is the column order for CSV exports.
var csvHeader = []string{"id", "kind", "input", "bytes", "endian", "mode", "width", "created_at"}

// CSVExporter exports history entries as RFC 4180 CSV with a header row.
type CSVExporter struct{}

// Export renders the entries as CSV.
func (e *CSVExporter) Export(entries []history.Entry) ([]byte, error) {
	if entries == nil {
		return nil, fmt.Errorf("no entries to export")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		record := []string{
			entry.ID,
			entry.Kind,
			entry.Input,
			entry.Bytes,
			entry.Endian,
			entry.Mode,
			strconv.Itoa(entry.Width),
			entry.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
