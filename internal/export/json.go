// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"

	"github.com/jeranaias/hexspect/internal/history"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports history entries as indented JSON.
// JSON exports are a faithful representation of the stored entries and
// can be re-imported by tooling.
type JSONExporter struct{}

// Export renders the entries as JSON.
func (e *JSONExporter) Export(entries []history.Entry) ([]byte, error) {
	if entries == nil {
		return nil, fmt.Errorf("no entries to export")
	}
	return json.MarshalIndent(entries, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
