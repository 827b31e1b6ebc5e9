// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/hexspect/internal/history"
)

func sampleEntries() []history.Entry {
	return []history.Entry{
		{
			ID:        "a1",
			Kind:      history.KindHex,
			Input:     "E8 08 B0 04",
			Bytes:     "E8 08 B0 04",
			Endian:    "little",
			Mode:      "twos",
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "b2",
			Kind:      history.KindNumber,
			Input:     "0x4D2",
			Bytes:     "D2 04 00 00",
			Endian:    "little",
			Mode:      "twos",
			Width:     4,
			CreatedAt: time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC),
		},
	}
}

func TestForFormat(t *testing.T) {
	for format, ext := range map[string]string{
		"json":     ".json",
		"":         ".json",
		"csv":      ".csv",
		"md":       ".md",
		"markdown": ".md",
		"CSV":      ".csv",
	} {
		exporter, err := ForFormat(format)
		require.NoError(t, err, "format %q", format)
		assert.Equal(t, ext, exporter.FileExtension(), "format %q", format)
	}

	_, err := ForFormat("xml")
	assert.Error(t, err)
}

func TestJSONExporter_RoundTrips(t *testing.T) {
	out, err := (&JSONExporter{}).Export(sampleEntries())
	require.NoError(t, err)

	var decoded []history.Entry
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "E8 08 B0 04", decoded[0].Bytes)
	assert.Equal(t, 4, decoded[1].Width)
}

func TestCSVExporter_HeaderAndRows(t *testing.T) {
	out, err := (&CSVExporter{}).Export(sampleEntries())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,kind,input,bytes,endian,mode,width,created_at", lines[0])
	assert.Contains(t, lines[1], "E8 08 B0 04")
	assert.Contains(t, lines[2], "2026-03-01T12:05:00Z")
}

func TestMarkdownExporter_EscapesPipes(t *testing.T) {
	entries := sampleEntries()
	entries[0].Input = "E8|08"

	out, err := (&MarkdownExporter{}).Export(entries)
	require.NoError(t, err)
	assert.Contains(t, string(out), `E8\|08`)
	assert.Contains(t, string(out), "| When | Kind |")
}

func TestExport_NilEntries(t *testing.T) {
	for _, e := range []Exporter{&JSONExporter{}, &CSVExporter{}, &MarkdownExporter{}} {
		_, err := e.Export(nil)
		assert.Error(t, err)
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := ExportToFile(sampleEntries(), &CSVExporter{}, dir)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "E8 08 B0 04")
}

func TestExportToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, ExportToPath(sampleEntries(), &JSONExporter{}, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"bytes": "E8 08 B0 04"`)
}

func TestExportToFile_EmptySliceStillWrites(t *testing.T) {
	path, err := ExportToFile([]history.Entry{}, &JSONExporter{}, t.TempDir())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))
}
