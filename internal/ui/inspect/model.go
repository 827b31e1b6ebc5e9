// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inspect provides the interactive inspector view for the hexspect TUI.
package inspect

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/hexspect/internal/config"
	"github.com/jeranaias/hexspect/internal/hexconv"
	"github.com/jeranaias/hexspect/internal/history"
	"github.com/jeranaias/hexspect/internal/ui/styles"
)

// =============================================================================
// VIEWS
// =============================================================================

// View identifies which input view is active.
type View int

const (
	ViewHex View = iota
	ViewNumber
	ViewString
)

// String returns the tab label for the view.
func (v View) String() string {
	switch v {
	case ViewNumber:
		return "NUMBER"
	case ViewString:
		return "STRING"
	default:
		return "HEX"
	}
}

// historyKind maps the view to its history entry kind.
func (v View) historyKind() string {
	switch v {
	case ViewNumber:
		return history.KindNumber
	case ViewString:
		return history.KindString
	default:
		return history.KindHex
	}
}

// =============================================================================
// INSPECTOR MODEL
// =============================================================================

// Model is the Bubble Tea model for the inspector.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Active view and one input per view; values survive view switches
	view   View
	inputs [3]textinput.Model

	// Conversion settings shared by all views
	endian    hexconv.Endian
	mode      hexconv.Mode
	groupSize int
	numWidth  int

	// Computed readings for the current input
	result *result
	err    error

	// History store; nil when history is disabled
	store *history.Store

	// Key bindings
	keyMap KeyMap

	// Transient status line and help overlay
	statusMsg string
	showHelp  bool
}

// result holds every reading of the current input.
type result struct {
	data     []byte
	bytesHex string
	binary   string
	groups   []string
	unsigned []uint64
	signed   []int64
	ascii    string
	runs     []string

	// Whole-buffer readings under the other signed representations
	onesWhole    string
	signMagWhole string

	// Number view only
	value      string
	scalarHex  string
	rangeLabel string
}

// New creates an inspector model from the active configuration.
// store may be nil when history is disabled.
func New(cfg *config.Config, store *history.Store) Model {
	m := Model{
		theme:     styles.NewTheme(80, 24),
		keyMap:    DefaultKeyMap(),
		store:     store,
		endian:    hexconv.Little,
		mode:      hexconv.TwosComplement,
		groupSize: 1,
		numWidth:  4,
	}

	m.applyConfig(cfg)

	seeds := [3]struct{ placeholder, value string }{
		{"hex bytes, e.g. E8 08 B0 04", "E8 08 B0 04 00 00 2C 01"},
		{"integer, e.g. 0x4D2 or -42", "0x4D2"},
		{"text to encode", "Hello, CAN!"},
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = seeds[i].placeholder
		in.SetValue(seeds[i].value)
		in.CharLimit = 256
		in.Prompt = ""
		m.inputs[i] = in
	}

	m.recallLastInput()
	m.inputs[m.view].Focus()

	m.recompute()
	return m
}

// recallLastInput opens on the most recently recorded conversion, when
// there is one.
func (m *Model) recallLastInput() {
	if m.store == nil {
		return
	}
	entries, err := m.store.Recent(context.Background(), 1)
	if err != nil || len(entries) == 0 {
		return
	}

	last := entries[0]
	view := ViewHex
	switch last.Kind {
	case history.KindNumber:
		view = ViewNumber
	case history.KindString:
		view = ViewString
	}
	m.view = view
	m.inputs[view].SetValue(last.Input)
	if e, err := hexconv.ParseEndian(last.Endian); err == nil {
		m.endian = e
	}
}

// applyConfig seeds the conversion settings from configuration values,
// ignoring anything malformed.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if e, err := hexconv.ParseEndian(cfg.Input.Endianness); err == nil {
		m.endian = e
	}
	if md, err := hexconv.ParseMode(cfg.Input.Representation); err == nil {
		m.mode = md
	}
	if gs := cfg.Input.GroupSize; gs == 1 || gs == 2 || gs == 4 || gs == 8 {
		m.groupSize = gs
	}
	if w := cfg.Input.Width; w >= 1 && w <= hexconv.MaxBytes {
		m.numWidth = w
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// currentInput returns the focused input's trimmed value.
func (m *Model) currentInput() string {
	return strings.TrimSpace(m.inputs[m.view].Value())
}

// recompute rebuilds the readings for the current input and settings.
func (m *Model) recompute() {
	m.err = nil
	m.result = nil

	input := m.currentInput()
	if input == "" {
		return
	}

	var data []byte
	res := &result{}

	switch m.view {
	case ViewNumber:
		value, err := hexconv.ParseInt(input)
		if err != nil {
			m.err = err
			return
		}
		data, err = hexconv.IntToBytes(value, m.numWidth, m.mode, m.endian)
		if err != nil {
			m.err = err
			return
		}
		res.value = formatGrouped(value)
		res.scalarHex = hexconv.ScalarHex(value, m.numWidth)
		res.rangeLabel = rangeLabel(m.numWidth, m.mode)

	case ViewString:
		data = encodeText(input)

	default:
		var err error
		data, err = hexconv.ParseHexBytes(input)
		if err != nil {
			m.err = err
			return
		}
		if data == nil {
			return
		}
	}

	res.data = data
	res.bytesHex = hexconv.HexBytes(data)
	res.binary = hexconv.BinaryBytes(data)
	res.groups = hexconv.GroupHex(data, hexconv.UniformGroups(m.groupSize), m.endian)
	res.ascii = hexconv.AsciiString(data)
	res.runs = hexconv.AsciiRuns(data)

	if u, s, err := hexconv.GroupInts(data, m.endian, m.groupSize); err == nil {
		res.unsigned = u
		res.signed = s
	}

	if len(data) > 0 {
		res.onesWhole = hexconv.BytesToInt(data, hexconv.OnesComplement, hexconv.Big).String()
		res.signMagWhole = hexconv.BytesToInt(data, hexconv.SignMagnitude, hexconv.Big).String()
	}

	m.result = res
}

// encodeText converts text to bytes, one byte per rune; runes above
// U+00FF encode as '?'.
func encodeText(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return out
}

// =============================================================================
// NUMBER FORMATTING
// =============================================================================

var groupedPrinter = message.NewPrinter(language.English)

func formatGrouped(v *big.Int) string {
	if v.Sign() < 0 {
		return groupedPrinter.Sprintf("%d", v.Int64())
	}
	return groupedPrinter.Sprintf("%d", v.Uint64())
}

func rangeLabel(width int, mode hexconv.Mode) string {
	lo, hi, err := hexconv.IntRangeFor(width, mode)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d-byte %s: %s to %s",
		width, mode, formatGrouped(lo), formatGrouped(hi))
}
