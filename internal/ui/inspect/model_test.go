// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package inspect

import (
	"math/big"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/hexspect/internal/config"
	"github.com/jeranaias/hexspect/internal/hexconv"
)

func TestNew_DefaultsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Endianness = "big"
	cfg.Input.Representation = "ones"
	cfg.Input.GroupSize = 4
	cfg.Input.Width = 8

	m := New(cfg, nil)
	assert.Equal(t, hexconv.Big, m.endian)
	assert.Equal(t, hexconv.OnesComplement, m.mode)
	assert.Equal(t, 4, m.groupSize)
	assert.Equal(t, 8, m.numWidth)
}

func TestNew_SeedsComputeImmediately(t *testing.T) {
	m := New(config.Default(), nil)
	require.NotNil(t, m.result)
	assert.Equal(t, "E8 08 B0 04 00 00 2C 01", m.result.bytesHex)
	assert.Nil(t, m.err)
}

func TestRecompute_HexView(t *testing.T) {
	m := New(config.Default(), nil)
	m.groupSize = 2
	m.endian = hexconv.Little
	m.inputs[ViewHex].SetValue("E8 08 B0 04 00 00 2C 01")
	m.recompute()

	require.NotNil(t, m.result)
	assert.Equal(t, []string{"08 E8", "04 B0", "00 00", "01 2C"}, m.result.groups)
	assert.Equal(t, []uint64{2280, 1200, 0, 300}, m.result.unsigned)
}

func TestRecompute_WholeBufferReadings(t *testing.T) {
	m := New(config.Default(), nil)
	m.inputs[ViewHex].SetValue("81")
	m.recompute()

	require.NotNil(t, m.result)
	assert.Equal(t, "-126", m.result.onesWhole)
	assert.Equal(t, "-1", m.result.signMagWhole)
}

func TestRecompute_HexViewBadInput(t *testing.T) {
	m := New(config.Default(), nil)
	m.inputs[ViewHex].SetValue("ZZ")
	m.recompute()
	assert.Error(t, m.err)
	assert.Nil(t, m.result)
}

func TestRecompute_NumberView(t *testing.T) {
	m := New(config.Default(), nil)
	m = m.switchView(ViewNumber)
	m.numWidth = 2
	m.endian = hexconv.Big
	m.inputs[ViewNumber].SetValue("0x4D2")
	m.recompute()

	require.NotNil(t, m.result)
	assert.Equal(t, "04 D2", m.result.bytesHex)
	assert.Equal(t, "1,234", m.result.value)
	assert.Equal(t, "0x4d2", m.result.scalarHex)
	assert.Contains(t, m.result.rangeLabel, "2-byte")
}

func TestRecompute_NumberViewOutOfRange(t *testing.T) {
	m := New(config.Default(), nil)
	m = m.switchView(ViewNumber)
	m.numWidth = 1
	m.inputs[ViewNumber].SetValue("300")
	m.recompute()
	assert.Error(t, m.err)
}

func TestRecompute_StringView(t *testing.T) {
	m := New(config.Default(), nil)
	m = m.switchView(ViewString)
	m.inputs[ViewString].SetValue("Hi")
	m.recompute()

	require.NotNil(t, m.result)
	assert.Equal(t, "48 69", m.result.bytesHex)
	assert.Equal(t, "Hi", m.result.ascii)
}

func TestSwitchView_PreservesValues(t *testing.T) {
	m := New(config.Default(), nil)
	m.inputs[ViewHex].SetValue("DE AD")
	m = m.switchView(ViewNumber)
	m = m.switchView(ViewHex)
	assert.Equal(t, "DE AD", m.currentInput())
	assert.True(t, m.inputs[ViewHex].Focused())
	assert.False(t, m.inputs[ViewNumber].Focused())
}

func TestHandleKey_ToggleEndian(t *testing.T) {
	m := New(config.Default(), nil)
	before := m.endian

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlE})
	m = updated.(Model)
	assert.NotEqual(t, before, m.endian)

	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlE})
	m = updated.(Model)
	assert.Equal(t, before, m.endian)
}

func TestHandleKey_CycleWidth(t *testing.T) {
	m := New(config.Default(), nil)
	m.numWidth = 8

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlW})
	m = updated.(Model)
	assert.Equal(t, 1, m.numWidth)
}

func TestHandleKey_CycleRepr(t *testing.T) {
	m := New(config.Default(), nil)
	m.mode = hexconv.SignMagnitude

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = updated.(Model)
	assert.Equal(t, hexconv.Unsigned, m.mode)
}

func TestHandleKey_TabCyclesViews(t *testing.T) {
	m := New(config.Default(), nil)

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, ViewNumber, m.view)

	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, ViewString, m.view)

	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, ViewHex, m.view)
}

func TestNextGroupSize(t *testing.T) {
	assert.Equal(t, 2, nextGroupSize(1))
	assert.Equal(t, 4, nextGroupSize(2))
	assert.Equal(t, 8, nextGroupSize(4))
	assert.Equal(t, 1, nextGroupSize(8))
}

func TestEncodeText(t *testing.T) {
	assert.Equal(t, []byte("CAN"), encodeText("CAN"))
	assert.Equal(t, []byte{0xE9}, encodeText("é"))
	assert.Equal(t, []byte{'?'}, encodeText("€"))
}

func TestFormatGrouped(t *testing.T) {
	assert.Equal(t, "1,234", formatGrouped(big.NewInt(1234)))
	assert.Equal(t, "-128", formatGrouped(big.NewInt(-128)))
}

func TestView_RendersWithoutPanic(t *testing.T) {
	m := New(config.Default(), nil)
	m.width = 100
	m.height = 30
	m.theme.SetSize(100, 30)

	assert.NotPanics(t, func() {
		out := m.View()
		assert.Contains(t, out, "hexspect")
	})

	m.showHelp = true
	assert.NotPanics(t, func() {
		out := m.View()
		assert.Contains(t, out, "Keyboard shortcuts")
	})
}

func TestHistoryKind(t *testing.T) {
	assert.Equal(t, "hex", ViewHex.historyKind())
	assert.Equal(t, "number", ViewNumber.historyKind())
	assert.Equal(t, "string", ViewString.historyKind())
}
