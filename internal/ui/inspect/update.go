// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inspect provides the interactive inspector view for the hexspect TUI.
package inspect

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hexspect/internal/hexconv"
	"github.com/jeranaias/hexspect/internal/history"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		for i := range m.inputs {
			m.inputs[i].Width = m.theme.ContentWidth() - 4
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case copiedMsg:
		if msg.err != nil {
			m.statusMsg = "clipboard unavailable"
		} else {
			m.statusMsg = "copied"
		}
		return m, clearStatusCmd()

	case recordedMsg:
		if msg.err != nil {
			m.statusMsg = "history unavailable"
		} else {
			m.statusMsg = "saved to history"
		}
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		m.recompute()
		m.statusMsg = "config reloaded"
		return m, clearStatusCmd()
	}

	return m.updateInput(msg)
}

// handleKey processes a keypress.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The help overlay swallows everything except help/quit.
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keyMap.Help), key.Matches(msg, m.keyMap.Quit):
			m.showHelp = false
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.NextView):
		return m.switchView((m.view + 1) % 3), nil

	case key.Matches(msg, m.keyMap.PrevView):
		return m.switchView((m.view + 2) % 3), nil

	case key.Matches(msg, m.keyMap.Endian):
		if m.endian == hexconv.Big {
			m.endian = hexconv.Little
		} else {
			m.endian = hexconv.Big
		}
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keyMap.GroupSize):
		m.groupSize = nextGroupSize(m.groupSize)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keyMap.Width):
		m.numWidth++
		if m.numWidth > hexconv.MaxBytes {
			m.numWidth = 1
		}
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keyMap.Repr):
		modes := hexconv.Modes()
		m.mode = modes[(int(m.mode)+1)%len(modes)]
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keyMap.Copy):
		if m.result != nil {
			return m, copyCmd(m.result.bytesHex)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Record):
		return m.recordCurrent()

	case key.Matches(msg, m.keyMap.ClearInput):
		m.inputs[m.view].Reset()
		m.recompute()
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards a message to the focused text input and
// recomputes the readings.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.view], cmd = m.inputs[m.view].Update(msg)
	m.recompute()
	return m, cmd
}

// switchView moves focus to another input view.
func (m Model) switchView(v View) Model {
	m.inputs[m.view].Blur()
	m.view = v
	m.inputs[m.view].Focus()
	m.recompute()
	return m
}

// recordCurrent saves the current conversion to history.
func (m Model) recordCurrent() (tea.Model, tea.Cmd) {
	if m.result == nil || m.store == nil {
		return m, nil
	}

	entry := &history.Entry{
		Kind:   m.view.historyKind(),
		Input:  m.currentInput(),
		Bytes:  m.result.bytesHex,
		Endian: m.endian.String(),
		Mode:   m.mode.Flag(),
		Width:  m.numWidth,
	}
	return m, recordCmd(m.store, entry)
}

// nextGroupSize cycles through the uniform group sizes.
func nextGroupSize(n int) int {
	switch n {
	case 1:
		return 2
	case 2:
		return 4
	case 4:
		return 8
	default:
		return 1
	}
}
