// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inspect provides the interactive inspector view for the hexspect TUI.
package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	sections := []string{
		m.renderHeader(),
		m.renderInput(),
		m.renderCard(),
		m.renderStatusBar(),
	}
	return strings.Join(sections, "\n")
}

// renderHeader renders the title, view tabs, and active settings.
func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("hexspect")

	var tabs []string
	for v := ViewHex; v <= ViewString; v++ {
		if v == m.view {
			tabs = append(tabs, m.theme.TabActive.Render(v.String()))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(v.String()))
		}
	}

	settings := m.theme.Setting.Render(fmt.Sprintf("%s | %s | g%d | w%d",
		m.endian, m.mode, m.groupSize, m.numWidth))

	left := title + "  " + strings.Join(tabs, "")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(settings) - 2
	if gap < 1 {
		gap = 1
	}
	return m.theme.Header.Render(left + strings.Repeat(" ", gap) + settings)
}

// renderInput renders the focused input view.
func (m Model) renderInput() string {
	prompt := m.theme.InputPrompt.Render(strings.ToLower(m.view.String()) + "> ")
	return m.theme.InputContainer.
		Width(m.theme.ContentWidth()).
		Render(prompt + m.inputs[m.view].View())
}

// renderCard renders the conversion readings or the current error.
func (m Model) renderCard() string {
	card := m.theme.Card.Width(m.theme.ContentWidth())

	if m.err != nil {
		return card.Render(m.theme.ErrorText.Render(m.err.Error()))
	}
	if m.result == nil {
		return card.Render(m.theme.Muted.Render("type something to inspect"))
	}

	var b strings.Builder
	row := func(label string, value string) {
		b.WriteString(m.theme.Label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	r := m.result
	row("Bytes", m.theme.Value.Render(r.bytesHex))
	row("Length", m.theme.Value.Render(fmt.Sprintf("%d byte(s)", len(r.data))))
	row("Binary", m.theme.Muted.Render(r.binary))

	if len(r.groups) > 0 {
		row(fmt.Sprintf("Groups (%s)", m.endian), m.theme.Highlight.Render(strings.Join(r.groups, "  ")))
	}
	if r.unsigned != nil {
		row("Unsigned", m.theme.Value.Render(joinUints(r.unsigned)))
		row("Signed 2's", m.theme.Signed.Render(joinInts(r.signed)))
	}
	if r.onesWhole != "" {
		row("1's (whole)", m.theme.Signed.Render(r.onesWhole))
		row("S/M (whole)", m.theme.Signed.Render(r.signMagWhole))
	}

	row("ASCII", m.theme.Value.Render(r.ascii))
	row("Runs", m.theme.Muted.Render(strings.Join(r.runs, " ")))

	if r.value != "" {
		row("Value", m.theme.Highlight.Render(r.value))
		row("Scalar hex", m.theme.Value.Render(r.scalarHex))
		row("Range", m.theme.Muted.Render(r.rangeLabel))
	}

	return card.Render(strings.TrimRight(b.String(), "\n"))
}

// renderStatusBar renders the transient status or the shortcut summary.
func (m Model) renderStatusBar() string {
	bar := m.theme.StatusBar.Width(m.width)

	if m.statusMsg != "" {
		return bar.Render(m.statusMsg)
	}

	var parts []string
	for _, binding := range m.keyMap.ShortHelp() {
		h := binding.Help()
		parts = append(parts,
			m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	return bar.Render(strings.Join(parts, "  "))
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")

	groups := []string{"Views", "Settings", "Actions", "Meta"}
	for i, bindings := range m.keyMap.FullHelp() {
		b.WriteString(m.theme.Setting.Render(groups[i]))
		b.WriteString("\n")
		for _, binding := range bindings {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.theme.ShortcutKey.Copy().Width(8).Render(h.Key),
				m.theme.ShortcutDesc.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Muted.Render("press F1 or Esc to close"))

	return m.theme.HelpOverlay.Render(b.String())
}

func joinUints(vals []uint64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "  ")
}

func joinInts(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "  ")
}
