// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the hexspect TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the inspector.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER AND VIEW TABS
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style

	// ==========================================================================
	// INPUT AREA
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// ==========================================================================
	// RESULT CARD
	// ==========================================================================

	Card      lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Highlight lipgloss.Style
	Signed    lipgloss.Style
	Muted     lipgloss.Style
	ErrorText lipgloss.Style
	Warning   lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND HELP
	// ==========================================================================

	StatusBar    lipgloss.Style
	Setting      lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	HelpOverlay  lipgloss.Style
}

// NewTheme creates a theme sized for the given terminal dimensions.
func NewTheme(width, height int) *Theme {
	t := &Theme{
		IsDark:       lipgloss.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),
		Width:        width,
		Height:       height,
	}

	t.Header = lipgloss.NewStyle().
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.Tab = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(TextMuted)

	t.TabActive = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(TextInverse).
		Background(Cyan)

	t.InputContainer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(16)

	t.Value = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Highlight = lipgloss.NewStyle().
		Foreground(Emerald)

	t.Signed = lipgloss.NewStyle().
		Foreground(Purple)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose)

	t.Warning = lipgloss.NewStyle().
		Foreground(Amber)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.Setting = lipgloss.NewStyle().
		Foreground(Cyan)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.HelpOverlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 2)

	return t
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// ContentWidth returns the usable width inside the bordered cards.
func (t *Theme) ContentWidth() int {
	w := t.Width - 4
	if w < 20 {
		w = 20
	}
	return w
}
