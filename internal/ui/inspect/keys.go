// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inspect provides the interactive inspector view for the hexspect TUI.
//
// This file defines keyboard bindings for the inspector. Everything is a
// control chord or function key because printable characters belong to
// the focused text input.
package inspect

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the inspector.
type KeyMap struct {
	NextView    key.Binding
	PrevView    key.Binding
	Endian      key.Binding
	GroupSize   key.Binding
	Width       key.Binding
	Repr        key.Binding
	Copy        key.Binding
	Record      key.Binding
	ClearInput  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings for the inspector.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous view"),
		),
		Endian: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "toggle endianness"),
		),
		GroupSize: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "cycle group size"),
		),
		Width: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "cycle byte width"),
		),
		Repr: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "cycle representation"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy bytes"),
		),
		Record: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "save to history"),
		),
		ClearInput: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "clear input"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+_"),
			key.WithHelp("F1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q", "esc"),
			key.WithHelp("Esc/C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Endian, k.Repr, k.Copy, k.Help, k.Quit}
}

// FullHelp returns the bindings for the help overlay, grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Views
		{k.NextView, k.PrevView},
		// Settings
		{k.Endian, k.GroupSize, k.Width, k.Repr},
		// Actions
		{k.Copy, k.Record, k.ClearInput},
		// Meta
		{k.Help, k.Quit},
	}
}
