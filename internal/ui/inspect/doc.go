// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inspect provides the interactive inspector view for the hexspect TUI.
//
// The inspector has three input views - HEX, NUMBER, and STRING - sharing
// one conversion pane. Every keystroke recomputes the readings live:
// grouped hex under the active endianness, unsigned and signed values,
// binary, and printable ASCII. Settings (endianness, group size, width,
// representation) cycle with keyboard shortcuts and apply to all views.
//
// # Key Types
//
//   - Model: The Bubble Tea model for the inspector
//   - KeyMap: Keyboard bindings with built-in help text
//
// # Usage
//
//	m := inspect.New(cfg, store)
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package inspect
