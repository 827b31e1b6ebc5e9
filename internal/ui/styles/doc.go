// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the hexspect TUI.
//
// # Key Types
//
//   - Theme: All styled components for the inspector, sized to the terminal
//
// # Key Functions
//
//   - NewTheme: Build a theme with adaptive light/dark colors
//
// # Usage
//
//	theme := styles.NewTheme(width, height)
//	fmt.Print(theme.HeaderTitle.Render("hexspect"))
//
// Colors are lipgloss.AdaptiveColor values, so the same theme renders
// correctly on light and dark terminals without configuration.
package styles
