// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inspect provides the interactive inspector view for the hexspect TUI.
//
// This file contains the asynchronous commands: clipboard writes and
// history records both happen off the update loop so a slow clipboard
// daemon or database never blocks a keystroke.
package inspect

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hexspect/internal/config"
	"github.com/jeranaias/hexspect/internal/history"
)

// =============================================================================
// MESSAGES
// =============================================================================

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	err error
}

// recordedMsg reports the outcome of a history record.
type recordedMsg struct {
	err error
}

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// ConfigReloadedMsg announces that the configuration file changed on
// disk. The inspector re-seeds its settings from the new values.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// copyCmd writes text to the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// recordCmd appends the current conversion to the history store.
func recordCmd(store *history.Store, entry *history.Entry) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return recordedMsg{err: history.ErrClosed}
		}
		return recordedMsg{err: store.Record(context.Background(), entry)}
	}
}

// clearStatusCmd clears the status line after a short delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
