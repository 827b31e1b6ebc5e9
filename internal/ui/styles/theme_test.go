// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTheme_Dimensions(t *testing.T) {
	theme := NewTheme(120, 40)
	assert.Equal(t, 120, theme.Width)
	assert.Equal(t, 40, theme.Height)
}

func TestTheme_SetSize(t *testing.T) {
	theme := NewTheme(80, 24)
	theme.SetSize(100, 30)
	assert.Equal(t, 100, theme.Width)
	assert.Equal(t, 30, theme.Height)
}

func TestTheme_ContentWidth(t *testing.T) {
	theme := NewTheme(80, 24)
	assert.Equal(t, 76, theme.ContentWidth())

	// Never collapses below a usable minimum.
	theme.SetSize(10, 24)
	assert.Equal(t, 20, theme.ContentWidth())
}

func TestTheme_StylesRender(t *testing.T) {
	theme := NewTheme(80, 24)

	// Styles must render without panicking regardless of profile.
	assert.NotPanics(t, func() {
		theme.HeaderTitle.Render("hexspect")
		theme.TabActive.Render("HEX")
		theme.Label.Render("Bytes")
		theme.Highlight.Render("E8 08")
		theme.ErrorText.Render("bad token")
		theme.StatusBar.Render("little | twos | w4")
	})
}

func TestTheme_LabelWidth(t *testing.T) {
	theme := NewTheme(80, 24)
	assert.Equal(t, 16, theme.Label.GetWidth())
}
