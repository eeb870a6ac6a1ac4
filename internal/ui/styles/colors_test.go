// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColors_HexPairs(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{
		"Primary":       Primary,
		"PrimaryDeep":   PrimaryDeep,
		"Accent":        Accent,
		"Success":       Success,
		"SuccessDeep":   SuccessDeep,
		"Warning":       Warning,
		"WarningDeep":   WarningDeep,
		"Danger":        Danger,
		"Surface":       Surface,
		"SurfaceDim":    SurfaceDim,
		"Overlay":       Overlay,
		"TextPrimary":   TextPrimary,
		"TextSecondary": TextSecondary,
		"TextMuted":     TextMuted,
		"TextInverse":   TextInverse,
	}

	for name, c := range colors {
		assert.True(t, strings.HasPrefix(c.Light, "#") && len(c.Light) == 7, "%s light = %q", name, c.Light)
		assert.True(t, strings.HasPrefix(c.Dark, "#") && len(c.Dark) == 7, "%s dark = %q", name, c.Dark)
	}
}

func TestMarkers_AreASCII(t *testing.T) {
	for _, m := range []string{
		Markers.Shield, Markers.Lock, Markers.Download, Markers.File,
		Markers.Attach, Markers.Send, Markers.Remove,
	} {
		assert.NotEmpty(t, m)
		for _, r := range m {
			assert.Less(t, r, rune(128), "marker %q", m)
		}
	}
}
