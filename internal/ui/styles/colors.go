// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Primary - employee messages, focus rings, send action
var Primary = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// PrimaryDeep - background for employee bubbles
var PrimaryDeep = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#1E3A8A"}

// Accent - secure chat shield, lock marker
var Accent = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Success - completed operations, credits
var Success = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#34D399"}

// SuccessDeep - completed badge background
var SuccessDeep = lipgloss.AdaptiveColor{Light: "#DCFCE7", Dark: "#064E3B"}

// Warning - operations in processing
var Warning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

// WarningDeep - processing badge background
var WarningDeep = lipgloss.AdaptiveColor{Light: "#FEF3C7", Dark: "#78350F"}

// Danger - debits, errors
var Danger = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FB7185"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - client bubbles, cards, chips
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#313244"}

// Overlay - borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#45475A"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#A6ADC8"}

// TextMuted - timestamps, placeholders, hints
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - text on Primary backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#F8FAFC"}

// =============================================================================
// MARKERS
// =============================================================================

// MarkerSet holds the glyphs standing in for the icons of the chat screen.
// ASCII only, so every terminal font renders them.
type MarkerSet struct {
	Shield   string // secure chat label
	Lock     string // encrypted message
	Download string // file block action
	File     string // file block icon
	Attach   string // composer attach button
	Send     string // composer send button
	Remove   string // chip remove button
}

// Markers is the marker set used by the components.
var Markers = MarkerSet{
	Shield:   "[#]",
	Lock:     "[*]",
	Download: "[v]",
	File:     "[=]",
	Attach:   "[+]",
	Send:     "[>]",
	Remove:   "[x]",
}
