// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the console.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// PANES
	// ==========================================================================

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	Separator   lipgloss.Style

	// ==========================================================================
	// CHAT HEADER
	// ==========================================================================

	Header       lipgloss.Style
	HeaderAvatar lipgloss.Style
	HeaderName   lipgloss.Style
	HeaderShield lipgloss.Style
	StatusBadge  lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLES
	// ==========================================================================

	EmployeeBubble lipgloss.Style
	ClientBubble   lipgloss.Style
	EmployeeAvatar lipgloss.Style
	ClientAvatar   lipgloss.Style
	BubbleMeta     lipgloss.Style
	BubbleMetaOwn  lipgloss.Style
	FileBlock      lipgloss.Style
	FileBlockOwn   lipgloss.Style
	FileName       lipgloss.Style
	FileDetails    lipgloss.Style
	LockMarker     lipgloss.Style

	// ==========================================================================
	// COMPOSER
	// ==========================================================================

	Composer               lipgloss.Style
	TemplateButton         lipgloss.Style
	TemplateButtonSelected lipgloss.Style
	Chip                   lipgloss.Style
	ChipDetails            lipgloss.Style
	ActionMarker           lipgloss.Style
	ActionMarkerActive     lipgloss.Style
	Placeholder            lipgloss.Style

	// ==========================================================================
	// SIDEBAR
	// ==========================================================================

	SidebarTitle   lipgloss.Style
	ProfileAvatar  lipgloss.Style
	ProfileName    lipgloss.Style
	FieldLabel     lipgloss.Style
	FieldValue     lipgloss.Style
	Balance        lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	TxCard         lipgloss.Style
	TxType         lipgloss.Style
	TxDate         lipgloss.Style
	TxDebit        lipgloss.Style
	TxCredit       lipgloss.Style
	BadgeCompleted lipgloss.Style
	BadgePending   lipgloss.Style
	SaveButton     lipgloss.Style

	// ==========================================================================
	// OVERLAYS & FOOTER
	// ==========================================================================

	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	ErrorText    lipgloss.Style
	HelpBar      lipgloss.Style
}

// NewTheme creates a theme for the given mode: "dark", "light" or "auto".
// Anything else behaves like "auto".
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case "dark":
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Panes
	t.Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.PaneFocused = t.Pane.
		BorderForeground(Primary)

	t.Separator = lipgloss.NewStyle().
		Foreground(Overlay)

	// Header
	t.Header = lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.HeaderAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Primary).
		Padding(0, 1)

	t.HeaderName = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.HeaderShield = lipgloss.NewStyle().
		Foreground(Accent)

	t.StatusBadge = lipgloss.NewStyle().
		Foreground(Success).
		Background(SuccessDeep).
		Padding(0, 1)

	// Message bubbles
	t.EmployeeBubble = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(PrimaryDeep).
		Padding(0, 1)

	t.ClientBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.EmployeeAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Primary).
		Padding(0, 1)

	t.ClientAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 1)

	t.BubbleMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.BubbleMetaOwn = lipgloss.NewStyle().
		Foreground(TextInverse).
		Faint(true)

	t.FileBlock = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Overlay).
		PaddingLeft(1)

	t.FileBlockOwn = t.FileBlock.
		BorderForeground(Primary)

	t.FileName = lipgloss.NewStyle().
		Bold(true)

	t.FileDetails = lipgloss.NewStyle().
		Faint(true)

	t.LockMarker = lipgloss.NewStyle().
		Foreground(Accent)

	// Composer
	t.Composer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.TemplateButton = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1).
		MarginRight(1)

	t.TemplateButtonSelected = t.TemplateButton.
		Foreground(TextInverse).
		Background(Primary).
		Bold(true)

	t.Chip = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.ChipDetails = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ActionMarker = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.ActionMarkerActive = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Sidebar
	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	t.ProfileAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Primary).
		Padding(1, 3)

	t.ProfileName = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.FieldValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Balance = lipgloss.NewStyle().
		Bold(true).
		Foreground(Success)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Primary).
		Padding(0, 1)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(true).
		Padding(0, 1)

	t.TxCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.TxType = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TxDate = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.TxDebit = lipgloss.NewStyle().
		Bold(true).
		Foreground(Danger)

	t.TxCredit = lipgloss.NewStyle().
		Bold(true).
		Foreground(Success)

	t.BadgeCompleted = lipgloss.NewStyle().
		Foreground(Success).
		Background(SuccessDeep).
		Padding(0, 1)

	t.BadgePending = lipgloss.NewStyle().
		Foreground(Warning).
		Background(WarningDeep).
		Padding(0, 1)

	t.SaveButton = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Primary).
		Padding(0, 2)

	// Overlays
	t.Overlay = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	t.OverlayTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Danger).
		Bold(true)

	t.HelpBar = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// SidebarMinWidth is the narrowest terminal that still shows the sidebar.
const SidebarMinWidth = 90

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < SidebarMinWidth {
		return LayoutNarrow
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // chat only
	LayoutWide                     // chat + client sidebar
)
