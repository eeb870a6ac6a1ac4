// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/supportdesk-tui/internal/model"
	"github.com/jeranaias/supportdesk-tui/internal/ui/styles"
	"github.com/jeranaias/supportdesk-tui/internal/util"
)

// SecureChatLabel is shown under the client name.
const SecureChatLabel = "Защищённый чат"

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// ChatHeader is the bar above the conversation.
type ChatHeader struct {
	Profile model.ClientProfile
	Width   int
	theme   *styles.Theme
}

// NewChatHeader creates a header for the given client.
func NewChatHeader(profile model.ClientProfile, theme *styles.Theme) *ChatHeader {
	return &ChatHeader{
		Profile: profile,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the header width
func (h *ChatHeader) SetWidth(width int) {
	h.Width = width
}

// View renders the header: avatar and name block on the left, status badge
// on the right.
func (h *ChatHeader) View() string {
	width := h.Width
	if width < 30 {
		width = 30
	}
	inner := width - 2 // header padding

	avatar := h.theme.HeaderAvatar.Render(h.Profile.Initials())
	badge := h.theme.StatusBadge.Render(h.Profile.Status)

	nameWidth := inner - lipgloss.Width(avatar) - lipgloss.Width(badge) - 2
	name := h.theme.HeaderName.Render(util.FitWidth(h.Profile.Name, nameWidth))
	shield := h.theme.HeaderShield.Render(util.FitWidth(styles.Markers.Shield+" "+SecureChatLabel, nameWidth))
	info := lipgloss.JoinVertical(lipgloss.Left, name, shield)

	left := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", info)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), badge)

	return h.theme.Header.Width(width).Render(row)
}
