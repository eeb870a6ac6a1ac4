// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/supportdesk-tui/internal/ui/styles"
	"github.com/jeranaias/supportdesk-tui/internal/util"
)

// TemplateLabelRunes is how much of a template its button shows.
const TemplateLabelRunes = 30

// TemplateLabel is the button text for a quick-reply template: its first
// 30 characters followed by "...". The dots are always added.
func TemplateLabel(template string) string {
	return util.FirstRunes(template, TemplateLabelRunes) + "..."
}

// =============================================================================
// TEMPLATE BAR
// =============================================================================

// TemplateBar is the row of quick-reply buttons above the input line.
// When the buttons do not fit, the row scrolls to keep Selected visible.
type TemplateBar struct {
	Templates []string
	Selected  int
	Focused   bool
	Width     int
	theme     *styles.Theme
}

// NewTemplateBar creates a template bar.
func NewTemplateBar(templates []string, theme *styles.Theme) *TemplateBar {
	return &TemplateBar{
		Templates: templates,
		Width:     80,
		theme:     theme,
	}
}

// SetWidth sets the bar width
func (tb *TemplateBar) SetWidth(width int) {
	tb.Width = width
}

// Move shifts the selection by delta, wrapping around.
func (tb *TemplateBar) Move(delta int) {
	n := len(tb.Templates)
	if n == 0 {
		return
	}
	tb.Selected = ((tb.Selected+delta)%n + n) % n
}

func (tb *TemplateBar) button(i int) string {
	label := strconv.Itoa(i+1) + " " + TemplateLabel(tb.Templates[i])
	if tb.Focused && i == tb.Selected {
		return tb.theme.TemplateButtonSelected.Render(label)
	}
	return tb.theme.TemplateButton.Render(label)
}

const (
	scrollLess = "< "
	scrollMore = " >"
)

// fits reports whether buttons start..last all fit with their scroll markers.
func (tb *TemplateBar) fits(buttons []string, start, last int) bool {
	need := 0
	if start > 0 {
		need += len(scrollLess)
	}
	for i := start; i <= last; i++ {
		need += lipgloss.Width(buttons[i])
	}
	if last < len(buttons)-1 {
		need += len(scrollMore)
	}
	return need <= tb.Width
}

// View renders the visible buttons.
func (tb *TemplateBar) View() string {
	if len(tb.Templates) == 0 {
		return ""
	}

	buttons := make([]string, len(tb.Templates))
	for i := range tb.Templates {
		buttons[i] = tb.button(i)
	}

	selected := tb.Selected
	if selected < 0 || selected >= len(buttons) {
		selected = 0
	}
	start := 0
	for start < selected && !tb.fits(buttons, start, selected) {
		start++
	}
	end := start + 1
	for end < len(buttons) && tb.fits(buttons, start, end) {
		end++
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(tb.theme.BubbleMeta.Render(scrollLess))
	}
	b.WriteString(strings.Join(buttons[start:end], ""))
	if end < len(buttons) {
		b.WriteString(tb.theme.BubbleMeta.Render(scrollMore))
	}
	return b.String()
}

// =============================================================================
// ATTACHMENT CHIP
// =============================================================================

// AttachmentChip shows the file picked for the next message.
type AttachmentChip struct {
	Name  string
	Size  string
	Width int
	theme *styles.Theme
}

// NewAttachmentChip creates a chip for a picked file.
func NewAttachmentChip(name, size string, theme *styles.Theme) *AttachmentChip {
	return &AttachmentChip{Name: name, Size: size, Width: 80, theme: theme}
}

// View renders the chip: file marker, name, size and the remove marker.
func (c *AttachmentChip) View() string {
	size := c.theme.ChipDetails.Render(c.Size)
	remove := c.theme.ActionMarker.Render(styles.Markers.Remove)
	fixed := lipgloss.Width(styles.Markers.File) + lipgloss.Width(size) + lipgloss.Width(remove) + 6
	name := c.theme.FileName.Render(util.FitWidth(c.Name, c.Width-fixed))

	return c.theme.Chip.Render(styles.Markers.File + " " + name + "  " + size + "  " + remove)
}

// =============================================================================
// INPUT LINE
// =============================================================================

// InputLine lays out the attach marker, the text input and the send marker.
// The send marker is highlighted while sending would do something.
func InputLine(theme *styles.Theme, input string, canSend bool) string {
	send := theme.ActionMarker.Render(styles.Markers.Send)
	if canSend {
		send = theme.ActionMarkerActive.Render(styles.Markers.Send)
	}
	attach := theme.ActionMarker.Render(styles.Markers.Attach)
	return lipgloss.JoinHorizontal(lipgloss.Center, attach, " ", input, " ", send)
}
