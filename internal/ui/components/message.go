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

// EmptyThreadText is shown when the thread has no messages.
const EmptyThreadText = "Сообщений пока нет"

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one message with its avatar. Employee messages sit
// on the right, client messages on the left.
type MessageBubble struct {
	Message model.Message
	Width   int
	theme   *styles.Theme
}

// NewMessageBubble creates a new MessageBubble
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message: msg,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth sets the bubble width
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// maxContentWidth is the widest text line inside a bubble: about 70% of the
// pane, minus avatar and padding.
func (b *MessageBubble) maxContentWidth() int {
	w := b.Width*7/10 - 2
	if w < 16 {
		w = 16
	}
	return w
}

// View renders the message bubble
func (b *MessageBubble) View() string {
	own := b.Message.IsFromEmployee()
	maxWidth := b.maxContentWidth()

	var parts []string
	if b.Message.Text != "" {
		parts = append(parts, wordWrap(b.Message.Text, maxWidth))
	}
	if b.Message.File != nil {
		parts = append(parts, b.renderFile(maxWidth))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	bubbleStyle := b.theme.ClientBubble
	avatarStyle := b.theme.ClientAvatar
	if own {
		bubbleStyle = b.theme.EmployeeBubble
		avatarStyle = b.theme.EmployeeAvatar
	}

	bubble := bubbleStyle.Render(body)
	meta := b.renderMeta()
	avatar := avatarStyle.Render(b.Message.Sender.Avatar())

	if own {
		column := lipgloss.JoinVertical(lipgloss.Right, bubble, meta)
		row := lipgloss.JoinHorizontal(lipgloss.Top, column, " ", avatar)
		return lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, row)
	}
	column := lipgloss.JoinVertical(lipgloss.Left, bubble, meta)
	return lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", column)
}

// renderFile draws the attachment block: icon and name, then type, size and
// the download marker.
func (b *MessageBubble) renderFile(maxWidth int) string {
	f := b.Message.File
	blockStyle := b.theme.FileBlock
	if b.Message.IsFromEmployee() {
		blockStyle = b.theme.FileBlockOwn
	}

	nameWidth := maxWidth - util.StringWidth(styles.Markers.File) - 3
	name := styles.Markers.File + " " + b.theme.FileName.Render(util.FitWidth(f.Name, nameWidth))
	details := b.theme.FileDetails.Render(f.Type+" · "+f.Size) + "  " + styles.Markers.Download

	// A blank line separates the file block from the text above it.
	block := blockStyle.Render(lipgloss.JoinVertical(lipgloss.Left, name, details))
	if b.Message.Text == "" {
		return block
	}
	return "\n" + block
}

// renderMeta draws the line under the bubble: lock marker when the message
// is encrypted, then the time.
func (b *MessageBubble) renderMeta() string {
	meta := b.theme.BubbleMeta.Render(b.Message.Time)
	if b.Message.IsEncrypted {
		meta = b.theme.LockMarker.Render(styles.Markers.Lock) + " " + meta
	}
	return meta
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// wordWrap wraps text to fit within width terminal columns. Words longer
// than the width are split.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for lineIdx, line := range lines {
		if lineIdx > 0 {
			result.WriteString("\n")
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		current := ""
		for _, word := range words {
			for util.StringWidth(word) > width {
				if current != "" {
					result.WriteString(current)
					result.WriteString("\n")
					current = ""
				}
				head := splitAtWidth(word, width)
				result.WriteString(head)
				result.WriteString("\n")
				word = word[len(head):]
			}
			switch {
			case current == "":
				current = word
			case util.StringWidth(current)+1+util.StringWidth(word) <= width:
				current += " " + word
			default:
				result.WriteString(current)
				result.WriteString("\n")
				current = word
			}
		}
		result.WriteString(current)
	}

	return result.String()
}

// splitAtWidth returns the longest prefix of s that fits in width columns.
// At least one rune is returned so wrapping always makes progress.
func splitAtWidth(s string, width int) string {
	used := 0
	for i, r := range s {
		w := util.StringWidth(string(r))
		if used+w > width && i > 0 {
			return s[:i]
		}
		used += w
	}
	return s
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// MessageList renders the whole thread.
type MessageList struct {
	Messages []model.Message
	Width    int
	theme    *styles.Theme
}

// NewMessageList creates a new MessageList
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		Width: 80,
		theme: theme,
	}
}

// SetMessages sets the messages to display
func (ml *MessageList) SetMessages(messages []model.Message) {
	ml.Messages = messages
}

// SetWidth sets the list width
func (ml *MessageList) SetWidth(width int) {
	ml.Width = width
}

// View renders all messages, one blank line apart.
func (ml *MessageList) View() string {
	if len(ml.Messages) == 0 {
		return ml.theme.Placeholder.
			Width(ml.Width).
			Align(lipgloss.Center).
			Padding(1, 0).
			Render(EmptyThreadText)
	}

	bubbles := make([]string, 0, len(ml.Messages))
	for _, msg := range ml.Messages {
		bubble := NewMessageBubble(msg, ml.theme)
		bubble.SetWidth(ml.Width)
		bubbles = append(bubbles, bubble.View())
	}
	return strings.Join(bubbles, "\n\n")
}
