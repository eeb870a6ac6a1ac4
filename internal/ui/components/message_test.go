// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/supportdesk-tui/internal/model"
	"github.com/jeranaias/supportdesk-tui/internal/ui/styles"
	"github.com/jeranaias/supportdesk-tui/internal/util"
)

// =============================================================================
// BUBBLE TESTS
// =============================================================================

func TestMessageBubble_ClientOnLeft(t *testing.T) {
	msg := model.Message{ID: 1, Text: "Добрый день!", Sender: model.SenderClient, Time: "14:23", IsEncrypted: true}
	b := NewMessageBubble(msg, testTheme())
	b.SetWidth(80)

	view := b.View()
	first := strings.Split(view, "\n")[0]
	assert.True(t, strings.HasPrefix(first, " К "), "client avatar starts the row: %q", first)
	assert.Contains(t, view, "Добрый день!")
	assert.Contains(t, view, styles.Markers.Lock+" 14:23")
}

func TestMessageBubble_EmployeeOnRight(t *testing.T) {
	msg := model.Message{ID: 2, Text: "Здравствуйте!", Sender: model.SenderEmployee, Time: "14:24"}
	b := NewMessageBubble(msg, testTheme())
	b.SetWidth(80)

	view := b.View()
	first := strings.Split(view, "\n")[0]
	assert.True(t, strings.HasPrefix(first, "    "), "employee bubble is pushed right: %q", first)
	assert.True(t, strings.HasSuffix(strings.TrimRight(first, " "), "С"), "employee avatar ends the row: %q", first)
	assert.Contains(t, view, "14:24")
	assert.NotContains(t, view, styles.Markers.Lock, "plain messages have no lock marker")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestMessageBubble_File(t *testing.T) {
	att := model.NewAttachment("contract.pdf", 12595, "application/pdf")
	msg := model.Message{
		ID:          4,
		Text:        model.FallbackFileText,
		Sender:      model.SenderEmployee,
		Time:        "09:05",
		IsEncrypted: true,
		File:        &att,
	}
	view := NewMessageBubble(msg, testTheme()).View()

	assert.Contains(t, view, "contract.pdf")
	assert.Contains(t, view, "PDF · 12.3 KB")
	assert.Contains(t, view, styles.Markers.Download)
	assert.Contains(t, view, model.FallbackFileText)
}

// =============================================================================
// WRAP TESTS
// =============================================================================

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "short text", 20, "short text"},
		{"wraps words", "один два три", 8, "один два\nтри"},
		{"keeps newlines", "a\nb", 10, "a\nb"},
		{"splits long word", "abcdefghij", 4, "abcd\nefgh\nij"},
		{"zero width", "as is", 0, "as is"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wordWrap(tt.text, tt.width))
		})
	}
}

func TestWordWrap_WidthRespected(t *testing.T) {
	text := model.DefaultSeed().Templates[2]
	for _, line := range strings.Split(wordWrap(text, 12), "\n") {
		assert.LessOrEqual(t, util.StringWidth(line), 12, line)
	}
}

// =============================================================================
// LIST TESTS
// =============================================================================

func TestMessageList_View(t *testing.T) {
	ml := NewMessageList(testTheme())
	ml.SetWidth(90)
	ml.SetMessages(model.DefaultSeed().Messages)

	view := ml.View()
	require.NotEmpty(t, view)
	first := strings.Index(view, "Добрый день!")
	second := strings.Index(view, "Здравствуйте!")
	third := strings.Index(view, "досрочное погашение")
	assert.True(t, first >= 0 && first < second && second < third, "messages render in order")
}

func TestMessageList_Empty(t *testing.T) {
	ml := NewMessageList(testTheme())
	assert.Contains(t, ml.View(), EmptyThreadText)
}
