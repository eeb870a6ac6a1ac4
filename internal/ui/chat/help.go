// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/jeranaias/supportdesk-tui/internal/ui/styles"
)

// helpGroupTitles name the groups of KeyMap.FullHelp, in order.
var helpGroupTitles = []string{
	"Сообщение",
	"Навигация",
	"Шаблоны",
	"Профиль клиента",
	"Приложение",
}

// HelpMarkdown builds the key reference shown by the help overlay.
func HelpMarkdown(k KeyMap) string {
	var b strings.Builder
	b.WriteString("# Горячие клавиши\n")
	for i, group := range k.FullHelp() {
		title := ""
		if i < len(helpGroupTitles) {
			title = helpGroupTitles[i]
		}
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		b.WriteString("| Клавиши | Действие |\n|---|---|\n")
		for _, binding := range group {
			writeHelpRow(&b, binding)
		}
	}
	b.WriteString("\nEsc или F1 закрывают справку.\n")
	return b.String()
}

func writeHelpRow(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	if h.Key == "" {
		return
	}
	fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
}

// glamourStyle picks a glamour standard style matching the theme.
func glamourStyle(theme *styles.Theme) string {
	switch {
	case theme.ColorProfile == termenv.Ascii:
		return "notty"
	case theme.IsDark:
		return "dark"
	default:
		return "light"
	}
}

// renderHelp renders the key reference at the given wrap width. On a
// renderer error the raw markdown is returned.
func renderHelp(theme *styles.Theme, k KeyMap, width int) string {
	md := HelpMarkdown(k)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
