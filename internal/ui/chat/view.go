// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/supportdesk-tui/internal/ui/components"
)

// Overlay copy.
const (
	PickerTitle = "Прикрепить файл"
	PickerHint  = "Enter выбрать · Esc отмена"
)

// View renders the model.
func (m Model) View() string {
	switch m.overlay {
	case OverlayPicker:
		return m.renderPicker()
	case OverlayHelp:
		return m.renderHelpOverlay()
	}

	chat := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.viewport.View(),
		m.renderComposer(),
	)

	body := chat
	if m.sidebarVisible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, chat, m.renderSidebar())
	}
	if m.opts.ShowHelpBar {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelpBar())
	}
	return body
}

// =============================================================================
// COMPOSER
// =============================================================================

// renderComposer draws the template bar, the chip for a selected file and
// the input line.
func (m Model) renderComposer() string {
	lines := []string{m.templates.View()}

	if f, ok := m.console.Selected(); ok {
		chip := components.NewAttachmentChip(f.Name, f.SizeLabel(), m.theme)
		chip.Width = m.chatWidth - 2
		lines = append(lines, chip.View())
	}

	lines = append(lines, components.InputLine(m.theme, m.input.View(), m.console.CanSend()))

	return m.theme.Composer.Width(m.chatWidth).Render(strings.Join(lines, "\n"))
}

// =============================================================================
// SIDEBAR
// =============================================================================

func (m Model) renderSidebar() string {
	inner := m.sidebarWidth - 4
	height := m.height - m.helpBarHeight() - 2

	var tabBody string
	if m.tab == components.TabTransactions {
		tabBody = m.operations.View()
	} else {
		tabBody = lipgloss.JoinVertical(lipgloss.Left,
			m.notes.View(),
			components.SaveNotesButton(m.theme, inner, m.focus == FocusSidebar),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.profile.View(),
		"",
		components.Tabs(m.theme, m.tab, inner),
		tabBody,
	)

	pane := m.theme.Pane
	if m.focus == FocusSidebar {
		pane = m.theme.PaneFocused
	}
	return pane.
		Width(m.sidebarWidth-2).
		Height(height).
		MaxHeight(height+2).
		Padding(0, 1).
		Render(lipgloss.NewStyle().MaxHeight(height).Render(content))
}

// =============================================================================
// FOOTER
// =============================================================================

// shortHelp returns the key hints for the focused pane.
func (m Model) shortHelp() []key.Binding {
	k := m.keyMap
	switch m.focus {
	case FocusTemplates:
		return []key.Binding{k.TemplatePrev, k.TemplateNext, k.TemplatePick, k.Back, k.Help}
	case FocusSidebar:
		if m.tab == components.TabNotes {
			return []key.Binding{k.SaveNotes, k.SwitchTab, k.Back, k.Help}
		}
		return []key.Binding{k.TabPrev, k.TabNext, k.Back, k.Help}
	default:
		bindings := []key.Binding{k.Send, k.Attach}
		if _, ok := m.console.Selected(); ok {
			bindings = append(bindings, k.RemoveFile)
		}
		return append(bindings, k.Template, k.NextFocus, k.Help, k.Quit)
	}
}

func (m Model) renderHelpBar() string {
	m.help.Width = m.width - 2
	return m.theme.HelpBar.Render(m.help.ShortHelpView(m.shortHelp()))
}

// =============================================================================
// OVERLAYS
// =============================================================================

func (m Model) renderPicker() string {
	footer := m.theme.BubbleMeta.Render(PickerHint + " · " + strings.Join(m.opts.AllowedExtensions, " "))
	if m.pickerErr != "" {
		footer = m.theme.ErrorText.Render(m.pickerErr)
	}

	box := m.theme.Overlay.
		Width(min(m.width-4, 90)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			m.theme.OverlayTitle.Render(PickerTitle),
			m.theme.FieldLabel.Render(m.picker.CurrentDirectory),
			m.picker.View(),
			footer,
		))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderHelpOverlay() string {
	box := m.theme.Overlay.Render(m.helpView.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
