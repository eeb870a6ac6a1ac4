// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the console.
type KeyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Back       key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	Attach     key.Binding
	RemoveFile key.Binding
	Template   key.Binding
	SaveNotes  key.Binding
	SwitchTab  key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	// Composer
	Send key.Binding

	// Template bar
	TemplatePrev key.Binding
	TemplateNext key.Binding
	TemplatePick key.Binding

	// Sidebar
	TabPrev key.Binding
	TabNext key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c/C-q", "выход"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "справка"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "назад"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "следующая панель"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "предыдущая панель"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "прикрепить файл"),
		),
		RemoveFile: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "убрать файл"),
		),
		Template: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("M-1..9", "шаблон ответа"),
		),
		SaveNotes: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "сохранить заметки"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "операции/заметки"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "прокрутка вверх"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "прокрутка вниз"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "отправить"),
		),
		TemplatePrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "предыдущий шаблон"),
		),
		TemplateNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "следующий шаблон"),
		),
		TemplatePick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "вставить шаблон"),
		),
		TabPrev: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "предыдущая вкладка"),
		),
		TabNext: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "следующая вкладка"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings shown in the footer by default.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Attach, k.Template, k.NextFocus, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Composer
		{k.Send, k.Attach, k.RemoveFile, k.Template},
		// Navigation
		{k.NextFocus, k.PrevFocus, k.Back, k.PageUp, k.PageDown},
		// Template bar
		{k.TemplatePrev, k.TemplateNext, k.TemplatePick},
		// Sidebar
		{k.TabPrev, k.TabNext, k.SwitchTab, k.SaveNotes},
		// Application
		{k.Help, k.Quit},
	}
}

// templateIndex returns the zero-based template index of an Alt+digit key.
func templateIndex(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
