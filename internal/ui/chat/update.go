// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/supportdesk-tui/internal/ui/components"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if m.opts.Session != nil {
			m.opts.Session.RecordActivity()
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlay == OverlayNone {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Directory listings and other internal picker messages.
	if m.overlay == OverlayPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	// Cursor blink and similar widget messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.notes, cmd = m.notes.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.relayout()
	if !m.sidebarVisible && m.focus == FocusSidebar {
		m.setFocus(FocusComposer)
	}
	if m.overlay == OverlayHelp {
		m.helpView.SetContent(renderHelp(m.theme, m.keyMap, m.helpView.Width))
	}
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	switch m.overlay {
	case OverlayPicker:
		return m.handlePickerKey(msg)
	case OverlayHelp:
		return m.handleHelpKey(msg)
	}

	// Global shortcuts
	switch {
	case key.Matches(msg, m.keyMap.Help):
		m.overlay = OverlayHelp
		m.helpView.SetContent(renderHelp(m.theme, m.keyMap, m.helpView.Width))
		m.helpView.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.Attach):
		return m.openPicker()

	case key.Matches(msg, m.keyMap.RemoveFile):
		m.console.RemoveAttachment()
		m.relayout()
		return m, nil

	case key.Matches(msg, m.keyMap.Template):
		if i, ok := templateIndex(msg); ok {
			m.pickTemplate(i)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.SaveNotes):
		m.console.SaveNotes()
		return m, nil

	case key.Matches(msg, m.keyMap.SwitchTab):
		m.setTab(m.tab.Next())
		return m, nil

	case key.Matches(msg, m.keyMap.NextFocus):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevFocus):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keyMap.Back):
		m.setFocus(FocusComposer)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	switch m.focus {
	case FocusTemplates:
		return m.handleTemplatesKey(msg)
	case FocusSidebar:
		return m.handleSidebarKey(msg)
	default:
		return m.handleComposerKey(msg)
	}
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Send) {
		m.send()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.console.SetDraft(m.input.Value())
	return m, cmd
}

func (m Model) handleTemplatesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.TemplatePrev):
		m.templates.Move(-1)
	case key.Matches(msg, m.keyMap.TemplateNext):
		m.templates.Move(1)
	case key.Matches(msg, m.keyMap.TemplatePick):
		m.pickTemplate(m.templates.Selected)
	}
	return m, nil
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tab == components.TabTransactions {
		switch {
		case key.Matches(msg, m.keyMap.TabPrev), key.Matches(msg, m.keyMap.TabNext):
			m.setTab(m.tab.Next())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	m.console.SetNotes(m.notes.Value())
	return m, cmd
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Back) || key.Matches(msg, m.keyMap.Help) {
		m.overlay = OverlayNone
		return m, nil
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

// =============================================================================
// ACTIONS
// =============================================================================

// send hands the draft to the console and clears the input when a message
// went out.
func (m *Model) send() {
	if _, ok := m.console.Send(); !ok {
		return
	}
	m.input.SetValue(m.console.Draft())
	m.refreshThread(true)
	m.relayout()
}

// pickTemplate copies template i into the composer and focuses it.
func (m *Model) pickTemplate(i int) {
	if !m.console.PickTemplate(i) {
		return
	}
	m.templates.Selected = i
	m.input.SetValue(m.console.Draft())
	m.input.CursorEnd()
	m.setFocus(FocusComposer)
}

// openPicker shows the file picker and starts reading the directory.
func (m Model) openPicker() (tea.Model, tea.Cmd) {
	m.picker = m.newPicker()
	m.pickerErr = ""
	m.overlay = OverlayPicker
	m.logger.Debug("file picker opened", zap.String("dir", m.picker.CurrentDirectory))
	return m, m.picker.Init()
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Esc would otherwise navigate to the parent directory.
	if key.Matches(msg, m.keyMap.Back) {
		m.overlay = OverlayNone
		m.pickerErr = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		if m.attachPath(path) {
			m.overlay = OverlayNone
			m.setFocus(FocusComposer)
			m.relayout()
		}
		return m, cmd
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.pickerErr = "Недопустимый тип файла: " + path
	}
	return m, cmd
}
