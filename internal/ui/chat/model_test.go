// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/supportdesk-tui/internal/config"
	"github.com/jeranaias/supportdesk-tui/internal/console"
	"github.com/jeranaias/supportdesk-tui/internal/model"
	"github.com/jeranaias/supportdesk-tui/internal/session"
	"github.com/jeranaias/supportdesk-tui/internal/ui/components"
	"github.com/jeranaias/supportdesk-tui/internal/ui/styles"
)

// =============================================================================
// HELPERS
// =============================================================================

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 2, 1, 15, 7, 0, 0, time.Local) }
	c := console.New(model.DefaultSeed(), console.WithClock(clock))
	m := New(c, styles.NewTheme("dark"), opts)
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 32})
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	right    = tea.KeyMsg{Type: tea.KeyRight}
)

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0600))
	return path
}

// =============================================================================
// SEND
// =============================================================================

func TestModel_TypeAndSend(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, runes("Сейчас проверю"))
	assert.Equal(t, "Сейчас проверю", m.Console().Draft())

	m = update(t, m, enter)

	msgs := m.Console().Messages()
	require.Len(t, msgs, 4)
	last := msgs[3]
	assert.Equal(t, 4, last.ID)
	assert.Equal(t, "Сейчас проверю", last.Text)
	assert.Equal(t, model.SenderEmployee, last.Sender)
	assert.Equal(t, "15:07", last.Time)
	assert.True(t, last.IsEncrypted)
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.Console().Draft())
	assert.True(t, m.viewport.AtBottom())
	view := m.View()
	assert.Contains(t, view, "Сейчас проверю")
	assert.Contains(t, view, styles.Markers.Lock+" 15:07")
}

func TestModel_EnterOnBlankDraftIsNoOp(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, runes("   "), enter)

	assert.Len(t, m.Console().Messages(), 3)
	assert.Equal(t, "   ", m.input.Value())
	assert.Equal(t, "   ", m.Console().Draft())
}

func TestModel_ManySendsStayScrolledToBottom(t *testing.T) {
	m := newTestModel(t, Options{})
	for i := 0; i < 20; i++ {
		m = update(t, m, runes("ещё одно сообщение"), enter)
	}
	assert.Len(t, m.Console().Messages(), 23)
	assert.True(t, m.viewport.AtBottom())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.False(t, m.viewport.AtBottom())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.True(t, m.viewport.AtBottom())
}

// =============================================================================
// TEMPLATES
// =============================================================================

func TestModel_TemplateHotkey(t *testing.T) {
	m := newTestModel(t, Options{})
	templates := m.Console().Templates()

	m = update(t, m, runes("черновик"), alt('2'))

	assert.Equal(t, templates[1], m.input.Value())
	assert.Equal(t, templates[1], m.Console().Draft())
	assert.Len(t, m.Console().Messages(), 3, "a template is not sent")
	assert.Equal(t, FocusComposer, m.Focus())

	m = update(t, m, alt('9'))
	assert.Equal(t, templates[1], m.Console().Draft(), "missing template is ignored")
}

func TestModel_TemplateBarNavigation(t *testing.T) {
	m := newTestModel(t, Options{})
	templates := m.Console().Templates()

	m = update(t, m, tab)
	require.Equal(t, FocusTemplates, m.Focus())

	m = update(t, m, right, right, enter)

	assert.Equal(t, templates[2], m.Console().Draft())
	assert.Equal(t, FocusComposer, m.Focus())

	m = update(t, m, enter)
	msgs := m.Console().Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, templates[2], msgs[3].Text)
}

// =============================================================================
// ATTACHMENTS
// =============================================================================

func TestModel_AttachShowsChipAndRemoveClears(t *testing.T) {
	m := newTestModel(t, Options{})
	path := writeFile(t, t.TempDir(), "contract.pdf", 12595)

	require.True(t, m.attachPath(path))
	m.relayout()
	view := m.View()
	assert.Contains(t, view, "contract.pdf")
	assert.Contains(t, view, "12.3 KB")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	_, ok := m.Console().Selected()
	assert.False(t, ok)
	assert.NotContains(t, m.View(), "contract.pdf")
	assert.Len(t, m.Console().Messages(), 3)
}

func TestModel_AttachPathError(t *testing.T) {
	m := newTestModel(t, Options{})

	assert.False(t, m.attachPath(filepath.Join(t.TempDir(), "missing.pdf")))
	assert.NotEmpty(t, m.PickerError())
	_, ok := m.Console().Selected()
	assert.False(t, ok)

	assert.False(t, m.attachPath(t.TempDir()), "directories cannot be attached")
}

func TestModel_FilePickerSelectAndSend(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "contract.pdf", 2048)
	writeFile(t, dir, "notes.txt", 10)

	m := newTestModel(t, Options{StartDir: dir})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = next.(Model)
	require.Equal(t, OverlayPicker, m.Overlay())
	require.NotNil(t, cmd)

	// Deliver the directory listing.
	m = update(t, m, cmd())
	assert.Contains(t, ansi.Strip(m.View()), PickerTitle)

	m = update(t, m, enter)
	require.Equal(t, OverlayNone, m.Overlay())
	f, ok := m.Console().Selected()
	require.True(t, ok)
	assert.Equal(t, "contract.pdf", f.Name)
	assert.Equal(t, int64(2048), f.SizeBytes)

	m = update(t, m, enter)
	msgs := m.Console().Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, model.FallbackFileText, msgs[3].Text)
	assert.True(t, msgs[3].IsEncrypted)
	require.NotNil(t, msgs[3].File)
	assert.Equal(t, model.Attachment{Name: "contract.pdf", Size: "2.0 KB", Type: "PDF"}, *msgs[3].File)
}

func TestModel_FilePickerEscCancels(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "contract.pdf", 10)
	m := newTestModel(t, Options{StartDir: dir})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.Equal(t, OverlayPicker, m.Overlay())

	m = update(t, m, esc)
	assert.Equal(t, OverlayNone, m.Overlay())
	_, ok := m.Console().Selected()
	assert.False(t, ok)
}

// =============================================================================
// FOCUS & SIDEBAR
// =============================================================================

func TestModel_FocusCycle(t *testing.T) {
	m := newTestModel(t, Options{})
	require.True(t, m.SidebarVisible())

	m = update(t, m, tab)
	assert.Equal(t, FocusTemplates, m.Focus())
	m = update(t, m, tab)
	assert.Equal(t, FocusSidebar, m.Focus())
	m = update(t, m, tab)
	assert.Equal(t, FocusComposer, m.Focus())

	m = update(t, m, shiftTab)
	assert.Equal(t, FocusSidebar, m.Focus())
	m = update(t, m, esc)
	assert.Equal(t, FocusComposer, m.Focus())
}

func TestModel_NarrowHidesSidebar(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	assert.False(t, m.SidebarVisible())
	assert.NotContains(t, m.View(), components.ProfileTitle)

	m = update(t, m, tab, tab)
	assert.Equal(t, FocusComposer, m.Focus(), "hidden sidebar is skipped")
}

func TestModel_SidebarTabsAndNotes(t *testing.T) {
	m := newTestModel(t, Options{})
	assert.Contains(t, m.View(), "Платёж по кредиту")

	m = update(t, m, tab, tab, runes("]"))
	require.Equal(t, components.TabNotes, m.Tab())
	assert.Contains(t, m.View(), components.SaveNotesLabel)

	m = update(t, m, runes(" Перезвонить."))
	assert.True(t, strings.HasSuffix(m.Console().Notes(), " Перезвонить."))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Len(t, m.Console().Messages(), 3, "saving notes does not touch the thread")
	assert.True(t, strings.HasSuffix(m.Console().Notes(), " Перезвонить."))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, components.TabTransactions, m.Tab())
}

func TestModel_SidebarKeysDoNotReachComposer(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tab, tab, runes("x"))

	assert.Empty(t, m.Console().Draft())
}

// =============================================================================
// OVERLAYS, FOOTER, QUIT
// =============================================================================

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	require.Equal(t, OverlayHelp, m.Overlay())
	assert.Contains(t, ansi.Strip(m.View()), "Горячие клавиши")

	m = update(t, m, esc)
	assert.Equal(t, OverlayNone, m.Overlay())
}

func TestModel_HelpBar(t *testing.T) {
	with := newTestModel(t, Options{ShowHelpBar: true})
	without := newTestModel(t, Options{ShowHelpBar: false})

	assert.Contains(t, with.View(), "прикрепить файл")
	assert.NotContains(t, without.View(), "прикрепить файл")
}

func TestModel_ViewFitsTerminal(t *testing.T) {
	m := newTestModel(t, Options{ShowHelpBar: true})
	view := m.View()

	assert.LessOrEqual(t, lipgloss.Width(view), 120)
	assert.LessOrEqual(t, lipgloss.Height(view), 32)
	for _, want := range []string{
		"Иванов Иван Петрович", components.SecureChatLabel, "Verified",
		"Хочу узнать", ComposerPlaceholder, components.ProfileTitle, "Операции", "Заметки",
	} {
		assert.Contains(t, view, want)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, Options{})

	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlQ} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_RecordsSessionActivity(t *testing.T) {
	mgr := session.NewManager()
	c := console.New(nil, console.WithSession(mgr))
	m := New(c, styles.NewTheme("dark"), Options{Session: mgr})

	m = update(t, m, runes("ok"), enter)
	assert.Equal(t, 1, mgr.Counted(session.EventMessageSent))
}

func TestOptionsFromConfig_NilUsesGlobal(t *testing.T) {
	t.Setenv("SUPPORTDESK_HOME", t.TempDir())
	config.ResetGlobalForTesting()
	t.Cleanup(config.ResetGlobalForTesting)

	cfg := config.Default()
	cfg.UI.SidebarWidth = 33
	cfg.Attach.StartDir = "/srv/docs"
	config.SetGlobal(cfg)

	opts := OptionsFromConfig(nil)
	assert.Equal(t, 33, opts.SidebarWidth)
	assert.Equal(t, "/srv/docs", opts.StartDir)
}

// =============================================================================
// HELP CONTENT
// =============================================================================

func TestHelpMarkdown_ListsEveryBinding(t *testing.T) {
	k := DefaultKeyMap()
	md := HelpMarkdown(k)

	for _, group := range k.FullHelp() {
		for _, b := range group {
			assert.Contains(t, md, "`"+b.Help().Key+"`")
		}
	}
	for _, title := range helpGroupTitles {
		assert.Contains(t, md, "## "+title)
	}
}

func TestTemplateIndex(t *testing.T) {
	i, ok := templateIndex(alt('1'))
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = templateIndex(runes("1"))
	assert.False(t, ok, "digits without Alt are text")

	_, ok = templateIndex(alt('0'))
	assert.False(t, ok)
}
