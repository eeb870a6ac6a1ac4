// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/supportdesk-tui/internal/attach"
	"github.com/jeranaias/supportdesk-tui/internal/config"
	"github.com/jeranaias/supportdesk-tui/internal/console"
	"github.com/jeranaias/supportdesk-tui/internal/session"
	"github.com/jeranaias/supportdesk-tui/internal/ui/components"
	"github.com/jeranaias/supportdesk-tui/internal/ui/styles"
)

// Composer and notes placeholders.
const (
	ComposerPlaceholder = "Введите сообщение..."
	NotesPlaceholder    = "Добавьте заметки о клиенте..."
)

// =============================================================================
// FOCUS & OVERLAYS
// =============================================================================

// Focus is the pane receiving keys.
type Focus int

const (
	FocusComposer  Focus = iota // text input
	FocusTemplates              // quick-reply buttons
	FocusSidebar                // tabs, notes editor
	focusCount
)

// String returns a debug name for the focus.
func (f Focus) String() string {
	switch f {
	case FocusComposer:
		return "composer"
	case FocusTemplates:
		return "templates"
	case FocusSidebar:
		return "sidebar"
	default:
		return "unknown"
	}
}

// Overlay is a full-screen view drawn instead of the console.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPicker
	OverlayHelp
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configure the chat model.
type Options struct {
	SidebarWidth      int
	ShowHelpBar       bool
	AllowedExtensions []string
	StartDir          string
	ShowHidden        bool

	Logger  *zap.Logger
	Session *session.Manager
}

// OptionsFromConfig maps the UI and attach sections of cfg onto Options.
// A nil cfg means the process-wide config.Global().
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.Global()
	}
	return Options{
		SidebarWidth:      cfg.UI.SidebarWidth,
		ShowHelpBar:       cfg.UI.ShowHelpBar,
		AllowedExtensions: cfg.Attach.AllowedExtensions,
		StartDir:          cfg.Attach.StartDir,
		ShowHidden:        cfg.Attach.ShowHidden,
	}
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the console screen.
type Model struct {
	console *console.Console
	theme   *styles.Theme
	opts    Options
	logger  *zap.Logger

	// Dimensions
	width          int
	height         int
	chatWidth      int
	sidebarWidth   int
	sidebarVisible bool

	// View state
	focus   Focus
	overlay Overlay
	tab     components.SidebarTab

	// Widgets
	viewport   viewport.Model
	input      textinput.Model
	notes      textarea.Model
	picker     filepicker.Model
	pickerErr  string
	helpView   viewport.Model
	help       help.Model
	keyMap     KeyMap
	header     *components.ChatHeader
	messages   *components.MessageList
	templates  *components.TemplateBar
	profile    *components.ProfileCard
	operations *components.TransactionList
}

// Default size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 32
)

// New creates the console screen for c.
func New(c *console.Console, theme *styles.Theme, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.SidebarWidth == 0 {
		opts.SidebarWidth = config.Default().UI.SidebarWidth
	}
	if len(opts.AllowedExtensions) == 0 {
		opts.AllowedExtensions = attach.DefaultExtensions
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ComposerPlaceholder
	ti.CharLimit = 4096
	ti.SetValue(c.Draft())
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = NotesPlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.SetValue(c.Notes())
	ta.Blur()

	hm := help.New()
	hm.ShortSeparator = "  "

	m := Model{
		console:    c,
		theme:      theme,
		opts:       opts,
		logger:     opts.Logger,
		width:      defaultWidth,
		height:     defaultHeight,
		focus:      FocusComposer,
		overlay:    OverlayNone,
		tab:        components.TabTransactions,
		viewport:   viewport.New(defaultWidth, defaultHeight),
		input:      ti,
		notes:      ta,
		helpView:   viewport.New(defaultWidth, defaultHeight),
		help:       hm,
		keyMap:     DefaultKeyMap(),
		header:     components.NewChatHeader(c.Profile(), theme),
		messages:   components.NewMessageList(theme),
		templates:  components.NewTemplateBar(c.Templates(), theme),
		profile:    components.NewProfileCard(c.Profile(), theme),
		operations: components.NewTransactionList(c.Transactions(), theme),
	}
	m.relayout()
	m.refreshThread(true)
	return m
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Console returns the state the screen edits.
func (m Model) Console() *console.Console { return m.console }

// Focus returns the focused pane.
func (m Model) Focus() Focus { return m.focus }

// Overlay returns the open overlay.
func (m Model) Overlay() Overlay { return m.overlay }

// Tab returns the active sidebar tab.
func (m Model) Tab() components.SidebarTab { return m.tab }

// SidebarVisible reports whether the terminal is wide enough for the sidebar.
func (m Model) SidebarVisible() bool { return m.sidebarVisible }

// PickerError returns the message shown in the file picker footer.
func (m Model) PickerError() string { return m.pickerErr }

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// LAYOUT
// =============================================================================

// Fixed sizes of the chat column chrome.
const (
	minChatWidth   = 50
	inputChrome    = 11 // composer padding + attach and send markers
	minInputWidth  = 10
	minNotesHeight = 3
)

// relayout recomputes widget sizes from the terminal size and the current
// state (the chip line comes and goes with the selection).
func (m *Model) relayout() {
	m.theme.SetSize(m.width, m.height)
	m.sidebarVisible = m.theme.GetLayoutMode() == styles.LayoutWide

	m.sidebarWidth = 0
	if m.sidebarVisible {
		m.sidebarWidth = clamp(m.opts.SidebarWidth, 24, m.width-minChatWidth)
	}
	m.chatWidth = m.width - m.sidebarWidth

	m.header.SetWidth(m.chatWidth)
	m.templates.SetWidth(m.chatWidth - 2)
	m.input.Width = max(m.chatWidth-inputChrome, minInputWidth)

	bodyHeight := m.height - m.helpBarHeight()
	chrome := lipgloss.Height(m.header.View()) + lipgloss.Height(m.renderComposer())
	vpHeight := max(bodyHeight-chrome, 1)

	widthChanged := m.viewport.Width != m.chatWidth
	m.viewport.Width = m.chatWidth
	m.viewport.Height = vpHeight
	if widthChanged {
		m.refreshThread(false)
	}

	if m.sidebarVisible {
		inner := m.sidebarWidth - 4 // border + padding
		m.profile.SetWidth(inner)
		m.operations.SetWidth(inner)
		m.notes.SetWidth(inner)
		used := lipgloss.Height(m.profile.View()) + 1 + lipgloss.Height(components.Tabs(m.theme, m.tab, inner)) + 2
		m.notes.SetHeight(max(bodyHeight-2-used, minNotesHeight))
	}

	m.picker.Height = max(m.height-10, 3)
	m.helpView.Width = min(m.width-6, 90)
	m.helpView.Height = max(m.height-6, 3)
}

func (m Model) helpBarHeight() int {
	if m.opts.ShowHelpBar {
		return 1
	}
	return 0
}

// refreshThread re-renders the message list into the viewport.
func (m *Model) refreshThread(gotoBottom bool) {
	m.messages.SetWidth(m.viewport.Width - 1)
	m.messages.SetMessages(m.console.Messages())
	m.viewport.SetContent(m.messages.View())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

// =============================================================================
// FOCUS
// =============================================================================

// setFocus moves focus and keeps the widget focus flags in sync.
func (m *Model) setFocus(f Focus) {
	if f == FocusSidebar && !m.sidebarVisible {
		f = FocusComposer
	}
	m.focus = f
	m.templates.Focused = f == FocusTemplates

	if f == FocusComposer {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	if f == FocusSidebar && m.tab == components.TabNotes {
		m.notes.Focus()
	} else {
		m.notes.Blur()
	}
}

// cycleFocus moves focus by delta, skipping the hidden sidebar.
func (m *Model) cycleFocus(delta int) {
	n := int(focusCount)
	next := Focus(((int(m.focus)+delta)%n + n) % n)
	if next == FocusSidebar && !m.sidebarVisible {
		next = Focus(((int(next)+delta)%n + n) % n)
	}
	m.setFocus(next)
}

// setTab switches the sidebar tab.
func (m *Model) setTab(tab components.SidebarTab) {
	m.tab = tab
	m.setFocus(m.focus)
	m.relayout()
}

// =============================================================================
// FILE PICKER
// =============================================================================

// newPicker builds a file picker rooted at the configured start directory.
func (m Model) newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = m.opts.AllowedExtensions
	fp.ShowHidden = m.opts.ShowHidden
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.Height = max(m.height-10, 3)
	fp.DirAllowed = false
	fp.FileAllowed = true

	dir := m.opts.StartDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}
	fp.CurrentDirectory = dir
	return fp
}

// attachPath stats path and selects it. On failure the error is kept for
// the picker footer and nothing is selected.
func (m *Model) attachPath(path string) bool {
	f, err := attach.Stat(path)
	if err != nil {
		m.pickerErr = err.Error()
		m.logger.Warn("file selection failed", zap.String("path", path), zap.Error(err))
		return false
	}
	m.pickerErr = ""
	m.console.Attach(f)
	return true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
