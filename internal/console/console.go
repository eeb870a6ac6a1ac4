// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console holds the state of the operator chat console and the
// actions an operator can take on it: sending a message, picking a reply
// template, attaching or removing a file, and editing client notes.
//
// Console has no knowledge of the terminal. The Bubble Tea model in
// ui/chat owns one Console and calls into it from Update. It is not safe
// for concurrent use.
package console

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/supportdesk-tui/internal/attach"
	"github.com/jeranaias/supportdesk-tui/internal/model"
	"github.com/jeranaias/supportdesk-tui/internal/session"
)

// =============================================================================
// CONSOLE
// =============================================================================

// Console is the in-memory state behind the chat screen.
type Console struct {
	thread       *model.Thread
	draft        string
	selected     *attach.File
	notes        string
	profile      model.ClientProfile
	transactions []model.Transaction
	templates    []string

	now     func() time.Time
	logger  *zap.Logger
	session *session.Manager
}

// Option configures a Console.
type Option func(*Console)

// WithClock sets the clock used to stamp sent messages.
func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSession counts operator actions on the given session.
func WithSession(mgr *session.Manager) Option {
	return func(c *Console) {
		c.session = mgr
	}
}

// New builds a Console from seed data. A nil seed means DefaultSeed.
// The seed slices are copied.
func New(seed *model.Seed, opts ...Option) *Console {
	if seed == nil {
		seed = model.DefaultSeed()
	}
	c := &Console{
		thread:       model.NewThread(seed.Messages),
		notes:        seed.Notes,
		profile:      seed.Client,
		transactions: append([]model.Transaction(nil), seed.Transactions...),
		templates:    append([]string(nil), seed.Templates...),
		now:          time.Now,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) count(ev session.Event) {
	if c.session != nil {
		c.session.Count(ev)
	}
}

// =============================================================================
// SEND
// =============================================================================

// Send turns the current draft and selected file into an employee message.
//
// Every sent message is marked encrypted. With a file selected the message
// carries the attachment and its text is the draft, or FallbackFileText when
// the draft is empty. Without a file the draft must contain something other
// than whitespace. The draft is stored as typed, never trimmed.
//
// When nothing can be sent, Send leaves every field untouched and returns
// false.
func (c *Console) Send() (model.Message, bool) {
	if c.selected != nil {
		text := c.draft
		if text == "" {
			text = model.FallbackFileText
		}
		msg := c.thread.Append(model.Message{
			Text:        text,
			Sender:      model.SenderEmployee,
			Time:        model.Clock(c.now()),
			IsEncrypted: true,
			File:        c.selected.Attachment(),
		})
		c.logger.Info("message sent",
			zap.Int("id", msg.ID),
			zap.Bool("has_file", true),
			zap.String("file_type", msg.File.Type))
		c.draft = ""
		c.selected = nil
		c.count(session.EventMessageSent)
		return msg, true
	}

	if strings.TrimSpace(c.draft) == "" {
		return model.Message{}, false
	}

	msg := c.thread.Append(model.Message{
		Text:        c.draft,
		Sender:      model.SenderEmployee,
		Time:        model.Clock(c.now()),
		IsEncrypted: true,
	})
	c.logger.Info("message sent",
		zap.Int("id", msg.ID),
		zap.Bool("has_file", false))
	c.draft = ""
	c.count(session.EventMessageSent)
	return msg, true
}

// CanSend reports whether Send would append a message.
func (c *Console) CanSend() bool {
	return c.selected != nil || strings.TrimSpace(c.draft) != ""
}

// =============================================================================
// DRAFT & TEMPLATES
// =============================================================================

// SetDraft replaces the composer text.
func (c *Console) SetDraft(text string) {
	c.draft = text
}

// Draft returns the composer text.
func (c *Console) Draft() string {
	return c.draft
}

// PickTemplate copies templates[i] into the draft, replacing whatever was
// typed. It does not send. Out-of-range indexes are ignored.
func (c *Console) PickTemplate(i int) bool {
	if i < 0 || i >= len(c.templates) {
		return false
	}
	c.draft = c.templates[i]
	c.logger.Debug("template picked", zap.Int("index", i))
	c.count(session.EventTemplatePicked)
	return true
}

// Templates returns the quick-reply templates.
func (c *Console) Templates() []string {
	return append([]string(nil), c.templates...)
}

// =============================================================================
// ATTACHMENT
// =============================================================================

// Attach selects f for the next send, replacing any earlier selection.
func (c *Console) Attach(f attach.File) {
	c.selected = &f
	c.logger.Info("file attached",
		zap.String("name", f.Name),
		zap.Int64("size", f.SizeBytes),
		zap.String("mime", f.MIMEType))
	c.count(session.EventFileAttached)
}

// RemoveAttachment clears the selection. The message list is not touched.
func (c *Console) RemoveAttachment() {
	if c.selected == nil {
		return
	}
	c.logger.Info("file removed", zap.String("name", c.selected.Name))
	c.selected = nil
	c.count(session.EventFileRemoved)
}

// Selected returns the file chosen for the next send.
func (c *Console) Selected() (attach.File, bool) {
	if c.selected == nil {
		return attach.File{}, false
	}
	return *c.selected, true
}

// =============================================================================
// NOTES
// =============================================================================

// SetNotes replaces the notes text.
func (c *Console) SetNotes(text string) {
	c.notes = text
}

// Notes returns the notes text.
func (c *Console) Notes() string {
	return c.notes
}

// SaveNotes is bound to the save button. Notes are never stored; the press
// is only logged.
func (c *Console) SaveNotes() {
	c.logger.Debug("notes save pressed", zap.Int("length", len([]rune(c.notes))))
	c.count(session.EventNotesSaved)
}

// =============================================================================
// READ ACCESSORS
// =============================================================================

// Messages returns a copy of the thread in display order.
func (c *Console) Messages() []model.Message {
	return c.thread.Messages()
}

// Profile returns the client shown in the header and sidebar.
func (c *Console) Profile() model.ClientProfile {
	return c.profile
}

// Transactions returns the client's recent operations.
func (c *Console) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), c.transactions...)
}
